package termstyle

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/termstyle/pkg/logging"
)

func newCapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "caps",
		Short: "Report the detected terminal capabilities",
		Long: `Caps takes one capability snapshot of the current terminal and prints
it. Overrides from flags or the config file are applied before the
report, so this is also the way to verify a forced configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.caps")

			t, err := newTerm()
			if err != nil {
				return err
			}
			defer func() { _ = t.Close() }()

			snap := t.Snapshot()
			logger.Debug().Str("colorDepth", snap.ColorDepth.String()).Msg("Rendering capability report")

			var b strings.Builder
			b.WriteString(titleStyle.Render("Terminal Capabilities") + "\n\n")

			row := func(name string, ok bool) {
				fmt.Fprintf(&b, "  %s %s\n", indicator(ok, snap.Unicode), labelStyle.Render(name))
			}
			row("cursor control", snap.CursorControl)
			row("raw input", snap.RawInput)
			row("unicode", snap.Unicode)
			row("extended underline", snap.ExtendedUnderline)

			fmt.Fprintf(&b, "  %s %s\n",
				labelStyle.Render("color depth:"),
				valueStyle.Render(snap.ColorDepth.String()))

			if cols, ok := t.Columns(); ok {
				rows, _ := t.Rows()
				fmt.Fprintf(&b, "  %s %s\n",
					labelStyle.Render("size:"),
					mutedStyle.Render(fmt.Sprintf("%dx%d", cols, rows)))
			} else {
				fmt.Fprintf(&b, "  %s %s\n",
					labelStyle.Render("size:"),
					mutedStyle.Render("not a terminal"))
			}

			return t.Write(b.String())
		},
	}
}
