package termstyle

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/termstyle/pkg/ansi"
)

func newUnderlineCmd() *cobra.Command {
	var (
		styleName string
		colorSpec string
	)

	cmd := &cobra.Command{
		Use:   "underline [text...]",
		Short: "Underline text with an extended underline style",
		Long: `Underline renders text with one of the extended underline styles
(single, double, curly, dotted, dashed), optionally with a 24-bit
underline color. Terminals without extended underline support get a
plain underline instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := newTerm()
			if err != nil {
				return err
			}
			defer func() { _ = t.Close() }()

			text := strings.Join(args, " ")

			if colorSpec != "" {
				var r, g, b uint8
				if _, err := fmt.Sscanf(colorSpec, "%d,%d,%d", &r, &g, &b); err != nil {
					return fmt.Errorf("invalid --color %q, want R,G,B", colorSpec)
				}
				return t.WriteLine(t.UnderlineColored(r, g, b, text))
			}

			u, ok := ansi.ParseUnderlineStyle(styleName)
			if !ok {
				return fmt.Errorf("unknown underline style %q", styleName)
			}
			return t.WriteLine(t.UnderlineStyled(u, text))
		},
	}

	cmd.Flags().StringVar(&styleName, "style", "single", "Underline style: single, double, curly, dotted, dashed")
	cmd.Flags().StringVar(&colorSpec, "color", "", "Underline color as R,G,B")

	return cmd
}
