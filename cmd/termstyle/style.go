package termstyle

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/termstyle/pkg/config"
	"github.com/arthur-debert/termstyle/pkg/logging"
)

func newStyleCmd() *cobra.Command {
	var (
		attrList  string
		themePath string
		styleName string
	)

	cmd := &cobra.Command{
		Use:   "style [text...]",
		Short: "Apply text attributes and print the styled result",
		Long: `Style renders its arguments through a styling chain. Attributes come
either from --set (a comma-separated token list) or from a named style
in a YAML theme file:

  termstyle style --set bold,red "watch out"
  termstyle style --theme theme.yaml --name title "Release notes"

Attribute tokens: modifier names (bold, dim, italic, underline,
strikethrough, inverse, hidden), color names (red, bright-cyan, ...),
hex colors (#ff8800), rgb(r,g,b), ansi256(n), and any color prefixed
with bg- for backgrounds.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.style")

			t, err := newTerm()
			if err != nil {
				return err
			}
			defer func() { _ = t.Close() }()

			chain := t.Style()
			switch {
			case themePath != "":
				if styleName == "" {
					return fmt.Errorf("--theme requires --name")
				}
				theme, err := config.LoadTheme(themePath)
				if err != nil {
					return err
				}
				chain, err = theme.Resolve(styleName, chain)
				if err != nil {
					return err
				}
			case attrList != "":
				chain, err = config.Compose(strings.Split(attrList, ","), chain)
				if err != nil {
					return err
				}
			}

			logger.Debug().Int("attributes", chain.Len()).Msg("Rendering styled text")
			return t.WriteLine(chain.Render(strings.Join(args, " ")))
		},
	}

	cmd.Flags().StringVar(&attrList, "set", "", "Comma-separated attribute tokens")
	cmd.Flags().StringVar(&themePath, "theme", "", "YAML theme file")
	cmd.Flags().StringVar(&styleName, "name", "", "Style name to resolve from the theme")

	return cmd
}
