package termstyle

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed docs/termstyle.md
var docsMarkdown string

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Show the termstyle guide",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := newTerm()
			if err != nil {
				return err
			}
			defer func() { _ = t.Close() }()

			options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
			if cols, ok := t.Columns(); ok {
				options = append(options, glamour.WithWordWrap(cols))
			}

			renderer, err := glamour.NewTermRenderer(options...)
			if err != nil {
				// Fallback to plain text on error
				fmt.Fprintln(cmd.OutOrStdout(), docsMarkdown)
				return nil
			}
			rendered, err := renderer.Render(docsMarkdown)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), docsMarkdown)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
