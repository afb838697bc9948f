package termstyle

import (
	"github.com/spf13/cobra"
)

func newLinkCmd() *cobra.Command {
	var linkID string

	cmd := &cobra.Command{
		Use:   "link <text> <url>",
		Short: "Print an OSC 8 hyperlink",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := newTerm()
			if err != nil {
				return err
			}
			defer func() { _ = t.Close() }()

			if linkID != "" {
				return t.WriteLine(t.HyperlinkID(linkID, args[0], args[1]))
			}
			return t.WriteLine(t.Hyperlink(args[0], args[1]))
		},
	}

	cmd.Flags().StringVar(&linkID, "id", "", "Group multiple segments as one logical link")

	return cmd
}
