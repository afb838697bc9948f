package termstyle

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/termstyle/pkg/ansi"
)

func newStripCmd() *cobra.Command {
	var showWidth bool

	cmd := &cobra.Command{
		Use:   "strip [text...]",
		Short: "Remove escape sequences from text",
		Long: `Strip removes recognized SGR and OSC 8 sequences from its arguments,
or from stdin when no arguments are given. With --width it prints the
display column width of the stripped text instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			process := func(line string) {
				if showWidth {
					fmt.Fprintln(cmd.OutOrStdout(), ansi.DisplayWidth(line))
					return
				}
				fmt.Fprintln(cmd.OutOrStdout(), ansi.StripANSI(line))
			}

			if len(args) > 0 {
				process(strings.Join(args, " "))
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				process(scanner.Text())
			}
			return scanner.Err()
		},
	}

	cmd.Flags().BoolVar(&showWidth, "width", false, "Print display width instead of stripped text")

	return cmd
}
