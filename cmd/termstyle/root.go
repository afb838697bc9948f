package termstyle

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/termstyle/internal/version"
	"github.com/arthur-debert/termstyle/pkg/caps"
	"github.com/arthur-debert/termstyle/pkg/config"
	"github.com/arthur-debert/termstyle/pkg/logging"
	"github.com/arthur-debert/termstyle/pkg/term"
)

var (
	verbosity  int
	configPath string
	forceColor string
	noColor    bool
)

// NewRootCmd builds the termstyle command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "termstyle",
		Short: "Inspect terminal capabilities and style text",
		Long: `termstyle detects what the current terminal can render (color depth,
Unicode, extended underlines) and styles text accordingly, degrading
gracefully in pipes, CI jobs, and dumb terminals.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Overrides file (default $XDG_CONFIG_HOME/termstyle/config.toml)")
	rootCmd.PersistentFlags().StringVar(&forceColor, "color", "", "Force color depth: none, basic, 256, truecolor")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable color output entirely")

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(usageTemplate)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newCapsCmd())
	rootCmd.AddCommand(newStyleCmd())
	rootCmd.AddCommand(newUnderlineCmd())
	rootCmd.AddCommand(newLinkCmd())
	rootCmd.AddCommand(newStripCmd())
	rootCmd.AddCommand(newDocsCmd())

	return rootCmd
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("termstyle version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

// termOptions assembles term.Options from the global flags and the
// overrides file. Explicit flags beat the file, which beats detection.
func termOptions() (term.Options, error) {
	var opts term.Options

	if noColor {
		depth := caps.DepthNone
		opts.ForceColorDepth = &depth
	} else if forceColor != "" {
		depth, ok := caps.ParseColorDepth(forceColor)
		if !ok {
			return opts, fmt.Errorf("unknown color depth %q", forceColor)
		}
		opts.ForceColorDepth = &depth
	}

	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return opts, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return opts, err
	}
	return cfg.Apply(opts)
}

// newTerm builds a Term honoring the global flags.
func newTerm() (*term.Term, error) {
	opts, err := termOptions()
	if err != nil {
		return nil, err
	}
	return term.New(opts), nil
}
