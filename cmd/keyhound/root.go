package keyhound

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/keyhound/keyhound/internal/logging"
)

var (
	flagLogFile       string
	flagVerbose       bool
	flagNoColor       bool
	flagNoUpdateCheck bool

	version = "0.1.0"

	// exitCode is applied after cobra returns so deferred cleanups
	// (notably the temp clone removal) run before the process exits.
	exitCode int
)

// rootCmd is the base Cobra command for the Keyhound CLI.
var rootCmd = &cobra.Command{
	Use:           "keyhound",
	Short:         "Find leaked credentials in a file tree",
	Long:          "Keyhound scans a directory or a cloned repository for API keys, passwords, tokens, private keys and high-entropy strings, and reports findings for pre-commit and CI gating.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			flagNoColor = true
		}
		return logging.Setup(flagLogFile, flagVerbose)
	},
}

// Execute runs the Keyhound CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "also write structured logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
}
