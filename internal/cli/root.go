package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/logging"
)

const version = "1.0.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

var flagLogLevel string

var rootCmd = &cobra.Command{
	Use:   "empath",
	Short: "Transform critical code review comments into empathetic feedback",
	Long: `Empath reads a JSON document containing a code snippet and a list of
critical review comments, classifies each comment's severity and the
snippet's language, and asks an LLM provider to rewrite the comments as
empathetic, educational feedback. The result is written as a Markdown
report; if the provider call fails, a fallback report is produced instead.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Setup(flagLogLevel, os.Stderr)
	},
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print empath version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "empath version %s\n", version)
	},
}
