package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/config"
	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/output"
	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/providers"
	"github.com/AnandvPrajapati/Mission-1-The-Empathetic-Code-Reviewer/internal/review"
)

var (
	flagProvider  string
	flagModel     string
	flagFormat    string
	flagOut       string
	flagTone      string
	flagMaxTokens int
	flagNoRedact  bool
	flagNoCache   bool
	flagNoPreview bool
)

// previewLimit bounds the stdout preview of the saved report.
const previewLimit = 1200

var reviewCmd = &cobra.Command{
	Use:   "review <input.json>",
	Short: "Generate an empathetic review report from an input file",
	Long: `Review reads a JSON file with required keys "code_snippet" (string) and
"review_comments" (array of strings) and writes a Markdown report to a
timestamped file in the current directory (or to --out).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		if flagNoRedact {
			cfg.Privacy.RedactSecrets = false
			fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
		}
		if flagNoCache {
			cfg.Cache.Enabled = false
		}
		if flagTone != "" {
			cfg.ToneFile = flagTone
		}

		runReview(args[0], cfg)
		return nil
	},
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagMaxTokens > 0 {
		m["maxTokens"] = fmt.Sprintf("%d", flagMaxTokens)
	}
	return m
}

func runReview(inputPath string, cfg config.Config) {
	// The credential check happens at provider construction, before any
	// input is read. A missing key halts with no output file.
	provider, err := providers.New(cfg.Provider, cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if providers.IsCredentialError(err) {
			fmt.Fprintf(os.Stderr, "Set the API key for provider %q and try again.\n", cfg.Provider)
			exitCode = ExitAuthError
		} else {
			exitCode = ExitUsageError
		}
		return
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	req, err := review.ParseRequest(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var verr *review.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(os.Stderr, `Input JSON must contain "code_snippet" (string) and "review_comments" (array of strings).`)
		}
		exitCode = ExitUsageError
		return
	}

	report, err := review.Run(context.Background(), req, provider, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	path, err := output.WriteReport(report, cfg.Format, flagOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	fmt.Fprintf(os.Stdout, "Report saved to: %s\n", path)
	if !flagNoPreview && cfg.Format != "json" {
		printPreview(report)
	}
}

func printPreview(report *review.Report) {
	var buf bytes.Buffer
	if err := (&output.MarkdownWriter{}).Write(&buf, report); err != nil {
		return
	}
	preview := buf.String()
	if len(preview) > previewLimit {
		preview = preview[:previewLimit] + "\n\n[... full analysis continues in the saved file ...]"
	}
	fmt.Fprintln(os.Stdout, preview)
}

func init() {
	reviewCmd.Flags().StringVar(&flagProvider, "provider", "", "LLM provider (openai, anthropic, ollama)")
	reviewCmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	reviewCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (markdown, json)")
	reviewCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: timestamped file in the current directory)")
	reviewCmd.Flags().StringVar(&flagTone, "tone", "", "YAML tone pack overlaying the built-in phrase banks")
	reviewCmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "Maximum output tokens")
	reviewCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
	reviewCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Skip the response cache")
	reviewCmd.Flags().BoolVar(&flagNoPreview, "no-preview", false, "Do not print a report preview to stdout")
}
