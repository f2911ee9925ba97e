package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"guesslex/pkg/classifier"
	"guesslex/pkg/config"
	"guesslex/pkg/sigfile"
)

const Version = "1.0.0"

var (
	jsonOutput     bool
	verbose        bool
	noInteractive  bool
	filePath       string
	signaturesPath string
)

const Logo = `
 ██████╗ ██╗   ██╗███████╗███████╗███████╗██╗     ███████╗██╗  ██╗
██╔════╝ ██║   ██║██╔════╝██╔════╝██╔════╝██║     ██╔════╝╚██╗██╔╝
██║  ███╗██║   ██║█████╗  ███████╗███████╗██║     █████╗   ╚███╔╝
██║   ██║██║   ██║██╔══╝  ╚════██║╚════██║██║     ██╔══╝   ██╔██╗
╚██████╔╝╚██████╔╝███████╗███████║███████║███████╗███████╗██╔╝ ██╗
 ╚═════╝  ╚═════╝ ╚══════╝╚══════╝╚══════╝╚══════╝╚══════╝╚═╝  ╚═╝
`

var rootCmd = &cobra.Command{
	Use:   "guesslex [CODE]",
	Short: "A fast, explainable source language and framework detector",
	Long: Logo + `
Guesslex classifies a blob of source text by programming language and, when
the winning language carries one, by framework. Every verdict ships with a
confidence score and the evidence that produced it.

Supports 17 languages and 9 frameworks out of the box; extend the signature
table with --signatures.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	Run:     runAnalyze,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildEngine assembles the registry and engine from the built-in table,
// the optional --signatures file and the user config. Registration happens
// here, before any analysis, never after.
func buildEngine() (*classifier.Engine, *config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	registry := classifier.DefaultRegistry()
	if signaturesPath != "" {
		f, err := sigfile.Load(signaturesPath)
		if err != nil {
			return nil, nil, err
		}
		if err := f.Apply(registry); err != nil {
			return nil, nil, fmt.Errorf("apply %s: %w", signaturesPath, err)
		}
	}

	return classifier.New(registry, cfg.EngineOptions()), cfg, nil
}

func isTerminal() bool {
	if os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	rootCmd.SetVersionTemplate("guesslex version {{.Version}}\n")

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON (disables interactive mode)")
	rootCmd.PersistentFlags().BoolVar(&noInteractive, "no-interactive", false, "Skip spinners and banners (for CI/automation)")
	rootCmd.PersistentFlags().StringVar(&signaturesPath, "signatures", "", "YAML file with extra language/framework signatures")

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the evidence behind the verdict")
	rootCmd.Flags().StringVarP(&filePath, "file", "f", "", "Analyze code from a file")
}
