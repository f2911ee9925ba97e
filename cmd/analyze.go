package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"guesslex/cmd/ui"
	"guesslex/pkg/classifier"
)

// analyzeCmd is an explicit alias for the root behavior.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [CODE]",
	Short: "Detect the language and framework of a code snippet",
	Long: Logo + `
Analyzes code given as an argument, read from --file, or piped on stdin,
and reports the detected language, framework and confidence.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAnalyze,
}

type analyzeOutput struct {
	Source string `json:"source"`
	classifier.Result
}

func runAnalyze(cmd *cobra.Command, args []string) {
	engine, _, err := buildEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var code, filename, source string
	switch {
	case filePath != "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Cannot read file '%s': %v\n", filePath, err)
			os.Exit(1)
		}
		code = string(data)
		filename = filepath.Base(filePath)
		source = "file: " + filePath
	case len(args) == 1:
		code = args[0]
		source = "argument"
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Cannot read stdin: %v\n", err)
			os.Exit(1)
		}
		code = string(data)
		source = "stdin"
	}

	if strings.TrimSpace(code) == "" && !jsonOutput {
		fmt.Fprintln(os.Stderr, "Error: No code provided")
		os.Exit(1)
	}

	result := engine.Analyze(code, filename)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(analyzeOutput{Source: source, Result: result}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if isTerminal() && !noInteractive {
		fmt.Println(ui.RenderResult(result, verbose))
		return
	}
	fmt.Print(ui.RenderPlain(result, verbose))
}

func init() {
	analyzeCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the evidence behind the verdict")
	analyzeCmd.Flags().StringVarP(&filePath, "file", "f", "", "Analyze code from a file")

	rootCmd.AddCommand(analyzeCmd)
}
