package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"guesslex/cmd/ui"
	"guesslex/pkg/selftest"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the built-in detection corpus against the engine",
	Long: Logo + `
Runs every case of the built-in acceptance corpus and reports per-case
verdicts. Exits non-zero when any case fails.`,
	Args: cobra.NoArgs,
	Run:  runSelftest,
}

type selftestCase struct {
	Name              string  `json:"test_name"`
	ExpectedLanguage  string  `json:"expected_language"`
	ExpectedFramework string  `json:"expected_framework,omitempty"`
	DetectedLanguage  string  `json:"detected_language"`
	DetectedFramework string  `json:"detected_framework,omitempty"`
	Confidence        float64 `json:"confidence"`
	Passed            bool    `json:"passed"`
}

type selftestOutput struct {
	Passed int            `json:"passed"`
	Total  int            `json:"total"`
	Cases  []selftestCase `json:"cases"`
}

func runSelftest(cmd *cobra.Command, args []string) {
	engine, _, err := buildEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	results, summary := selftest.Run(engine)

	if jsonOutput {
		out := selftestOutput{Passed: summary.Passed, Total: summary.Total}
		for _, r := range results {
			out.Cases = append(out.Cases, selftestCase{
				Name:              r.Case.Name,
				ExpectedLanguage:  r.Case.WantLanguage,
				ExpectedFramework: r.Case.WantFramework,
				DetectedLanguage:  r.Result.Language,
				DetectedFramework: r.Result.Framework,
				Confidence:        r.Result.Confidence,
				Passed:            r.Passed,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		for _, r := range results {
			fmt.Println(ui.RenderSelftestLine(r.Case.Name, r.Result.Language, r.Result.Framework, r.Result.Confidence, r.Passed))
		}
		fmt.Println()
		fmt.Println(ui.RenderSelftestSummary(summary.Passed, summary.Total))
	}

	if summary.Passed != summary.Total {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}
