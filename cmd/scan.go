package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"guesslex/cmd/ui"
	"guesslex/cmd/ui/spinner"
	"guesslex/pkg/scanner"
)

var (
	scanMinConfidence float64
	scanExtensions    []string
	scanInclude       []string
	scanWorkers       int
)

var scanCmd = &cobra.Command{
	Use:   "scan DIRECTORY",
	Short: "Scan a directory tree and classify every code file",
	Long: Logo + `
Walks the directory recursively, skipping dependency and VCS folders, and
classifies every file whose extension the signature table knows. One file
failing never aborts the scan.`,
	Args: cobra.ExactArgs(1),
	Run:  runScan,
}

type scanSummary struct {
	Directory     string  `json:"directory"`
	FilesFound    int     `json:"files_found"`
	FilesAnalyzed int     `json:"files_analyzed"`
	FilesSkipped  int     `json:"files_skipped"`
	MinConfidence float64 `json:"min_confidence"`
}

type scanOutput struct {
	Summary scanSummary          `json:"summary"`
	Results []scanner.FileResult `json:"results"`
}

func runScan(cmd *cobra.Command, args []string) {
	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Cannot access path '%s': %v\n", dir, err)
		os.Exit(1)
	}
	if !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: Path '%s' is not a directory\n", dir)
		os.Exit(1)
	}

	engine, cfg, err := buildEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	minConfidence := scanMinConfidence
	if !cmd.Flags().Changed("min-confidence") && cfg.MinConfidence > 0 {
		minConfidence = cfg.MinConfidence
	}
	workers := scanWorkers
	if !cmd.Flags().Changed("workers") && cfg.Workers > 0 {
		workers = cfg.Workers
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	interactive := isTerminal() && !noInteractive && !jsonOutput

	var spinnerProgram *tea.Program
	if interactive {
		spinnerProgram = tea.NewProgram(spinner.New("Scanning " + dir + "..."))
		go func() {
			if _, err := spinnerProgram.Run(); err != nil {
				if err.Error() != "program was killed" {
					fmt.Fprintf(os.Stderr, "Error running spinner: %v\n", err)
				}
			}
		}()
	}

	report, err := scanner.Scan(ctx, os.DirFS(dir), engine, scanner.Options{
		Workers:       workers,
		MinConfidence: minConfidence,
		Extensions:    scanExtensions,
		Include:       scanInclude,
	})

	if spinnerProgram != nil {
		spinnerProgram.Quit()
		spinnerProgram.Wait()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Scan failed: %v\n", err)
		os.Exit(1)
	}

	summary := scanSummary{
		Directory:     dir,
		FilesFound:    report.FilesFound,
		FilesAnalyzed: report.FilesAnalyzed,
		FilesSkipped:  report.FilesSkipped,
		MinConfidence: minConfidence,
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(scanOutput{Summary: summary, Results: report.Results}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	for _, res := range report.Results {
		fmt.Println(ui.RenderScanLine(res.Path, res.Language, res.Framework, res.Confidence))
	}
	for _, ferr := range report.Errors {
		fmt.Fprintf(os.Stderr, "Error analyzing %s\n", ferr.Error())
	}

	fmt.Println()
	fmt.Println(ui.RenderScanSummary(summary.FilesFound, summary.FilesAnalyzed, summary.FilesSkipped, minConfidence))

	if len(report.Languages) > 0 {
		fmt.Println()
		fmt.Println(ui.RenderDistribution(sortedDistribution(report.Languages), report.FilesAnalyzed))
	}
}

// sortedDistribution orders languages by descending count, ties by name.
func sortedDistribution(counts map[string]int) []ui.LanguageCount {
	dist := make([]ui.LanguageCount, 0, len(counts))
	for lang, n := range counts {
		dist = append(dist, ui.LanguageCount{Language: lang, Count: n})
	}
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].Count != dist[j].Count {
			return dist[i].Count > dist[j].Count
		}
		return dist[i].Language < dist[j].Language
	})
	return dist
}

func init() {
	scanCmd.Flags().Float64VarP(&scanMinConfidence, "min-confidence", "c", 0.3, "Minimum confidence threshold for reported files")
	scanCmd.Flags().StringSliceVarP(&scanExtensions, "ext", "e", nil, "Restrict to file extensions (e.g. .py,.js)")
	scanCmd.Flags().StringSliceVar(&scanInclude, "include", nil, "Glob patterns files must match (e.g. 'src/**/*.go')")
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 0, "Concurrent analysis workers (0 = one per CPU)")

	rootCmd.AddCommand(scanCmd)
}
