package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages and frameworks",
	Args:  cobra.NoArgs,
	Run:   runLanguages,
}

func runLanguages(cmd *cobra.Command, args []string) {
	engine, _, err := buildEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	registry := engine.Registry()

	languages := registry.Languages()
	sort.Strings(languages)
	fmt.Println("Supported languages:")
	for i, lang := range languages {
		fmt.Printf("%3d. %s\n", i+1, lang)
	}

	frameworks := registry.Frameworks()
	sort.Slice(frameworks, func(i, j int) bool { return frameworks[i].Name < frameworks[j].Name })
	fmt.Println("\nSupported frameworks:")
	for i, fw := range frameworks {
		fmt.Printf("%3d. %s (%s)\n", i+1, fw.Name, fw.Language)
	}

	fmt.Printf("\nTotal: %d languages, %d frameworks\n", len(languages), len(frameworks))
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
