package ui

import (
	"fmt"
	"strings"
)

// LanguageCount is one row of the scan distribution table.
type LanguageCount struct {
	Language string
	Count    int
}

// RenderScanLine formats one scanned file as a single result line.
func RenderScanLine(path, language, framework string, confidence float64) string {
	marker := confidenceStyle(confidence).Render("●")
	line := fmt.Sprintf("%s %s → %s", marker, path, selectedItemStyle.Render(strings.ToUpper(language)))
	if framework != "" {
		line += descriptionStyle.Render(" (" + framework + ")")
	}
	line += helpStyle.Render(fmt.Sprintf(" %.1f%%", confidence*100))
	return line
}

// RenderScanSummary formats the scan totals block.
func RenderScanSummary(found, analyzed, skipped int, minConfidence float64) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Scan Summary"))
	s.WriteString("\n")
	fmt.Fprintf(&s, "%s %d\n", focusedStyle.Render("Files found:"), found)
	fmt.Fprintf(&s, "%s %d\n", focusedStyle.Render("Files analyzed:"), analyzed)
	fmt.Fprintf(&s, "%s %d\n", focusedStyle.Render("Files skipped:"), skipped)
	fmt.Fprintf(&s, "%s %.1f%%", focusedStyle.Render("Min confidence:"), minConfidence*100)
	return s.String()
}

// RenderDistribution formats the per-language share of analyzed files.
func RenderDistribution(dist []LanguageCount, total int) string {
	var s strings.Builder
	s.WriteString(focusedStyle.Render("Language distribution:"))
	for _, row := range dist {
		share := 0.0
		if total > 0 {
			share = float64(row.Count) / float64(total) * 100
		}
		s.WriteString("\n")
		fmt.Fprintf(&s, "  %s: %d files (%.1f%%)",
			selectedItemStyle.Render(strings.ToUpper(row.Language)), row.Count, share)
	}
	return s.String()
}
