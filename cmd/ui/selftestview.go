package ui

import (
	"fmt"
	"strings"
)

// RenderSelftestLine formats one corpus case verdict.
func RenderSelftestLine(name, language, framework string, confidence float64, passed bool) string {
	status := successStyle.Render("PASS")
	if !passed {
		status = errorStyle.Render("FAIL")
	}
	line := fmt.Sprintf("%s %s → %s", status, name, selectedItemStyle.Render(language))
	if framework != "" {
		line += descriptionStyle.Render(" (" + framework + ")")
	}
	line += helpStyle.Render(fmt.Sprintf(" %.1f%%", confidence*100))
	return line
}

// RenderSelftestSummary formats the corpus totals.
func RenderSelftestSummary(passed, total int) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Self-Test Summary"))
	s.WriteString("\n")
	share := 0.0
	if total > 0 {
		share = float64(passed) / float64(total) * 100
	}
	fmt.Fprintf(&s, "%s %d/%d (%.1f%%)", focusedStyle.Render("Cases passed:"), passed, total, share)
	if passed == total {
		s.WriteString("\n")
		s.WriteString(successStyle.Render("All cases passed"))
	} else {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render(fmt.Sprintf("%d cases failed", total-passed)))
	}
	return s.String()
}
