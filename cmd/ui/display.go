// Package ui renders detection results for the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"guesslex/pkg/classifier"
)

var (
	titleStyle        = lipgloss.NewStyle().Background(lipgloss.Color("#01FAC6")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	focusedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	descriptionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#40BDA3"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	warningStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// maxEvidenceLines caps how many evidence lines the card shows.
const maxEvidenceLines = 15

// confidenceStyle picks the color band for a confidence value:
// green above 0.7, yellow above 0.4, red otherwise.
func confidenceStyle(confidence float64) lipgloss.Style {
	switch {
	case confidence > 0.7:
		return successStyle
	case confidence > 0.4:
		return warningStyle
	default:
		return errorStyle
	}
}

// interpret puts a confidence value into words.
func interpret(confidence float64) string {
	switch {
	case confidence >= 0.8:
		return "Very High - Highly confident in detection"
	case confidence >= 0.6:
		return "High - Good confidence in detection"
	case confidence >= 0.4:
		return "Medium - Moderate confidence"
	default:
		return "Low - Low confidence, may need more context"
	}
}

// RenderResult renders the detection card for interactive terminals.
func RenderResult(result classifier.Result, verbose bool) string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Detection Results"))
	s.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#01FAC6")).
		Padding(1, 2).
		Width(60)

	var content strings.Builder
	content.WriteString(focusedStyle.Render("Language: "))
	content.WriteString(selectedItemStyle.Render(strings.ToUpper(result.Language)))
	content.WriteString("\n")

	content.WriteString(focusedStyle.Render("Confidence: "))
	content.WriteString(confidenceStyle(result.Confidence).Render(fmt.Sprintf("%.1f%%", result.Confidence*100)))
	content.WriteString("\n")

	if result.Framework != "" {
		content.WriteString(focusedStyle.Render("Framework: "))
		content.WriteString(selectedItemStyle.Render(strings.ToUpper(result.Framework)))
		content.WriteString("\n")
	}

	if verbose && len(result.Evidence) > 0 {
		content.WriteString("\n")
		content.WriteString(focusedStyle.Render("Evidence:"))
		content.WriteString("\n")
		for i, line := range result.Evidence {
			if i == maxEvidenceLines {
				content.WriteString(helpStyle.Render(fmt.Sprintf("  … %d more", len(result.Evidence)-maxEvidenceLines)))
				content.WriteString("\n")
				break
			}
			content.WriteString(successStyle.Render("  ✓ "))
			content.WriteString(descriptionStyle.Render(line))
			content.WriteString("\n")
		}
	}

	s.WriteString(box.Render(content.String()))
	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Confidence level: "))
	s.WriteString(confidenceStyle(result.Confidence).Render(interpret(result.Confidence)))

	return s.String()
}

// RenderPlain renders the result without styling for pipes and CI logs.
func RenderPlain(result classifier.Result, verbose bool) string {
	var s strings.Builder
	fmt.Fprintf(&s, "Language: %s\n", result.Language)
	fmt.Fprintf(&s, "Confidence: %.1f%%\n", result.Confidence*100)
	if result.Framework != "" {
		fmt.Fprintf(&s, "Framework: %s\n", result.Framework)
	}
	if verbose {
		for _, line := range result.Evidence {
			fmt.Fprintf(&s, "  - %s\n", line)
		}
	}
	return s.String()
}
