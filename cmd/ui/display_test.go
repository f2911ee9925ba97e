package ui

import (
	"strings"
	"testing"

	"guesslex/pkg/classifier"
)

func TestRenderPlain(t *testing.T) {
	result := classifier.Result{
		Language:   "python",
		Confidence: 0.736,
		Framework:  "django",
		Evidence:   []string{"Keyword found: def"},
	}

	out := RenderPlain(result, false)
	for _, want := range []string{"Language: python", "Confidence: 73.6%", "Framework: django"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderPlain missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Keyword found") {
		t.Error("evidence shown without verbose")
	}

	verbose := RenderPlain(result, true)
	if !strings.Contains(verbose, "  - Keyword found: def") {
		t.Errorf("verbose output missing evidence:\n%s", verbose)
	}
}

func TestRenderPlainOmitsEmptyFramework(t *testing.T) {
	out := RenderPlain(classifier.Result{Language: "go", Confidence: 1}, false)
	if strings.Contains(out, "Framework:") {
		t.Errorf("framework line rendered for empty framework:\n%s", out)
	}
}

func TestInterpretBands(t *testing.T) {
	tests := []struct {
		confidence float64
		want       string
	}{
		{0.95, "Very High"},
		{0.8, "Very High"},
		{0.7, "High"},
		{0.5, "Medium"},
		{0.1, "Low"},
		{0, "Low"},
	}
	for _, tt := range tests {
		if got := interpret(tt.confidence); !strings.HasPrefix(got, tt.want) {
			t.Errorf("interpret(%v) = %q, want prefix %q", tt.confidence, got, tt.want)
		}
	}
}

func TestRenderResultCapsEvidence(t *testing.T) {
	evidence := make([]string, maxEvidenceLines+5)
	for i := range evidence {
		evidence[i] = "Keyword found: kw"
	}
	out := RenderResult(classifier.Result{Language: "go", Confidence: 0.9, Evidence: evidence}, true)
	if !strings.Contains(out, "5 more") {
		t.Errorf("expected overflow marker in:\n%s", out)
	}
}
