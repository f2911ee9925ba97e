package cmd

import (
	"encoding/json"
	"testing"

	"guesslex/pkg/classifier"
)

func TestAnalyzeOutputJSON(t *testing.T) {
	out := analyzeOutput{
		Source: "stdin",
		Result: classifier.Result{
			Language:   "python",
			Confidence: 0.736,
			Evidence:   []string{"Keyword found: def"},
		},
	}

	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	// The embedded result flattens into the top-level document.
	for _, key := range []string{"source", "language", "confidence", "evidence"} {
		if _, ok := m[key]; !ok {
			t.Errorf("missing top-level key %q in %s", key, data)
		}
	}
	if _, ok := m["framework"]; ok {
		t.Errorf("empty framework must be omitted, got %s", data)
	}
}

func TestSelftestOutputJSON(t *testing.T) {
	out := selftestOutput{
		Passed: 1,
		Total:  1,
		Cases: []selftestCase{{
			Name:             "python function",
			ExpectedLanguage: "python",
			DetectedLanguage: "python",
			Confidence:       0.7,
			Passed:           true,
		}},
	}

	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var m struct {
		Cases []map[string]any `json:"cases"`
	}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(m.Cases) != 1 {
		t.Fatalf("cases = %v", m.Cases)
	}
	for _, key := range []string{"test_name", "expected_language", "detected_language", "passed"} {
		if _, ok := m.Cases[0][key]; !ok {
			t.Errorf("missing case key %q in %s", key, data)
		}
	}
}
