package sigfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"guesslex/pkg/classifier"
)

const zigSignatures = `
languages:
  - name: zig
    keywords: ["comptime", "pub fn"]
    patterns:
      - 'pub\s+fn\s+\w+'
      - '@import\s*\('
extensions:
  ".zig": ["zig"]
`

func TestLoadApplyDetect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signatures.yaml")
	if err := os.WriteFile(path, []byte(zigSignatures), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	reg := classifier.DefaultRegistry()
	if err := f.Apply(reg); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	engine := classifier.New(reg, classifier.DefaultOptions())
	code := "pub fn main() u8 {\n" +
		"    const std = @import(\"std\");\n" +
		"    const builtin = @import(\"builtin\");\n" +
		"    comptime var x = 0;\n" +
		"}"
	res := engine.Analyze(code, "main.zig")
	if res.Language != "zig" {
		t.Fatalf("language = %q (confidence %v), want zig", res.Language, res.Confidence)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("langs:\n  - name: x\n"))
	if err == nil {
		t.Fatal("expected error for unknown top-level field")
	}
	if !strings.Contains(err.Error(), "parse signature file") {
		t.Fatalf("error = %v, want parse context", err)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("languages: [unclosed")); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestApplyPropagatesRegistrationErrors(t *testing.T) {
	f := &File{
		Languages: []Language{{Name: "broken", Patterns: []string{`(`}}},
	}
	err := f.Apply(classifier.NewRegistry())
	if err == nil {
		t.Fatal("expected error for broken pattern")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Fatalf("error %q does not name the offending language", err)
	}
}

func TestApplyDefaultsWeightToOne(t *testing.T) {
	f := &File{
		Languages:  []Language{{Name: "lang", Patterns: []string{`x`}}},
		Frameworks: []Framework{{Name: "fw", Language: "lang", Patterns: []string{`y`}}},
	}
	reg := classifier.NewRegistry()
	if err := f.Apply(reg); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	fws := reg.Frameworks()
	if len(fws) != 1 || fws[0].Weight != 1.0 {
		t.Fatalf("Frameworks() = %+v, want single entry with weight 1.0", fws)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "read signature file") {
		t.Fatalf("error = %v, want read context", err)
	}
}
