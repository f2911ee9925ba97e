package classifier

import (
	"strings"
	"testing"
)

func TestRegisterLanguageValidation(t *testing.T) {
	valid := LanguageSignature{Name: "ok", Patterns: []string{`foo`}, Weight: 1.0}

	tests := []struct {
		name    string
		sig     LanguageSignature
		wantErr string
	}{
		{"empty name", LanguageSignature{Patterns: []string{`x`}, Weight: 1.0}, "empty name"},
		{"no rules", LanguageSignature{Name: "bare", Weight: 1.0}, "no keywords"},
		{"zero weight", LanguageSignature{Name: "w", Patterns: []string{`x`}}, "weight must be positive"},
		{"negative weight", LanguageSignature{Name: "w", Patterns: []string{`x`}, Weight: -1}, "weight must be positive"},
		{"bad pattern", LanguageSignature{Name: "bad", Patterns: []string{`(`}, Weight: 1.0}, `language "bad"`},
		{"bad anti-pattern", LanguageSignature{Name: "bad", Patterns: []string{`x`}, AntiPatterns: []string{`[`}, Weight: 1.0}, `language "bad"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			err := reg.RegisterLanguage(tt.sig)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
			if len(reg.Languages()) != 0 {
				t.Fatal("failed registration must leave the registry unchanged")
			}
		})
	}

	reg := NewRegistry()
	if err := reg.RegisterLanguage(valid); err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}
	if err := reg.RegisterLanguage(valid); err == nil {
		t.Fatal("duplicate registration must fail")
	}
}

func TestRegisterFrameworkValidation(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterLanguage(LanguageSignature{Name: "lang", Patterns: []string{`x`}, Weight: 1.0}); err != nil {
		t.Fatal(err)
	}

	if err := reg.RegisterFramework(FrameworkSignature{Name: "fw", Language: "missing", Patterns: []string{`x`}, Weight: 1.0}); err == nil {
		t.Fatal("unknown parent language must fail")
	}
	if err := reg.RegisterFramework(FrameworkSignature{Name: "fw", Language: "lang", Weight: 1.0}); err == nil {
		t.Fatal("framework without rules must fail")
	}
	if err := reg.RegisterFramework(FrameworkSignature{Name: "fw", Language: "lang", Patterns: []string{`(`}, Weight: 1.0}); err == nil {
		t.Fatal("broken pattern must fail")
	}

	good := FrameworkSignature{Name: "fw", Language: "lang", Patterns: []string{`x`}, Weight: 1.0}
	if err := reg.RegisterFramework(good); err != nil {
		t.Fatalf("valid framework rejected: %v", err)
	}
	if err := reg.RegisterFramework(good); err == nil {
		t.Fatal("duplicate framework must fail")
	}
}

func TestRegistrationOrderPreserved(t *testing.T) {
	reg := NewRegistry()
	names := []string{"zeta", "alpha", "mid"}
	for _, name := range names {
		if err := reg.RegisterLanguage(LanguageSignature{Name: name, Patterns: []string{`x`}, Weight: 1.0}); err != nil {
			t.Fatal(err)
		}
	}

	got := reg.Languages()
	if len(got) != len(names) {
		t.Fatalf("Languages() = %v", got)
	}
	for i, name := range names {
		if got[i] != name {
			t.Fatalf("Languages()[%d] = %q, want %q (insertion order)", i, got[i], name)
		}
	}
}

func TestRegisterExtensionNormalization(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterLanguage(LanguageSignature{Name: "python", Patterns: []string{`def`}, Weight: 1.0}); err != nil {
		t.Fatal(err)
	}

	// Missing dot and uppercase both normalize to ".py".
	if err := reg.RegisterExtension("PY", "python"); err != nil {
		t.Fatal(err)
	}
	exts := reg.Extensions()
	if len(exts) != 1 || exts[0] != ".py" {
		t.Fatalf("Extensions() = %v, want [.py]", exts)
	}

	if got := reg.hintFor("pkg/Main.PY"); len(got) != 1 || got[0] != "python" {
		t.Fatalf("hintFor(Main.PY) = %v, want [python]", got)
	}
	if got := reg.hintFor("Makefile"); got != nil {
		t.Fatalf("hintFor(Makefile) = %v, want nil", got)
	}
	if got := reg.hintFor(""); got != nil {
		t.Fatalf("hintFor(\"\") = %v, want nil", got)
	}

	if err := reg.RegisterExtension("  ", "python"); err == nil {
		t.Fatal("blank extension must fail")
	}
	if err := reg.RegisterExtension(".x"); err == nil {
		t.Fatal("extension without languages must fail")
	}
}

func TestDefaultRegistryContents(t *testing.T) {
	reg := DefaultRegistry()

	languages := reg.Languages()
	if len(languages) != 17 {
		t.Fatalf("len(Languages()) = %d, want 17", len(languages))
	}
	want := map[string]bool{"python": true, "javascript": true, "typescript": true, "go": true, "dart": true}
	for _, name := range languages {
		delete(want, name)
	}
	if len(want) != 0 {
		t.Fatalf("missing built-in languages: %v", want)
	}

	frameworks := reg.Frameworks()
	if len(frameworks) != 9 {
		t.Fatalf("len(Frameworks()) = %d, want 9", len(frameworks))
	}
	for _, fw := range frameworks {
		if reg.language(fw.Language) == nil {
			t.Errorf("framework %q references unregistered language %q", fw.Name, fw.Language)
		}
	}

	hinted := map[string]string{"app.jsx": "javascript", "main.py": "python", "main.go": "go", "index.tsx": "typescript"}
	for file, lang := range hinted {
		got := reg.hintFor(file)
		if len(got) == 0 || got[0] != lang {
			t.Errorf("hintFor(%s) = %v, want [%s]", file, got, lang)
		}
	}
}

func TestFlutterSignatureComplete(t *testing.T) {
	var flutter *FrameworkSignature
	for _, fw := range DefaultRegistry().Frameworks() {
		if fw.Name == "flutter" {
			flutter = &fw
			break
		}
	}
	if flutter == nil {
		t.Fatal("flutter framework not registered")
	}

	have := make(map[string]bool, len(flutter.Patterns))
	for _, p := range flutter.Patterns {
		have[p] = true
	}
	// Legacy and state-lifecycle widgets are part of the tuned table too.
	for _, want := range []string{
		`RaisedButton\s*\(`,
		`Margin\s*\(`,
		`didChangeDependencies\s*\(`,
		`ValueListenableBuilder<\w+>`,
		`Decoration\s*\(`,
	} {
		if !have[want] {
			t.Errorf("flutter signature missing pattern %q", want)
		}
	}
}
