package classifier

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Registry holds the signature tables consulted during analysis. Signatures
// are registered during a single-threaded setup phase; after that the
// registry is read-only and safe for concurrent analysis.
//
// Languages and frameworks are kept in registration order. Tie-breaking
// during analysis depends on that order, so the registry never stores them
// keyed by name.
type Registry struct {
	languages  []*compiledLanguage
	frameworks []*compiledFramework
	extensions map[string][]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{extensions: make(map[string][]string)}
}

// RegisterLanguage validates and adds a language signature. A failed
// registration leaves the registry unchanged.
func (r *Registry) RegisterLanguage(sig LanguageSignature) error {
	if r.language(sig.Name) != nil {
		return fmt.Errorf("language %q: already registered", sig.Name)
	}
	compiled, err := sig.compile()
	if err != nil {
		return err
	}
	r.languages = append(r.languages, compiled)
	return nil
}

// RegisterFramework validates and adds a framework signature. The parent
// language must already be registered.
func (r *Registry) RegisterFramework(sig FrameworkSignature) error {
	for _, fw := range r.frameworks {
		if fw.Name == sig.Name {
			return fmt.Errorf("framework %q: already registered", sig.Name)
		}
	}
	if r.language(sig.Language) == nil {
		return fmt.Errorf("framework %q: parent language %q is not registered", sig.Name, sig.Language)
	}
	compiled, err := sig.compile()
	if err != nil {
		return err
	}
	r.frameworks = append(r.frameworks, compiled)
	return nil
}

// RegisterExtension maps a file extension to the languages it suggests,
// most specific first. The extension is normalized to lowercase with a
// leading dot. Registering an extension twice replaces the earlier mapping.
func (r *Registry) RegisterExtension(ext string, languages ...string) error {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || ext == "." {
		return fmt.Errorf("extension hint: empty extension")
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if len(languages) == 0 {
		return fmt.Errorf("extension hint %q: no languages given", ext)
	}
	r.extensions[ext] = append([]string(nil), languages...)
	return nil
}

// Languages returns the registered language names in registration order.
func (r *Registry) Languages() []string {
	names := make([]string, len(r.languages))
	for i, lang := range r.languages {
		names[i] = lang.Name
	}
	return names
}

// Frameworks returns copies of the registered framework signatures in
// registration order.
func (r *Registry) Frameworks() []FrameworkSignature {
	sigs := make([]FrameworkSignature, len(r.frameworks))
	for i, fw := range r.frameworks {
		sigs[i] = fw.FrameworkSignature
	}
	return sigs
}

// Extensions returns the sorted set of extensions with registered hints.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.extensions))
	for ext := range r.extensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func (r *Registry) language(name string) *compiledLanguage {
	for _, lang := range r.languages {
		if lang.Name == name {
			return lang
		}
	}
	return nil
}

// hintFor derives the extension from filename and returns the hinted
// language names, or nil when the extension carries no hint.
func (r *Registry) hintFor(filename string) []string {
	if filename == "" {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return nil
	}
	return r.extensions[ext]
}
