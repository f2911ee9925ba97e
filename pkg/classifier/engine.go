package classifier

import (
	"fmt"
	"strings"
)

// Tunables with documented defaults. They are fixed per engine so confidence
// stays a pure function of the winning score, reproducible across calls.
const (
	// DefaultNormalization is the empirical score ceiling used to map a raw
	// score into [0,1]. 2.5 puts a short snippet with a couple of strong
	// hits (raw ~1.6-2.0) comfortably in the 0.6-0.8 band while one-line
	// ambiguous input stays low.
	DefaultNormalization = 2.5

	// DefaultExtensionBoost is the multiplicative nudge a filename extension
	// hint applies to a candidate's score, at most once per language per call.
	DefaultExtensionBoost = 1.15

	// DefaultFrameworkThreshold is the score a framework must strictly
	// exceed before it is attached to the result.
	DefaultFrameworkThreshold = 0.0
)

// Options carries the engine tunables. Zero values fall back to the
// documented defaults.
type Options struct {
	Normalization      float64
	ExtensionBoost     float64
	FrameworkThreshold float64
}

// DefaultOptions returns the documented default tunables.
func DefaultOptions() Options {
	return Options{
		Normalization:      DefaultNormalization,
		ExtensionBoost:     DefaultExtensionBoost,
		FrameworkThreshold: DefaultFrameworkThreshold,
	}
}

// Engine classifies source text against a registry of signatures. It holds
// no mutable state, so a single engine may serve concurrent Analyze calls.
type Engine struct {
	registry *Registry
	opts     Options
}

// New builds an engine over the given registry. Zero-valued options are
// replaced with defaults. The registry must not be mutated once analysis
// has begun.
func New(registry *Registry, opts Options) *Engine {
	if opts.Normalization <= 0 {
		opts.Normalization = DefaultNormalization
	}
	if opts.ExtensionBoost <= 0 {
		opts.ExtensionBoost = DefaultExtensionBoost
	}
	return &Engine{registry: registry, opts: opts}
}

// Registry returns the registry the engine analyzes against.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Analyze classifies text, optionally using filename for an extension hint.
// It never fails: inputs with no signal yield the Unknown language with
// confidence 0 and empty evidence.
func (e *Engine) Analyze(text, filename string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Language: Unknown, Confidence: 0, Evidence: []string{}}
	}

	type scored struct {
		lang     *compiledLanguage
		boosted  float64
		evidence []string
	}

	hinted := make(map[string]bool)
	for _, name := range e.registry.hintFor(filename) {
		hinted[name] = true
	}

	candidates := make([]scored, 0, len(e.registry.languages))
	best := -1
	for _, lang := range e.registry.languages {
		raw, evidence := lang.score(text)
		// The boost applies exactly once per language even if several hint
		// entries name it, and never conjures a score out of nothing.
		if raw > 0 && hinted[lang.Name] {
			raw *= e.opts.ExtensionBoost
			evidence = append(evidence, fmt.Sprintf("Extension hint: %s", filename))
		}
		candidates = append(candidates, scored{lang: lang, boosted: raw, evidence: evidence})
		// Strict > keeps the first-registered candidate on ties.
		if best == -1 || raw > candidates[best].boosted {
			best = len(candidates) - 1
		}
	}

	if best == -1 || candidates[best].boosted == 0 {
		return Result{Language: Unknown, Confidence: 0, Evidence: []string{}}
	}

	winner := candidates[best]
	confidence := winner.boosted / e.opts.Normalization
	if confidence > 1 {
		confidence = 1
	}

	evidence := append([]string(nil), winner.evidence...)

	framework, frameworkEvidence := e.detectFramework(text, winner.lang.Name)
	evidence = append(evidence, frameworkEvidence...)

	return Result{
		Language:   winner.lang.Name,
		Confidence: confidence,
		Framework:  framework,
		Evidence:   evidence,
	}
}

// detectFramework scores every framework registered under language and
// returns the best one when it clears the acceptance threshold.
func (e *Engine) detectFramework(text, language string) (string, []string) {
	var (
		bestName  string
		bestScore float64
		bestEv    []string
		found     bool
	)
	for _, fw := range e.registry.frameworks {
		if fw.Language != language {
			continue
		}
		score, evidence := fw.score(text)
		if !found || score > bestScore {
			found = true
			bestName, bestScore, bestEv = fw.Name, score, evidence
		}
	}
	if !found || bestScore <= e.opts.FrameworkThreshold {
		return "", nil
	}
	return bestName, bestEv
}
