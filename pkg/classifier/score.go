package classifier

import "fmt"

// Scoring weights shared by both scorers. A pattern hit counts every
// non-overlapping match; a keyword contributes once no matter how often it
// repeats.
const (
	patternWeight      = 0.6
	keywordWeight      = 0.4
	antiPatternPenalty = 0.3
)

// score computes the raw language score and its evidence trail. The clamp
// to zero happens once, after the penalty, never per term.
func (l *compiledLanguage) score(text string) (float64, []string) {
	var evidence []string

	patternMatches := 0
	for i, re := range l.patterns {
		n := len(re.FindAllStringIndex(text, -1))
		if n > 0 {
			patternMatches += n
			evidence = append(evidence, fmt.Sprintf("Pattern match: %s (%d times)", l.Patterns[i], n))
		}
	}

	keywordMatches := 0
	for _, kw := range l.keywords {
		if kw.re.MatchString(text) {
			keywordMatches++
			evidence = append(evidence, "Keyword found: "+kw.word)
		}
	}

	antiMatches := 0
	for i, re := range l.anti {
		n := len(re.FindAllStringIndex(text, -1))
		if n > 0 {
			antiMatches += n
			evidence = append(evidence, fmt.Sprintf("Anti-pattern found: %s (-%d)", l.AntiPatterns[i], n))
		}
	}

	raw := (float64(patternMatches)*patternWeight+float64(keywordMatches)*keywordWeight)*l.Weight -
		float64(antiMatches)*antiPatternPenalty
	if raw < 0 {
		raw = 0
	}
	return raw, evidence
}

// score computes the raw framework score. Structurally the language scorer
// without the anti-pattern term.
func (f *compiledFramework) score(text string) (float64, []string) {
	var evidence []string

	patternMatches := 0
	for i, re := range f.patterns {
		n := len(re.FindAllStringIndex(text, -1))
		if n > 0 {
			patternMatches += n
			evidence = append(evidence, fmt.Sprintf("Framework pattern: %s (%d times)", f.Patterns[i], n))
		}
	}

	keywordMatches := 0
	for _, kw := range f.keywords {
		if kw.re.MatchString(text) {
			keywordMatches++
			evidence = append(evidence, "Framework keyword: "+kw.word)
		}
	}

	return (float64(patternMatches)*patternWeight + float64(keywordMatches)*keywordWeight) * f.Weight, evidence
}
