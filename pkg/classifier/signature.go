package classifier

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// LanguageSignature describes the detection rules for one language.
// A signature must carry at least one keyword, pattern or anti-pattern,
// otherwise it can never score.
type LanguageSignature struct {
	Name         string
	Keywords     []string
	Patterns     []string
	AntiPatterns []string
	Weight       float64
}

// FrameworkSignature describes the detection rules for one framework.
// Frameworks are only ever scored under their parent Language and carry
// no anti-patterns.
type FrameworkSignature struct {
	Name     string
	Language string
	Keywords []string
	Patterns []string
	Weight   float64
}

// Patterns and anti-patterns run in multiline mode so ^/$ anchor per line,
// and case-insensitively, matching the behavior signatures were tuned for.
const patternFlags = "(?im)"

type compiledLanguage struct {
	LanguageSignature
	patterns []*regexp.Regexp
	anti     []*regexp.Regexp
	keywords []keywordMatcher
}

type compiledFramework struct {
	FrameworkSignature
	patterns []*regexp.Regexp
	keywords []keywordMatcher
}

// keywordMatcher tests for a case-sensitive, word-boundary-delimited
// occurrence of a keyword. Boundaries are asserted only on edges that are
// word characters, so keywords like "#include" or "if __name__" still match
// at line starts.
type keywordMatcher struct {
	word string
	re   *regexp.Regexp
}

func compileKeyword(word string) keywordMatcher {
	expr := regexp.QuoteMeta(word)
	runes := []rune(word)
	if len(runes) > 0 && isWordRune(runes[0]) {
		expr = `\b` + expr
	}
	if len(runes) > 0 && isWordRune(runes[len(runes)-1]) {
		expr += `\b`
	}
	return keywordMatcher{word: word, re: regexp.MustCompile(expr)}
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func compilePatterns(kind, name string, exprs []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile(patternFlags + expr)
		if err != nil {
			return nil, fmt.Errorf("%s %q: pattern %q: %w", kind, name, expr, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

func (sig LanguageSignature) compile() (*compiledLanguage, error) {
	if strings.TrimSpace(sig.Name) == "" {
		return nil, fmt.Errorf("language signature with empty name")
	}
	if len(sig.Keywords) == 0 && len(sig.Patterns) == 0 && len(sig.AntiPatterns) == 0 {
		return nil, fmt.Errorf("language %q: signature has no keywords, patterns or anti-patterns", sig.Name)
	}
	if sig.Weight <= 0 {
		return nil, fmt.Errorf("language %q: weight must be positive, got %v", sig.Name, sig.Weight)
	}

	patterns, err := compilePatterns("language", sig.Name, sig.Patterns)
	if err != nil {
		return nil, err
	}
	anti, err := compilePatterns("language", sig.Name, sig.AntiPatterns)
	if err != nil {
		return nil, err
	}

	c := &compiledLanguage{LanguageSignature: sig, patterns: patterns, anti: anti}
	for _, kw := range sig.Keywords {
		c.keywords = append(c.keywords, compileKeyword(kw))
	}
	return c, nil
}

func (sig FrameworkSignature) compile() (*compiledFramework, error) {
	if strings.TrimSpace(sig.Name) == "" {
		return nil, fmt.Errorf("framework signature with empty name")
	}
	if len(sig.Keywords) == 0 && len(sig.Patterns) == 0 {
		return nil, fmt.Errorf("framework %q: signature has no keywords or patterns", sig.Name)
	}
	if sig.Weight <= 0 {
		return nil, fmt.Errorf("framework %q: weight must be positive, got %v", sig.Name, sig.Weight)
	}

	patterns, err := compilePatterns("framework", sig.Name, sig.Patterns)
	if err != nil {
		return nil, err
	}

	c := &compiledFramework{FrameworkSignature: sig, patterns: patterns}
	for _, kw := range sig.Keywords {
		c.keywords = append(c.keywords, compileKeyword(kw))
	}
	return c, nil
}
