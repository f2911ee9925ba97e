// Package sigfile loads user-supplied signature files and registers their
// entries into a classifier registry. Loading happens during CLI setup,
// before any analysis starts.
package sigfile

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"guesslex/pkg/classifier"
)

// Language is one custom language entry. Weight defaults to 1.0.
type Language struct {
	Name         string   `yaml:"name"`
	Weight       float64  `yaml:"weight"`
	Keywords     []string `yaml:"keywords"`
	Patterns     []string `yaml:"patterns"`
	AntiPatterns []string `yaml:"anti_patterns"`
}

// Framework is one custom framework entry scored under Language.
type Framework struct {
	Name     string   `yaml:"name"`
	Language string   `yaml:"language"`
	Weight   float64  `yaml:"weight"`
	Keywords []string `yaml:"keywords"`
	Patterns []string `yaml:"patterns"`
}

// File is the YAML document shape.
type File struct {
	Languages  []Language          `yaml:"languages"`
	Frameworks []Framework         `yaml:"frameworks"`
	Extensions map[string][]string `yaml:"extensions"`
}

// Load parses a signature file. Unknown fields are rejected so typos
// surface instead of silently registering nothing.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read signature file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a signature document from bytes.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse signature file: %w", err)
	}
	return &f, nil
}

// Apply registers every entry into reg. Registration errors carry the
// offending signature and pattern; the first failure stops the apply.
func (f *File) Apply(reg *classifier.Registry) error {
	for _, lang := range f.Languages {
		weight := lang.Weight
		if weight == 0 {
			weight = 1.0
		}
		err := reg.RegisterLanguage(classifier.LanguageSignature{
			Name:         lang.Name,
			Keywords:     lang.Keywords,
			Patterns:     lang.Patterns,
			AntiPatterns: lang.AntiPatterns,
			Weight:       weight,
		})
		if err != nil {
			return err
		}
	}
	for _, fw := range f.Frameworks {
		weight := fw.Weight
		if weight == 0 {
			weight = 1.0
		}
		err := reg.RegisterFramework(classifier.FrameworkSignature{
			Name:     fw.Name,
			Language: fw.Language,
			Keywords: fw.Keywords,
			Patterns: fw.Patterns,
			Weight:   weight,
		})
		if err != nil {
			return err
		}
	}
	for ext, langs := range f.Extensions {
		if err := reg.RegisterExtension(ext, langs...); err != nil {
			return err
		}
	}
	return nil
}
