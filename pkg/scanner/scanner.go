// Package scanner walks a source tree and classifies every candidate file
// with the detection engine. The engine itself is stateless, so files are
// analyzed on a bounded worker pool; one file failing never aborts the batch.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"runtime"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"guesslex/pkg/classifier"
)

// DefaultMaxFileSize bounds how much of a file is read for analysis (1 MB).
// Heuristic scoring saturates long before that.
const DefaultMaxFileSize = 1 << 20

// binarySniffLen is how many leading bytes are inspected for binary content.
const binarySniffLen = 8000

// DefaultSkipDirs are directory names never descended into.
var DefaultSkipDirs = []string{
	".git", "node_modules", ".venv", "venv", "dist", "build", "__pycache__", "vendor",
}

// Options controls a scan.
type Options struct {
	// Workers bounds concurrent analyses; <= 0 means one worker per file up
	// to a small fixed pool handled by errgroup's limit of GOMAXPROCS.
	Workers int

	// MinConfidence filters results below the threshold out of the report.
	MinConfidence float64

	// Extensions restricts candidates to these extensions (leading dot).
	// Empty means every extension the engine's registry has a hint for.
	Extensions []string

	// Include, when non-empty, keeps only paths matching at least one of
	// these doublestar globs (relative, slash-separated).
	Include []string

	// MaxFileSize overrides DefaultMaxFileSize when positive.
	MaxFileSize int64
}

// FileResult is one classified file.
type FileResult struct {
	Path       string  `json:"file"`
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	Framework  string  `json:"framework,omitempty"`
}

// FileError records a per-file failure that did not abort the scan.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Report aggregates a finished scan. Results are sorted by path so output
// is deterministic regardless of worker scheduling.
type Report struct {
	Results       []FileResult   `json:"results"`
	FilesFound    int            `json:"files_found"`
	FilesAnalyzed int            `json:"files_analyzed"`
	FilesSkipped  int            `json:"files_skipped"`
	Languages     map[string]int `json:"languages"`
	Errors        []FileError    `json:"-"`
}

// Scan classifies every candidate file under fsys. The context cancels the
// walk and any in-flight workers; a cancelled scan returns ctx.Err().
func Scan(ctx context.Context, fsys fs.FS, engine *classifier.Engine, opts Options) (*Report, error) {
	exts := make(map[string]bool)
	for _, ext := range opts.Extensions {
		exts[strings.ToLower(ext)] = true
	}
	if len(exts) == 0 {
		for _, ext := range engine.Registry().Extensions() {
			exts[ext] = true
		}
	}

	maxSize := opts.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	var candidates []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if skipDir(path.Base(p)) {
				return fs.SkipDir
			}
			return nil
		}
		if !exts[strings.ToLower(path.Ext(p))] {
			return nil
		}
		if len(opts.Include) > 0 && !matchesAny(opts.Include, p) {
			return nil
		}
		candidates = append(candidates, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	report := &Report{
		FilesFound: len(candidates),
		Languages:  make(map[string]int),
	}

	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	} else {
		g.SetLimit(defaultWorkers())
	}

	for _, p := range candidates {
		p := p
		g.Go(func() error {
			if gCtx.Err() != nil {
				return gCtx.Err()
			}
			text, err := readHead(fsys, p, maxSize)
			if err != nil {
				mu.Lock()
				report.Errors = append(report.Errors, FileError{Path: p, Err: err})
				mu.Unlock()
				return nil
			}
			if looksBinary(text) {
				mu.Lock()
				report.FilesSkipped++
				mu.Unlock()
				return nil
			}

			res := engine.Analyze(text, path.Base(p))

			mu.Lock()
			defer mu.Unlock()
			if res.Confidence < opts.MinConfidence {
				report.FilesSkipped++
				return nil
			}
			report.Results = append(report.Results, FileResult{
				Path:       p,
				Language:   res.Language,
				Confidence: res.Confidence,
				Framework:  res.Framework,
			})
			report.Languages[res.Language]++
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].Path < report.Results[j].Path
	})
	sort.Slice(report.Errors, func(i, j int) bool {
		return report.Errors[i].Path < report.Errors[j].Path
	})
	report.FilesAnalyzed = len(report.Results)
	return report, nil
}

func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

func skipDir(name string) bool {
	for _, skip := range DefaultSkipDirs {
		if name == skip {
			return true
		}
	}
	return false
}

func matchesAny(globs []string, p string) bool {
	for _, glob := range globs {
		if ok, err := doublestar.Match(glob, p); err == nil && ok {
			return true
		}
	}
	return false
}

// readHead reads at most maxSize bytes of the file.
func readHead(fsys fs.FS, p string, maxSize int64) (string, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, 0, 64*1024)
	tmp := make([]byte, 32*1024)
	var total int64
	for total < maxSize {
		n, err := f.Read(tmp)
		if n > 0 {
			if int64(n) > maxSize-total {
				n = int(maxSize - total)
			}
			buf = append(buf, tmp[:n]...)
			total += int64(n)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return string(buf), nil
			}
			// A truncated prefix must not be analyzed as the whole file.
			return "", err
		}
	}
	return string(buf), nil
}

// looksBinary reports whether the head of the content is not analyzable
// text: a NUL byte or invalid UTF-8 short-circuits before the engine runs.
func looksBinary(text string) bool {
	head := text
	if len(head) > binarySniffLen {
		head = head[:binarySniffLen]
		// Trim a rune possibly cut in half by the byte slice.
		for len(head) > 0 && !utf8.RuneStart(head[len(head)-1]) {
			head = head[:len(head)-1]
		}
		if len(head) > 0 {
			head = head[:len(head)-1]
		}
	}
	if strings.IndexByte(head, 0x00) >= 0 {
		return true
	}
	return !utf8.ValidString(head)
}
