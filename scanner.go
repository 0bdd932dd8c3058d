package magickit

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Tally counts classified files per category.
type Tally map[Category]int

// Total returns the number of files counted.
func (t Tally) Total() int {
	n := 0
	for _, count := range t {
		n += count
	}
	return n
}

// FileResult is the classification outcome for a single file.
type FileResult struct {
	Path        string
	Description string
	Category    Category
}

// ScanResult is the outcome of a directory scan.
type ScanResult struct {
	// Tally holds per-category counts for all classified files.
	Tally Tally

	// Files holds per-file results when WithFileResults is enabled.
	Files []FileResult

	// Skipped counts regular files that matched the selector but could
	// not be identified (unreadable, vanished mid-scan, ...).
	Skipped int
}

// ============================================================================
// Scanner
// ============================================================================

// Scanner walks a directory tree, classifies every regular file
// through an Identifier and tallies counts per category.
//
//	m, _ := magickit.New()
//	defer m.Close()
//
//	scanner := magickit.NewScanner(m)
//	result, err := scanner.Scan(ctx, "/var/uploads")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Tally[magickit.CategoryPDF], "PDF files")
type Scanner struct {
	ident       Identifier
	selector    FileSelector
	fileResults bool
}

// ScanOption configures a Scanner.
type ScanOption func(*Scanner)

// WithSelector restricts the scan to files matching the selector.
func WithSelector(selector FileSelector) ScanOption {
	return func(s *Scanner) {
		s.selector = selector
	}
}

// WithFileResults records a FileResult for every classified file in
// addition to the tally.
func WithFileResults() ScanOption {
	return func(s *Scanner) {
		s.fileResults = true
	}
}

// NewScanner creates a Scanner classifying through the given
// Identifier. The Scanner does not close the Identifier.
func NewScanner(ident Identifier, opts ...ScanOption) *Scanner {
	s := &Scanner{
		ident:    ident,
		selector: All(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewScannerFromConfig creates a Scanner whose selector is built from
// the config's comma-separated include/exclude glob patterns.
func NewScannerFromConfig(ident Identifier, cfg *Config, opts ...ScanOption) *Scanner {
	opts = append([]ScanOption{WithSelector(selectorFromPatterns(cfg.ScanInclude, cfg.ScanExclude))}, opts...)
	return NewScanner(ident, opts...)
}

// selectorFromPatterns combines include and exclude pattern lists into
// a single selector. Empty include means "everything".
func selectorFromPatterns(include, exclude string) FileSelector {
	selector := All()

	if patterns := splitPatterns(include); len(patterns) > 0 {
		selectors := make([]FileSelector, 0, len(patterns))
		for _, p := range patterns {
			selectors = append(selectors, Pattern(p))
		}
		selector = Or(selectors...)
	}

	if patterns := splitPatterns(exclude); len(patterns) > 0 {
		for _, p := range patterns {
			selector = And(selector, Not(Pattern(p)))
		}
	}

	return selector
}

func splitPatterns(s string) []string {
	var patterns []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// Scan walks the tree rooted at root and classifies every regular
// file the selector matches. Directories the selector declines to
// traverse are skipped entirely. The walk honors ctx cancellation
// between entries.
func (s *Scanner) Scan(ctx context.Context, root string) (*ScanResult, error) {
	result := &ScanResult{
		Tally: make(Tally),
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			// Root errors are fatal; anything below is skipped.
			if path == root {
				return err
			}
			result.Skipped++
			return nil
		}

		info, statErr := d.Info()
		if statErr != nil {
			result.Skipped++
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			// Follow the link and classify its target when the
			// target is a regular file. Dangling links count as
			// skipped so tallies reconcile with directory listings.
			target, targetErr := os.Stat(path)
			if targetErr != nil {
				result.Skipped++
				return nil
			}
			if !target.Mode().IsRegular() {
				return nil
			}
			info = target
		}

		file := &FileInfo{
			Name:    d.Name(),
			Path:    path,
			Size:    info.Size(),
			ModTime: info.ModTime(),
			IsDir:   d.IsDir(),
		}

		if d.IsDir() {
			if path != root && !s.selector.TraverseDescendants(file) {
				return filepath.SkipDir
			}
			return nil
		}

		// Regular files only: sockets and devices are not classified.
		if d.Type()&fs.ModeSymlink == 0 && !d.Type().IsRegular() {
			return nil
		}

		if !s.selector.Match(file) {
			return nil
		}

		desc, identErr := s.ident.File(path)
		if identErr != nil {
			result.Skipped++
			return nil
		}

		category := TypeInfo{Description: desc}.Category()
		result.Tally[category]++
		if s.fileResults {
			result.Files = append(result.Files, FileResult{
				Path:        path,
				Description: desc,
				Category:    category,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
