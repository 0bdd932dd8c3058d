package magickit

import (
	"strings"

	"github.com/gobwas/glob"
)

// ============================================================================
// FileSelector Interface
// ============================================================================

// FileSelector decides which files a Scanner classifies and which
// directories it descends into.
//
// Selectors are composable with And, Or and Not, and a Scanner can be
// handed any combination:
//
//	selector := magickit.And(
//	    magickit.Pattern("*.doc*"),
//	    magickit.FuncSelector(func(f *magickit.FileInfo) bool {
//	        return f.Size < 10*1024*1024
//	    }),
//	)
//	scanner := magickit.NewScanner(ident, magickit.WithSelector(selector))
type FileSelector interface {
	// Match returns true if the file should be classified.
	Match(file *FileInfo) bool

	// TraverseDescendants returns true if directory descendants should
	// be traversed. If false, the directory and all its contents are
	// skipped. Only called for directories (file.IsDir == true).
	TraverseDescendants(file *FileInfo) bool
}

// ============================================================================
// Built-in Selectors
// ============================================================================

// AllSelector matches all files and traverses all directories.
type AllSelector struct{}

func (s AllSelector) Match(file *FileInfo) bool               { return true }
func (s AllSelector) TraverseDescendants(file *FileInfo) bool { return true }

// All returns a selector that matches every file.
func All() FileSelector {
	return AllSelector{}
}

// FuncSelector adapts a plain predicate into a FileSelector that
// traverses all directories.
type FuncSelector func(file *FileInfo) bool

func (s FuncSelector) Match(file *FileInfo) bool               { return s(file) }
func (s FuncSelector) TraverseDescendants(file *FileInfo) bool { return true }

// ============================================================================
// Pattern - glob matching on the file name
// ============================================================================

type patternSelector struct {
	g glob.Glob
}

// Pattern creates a selector matching base names against a glob
// pattern. Supports *, ?, [abc], {alt1,alt2}.
//
// Examples:
//
//	Pattern("*.pdf")          // all PDF files
//	Pattern("*.{doc,docx}")   // Word files
//
// An invalid pattern yields a selector that matches nothing.
func Pattern(pattern string) FileSelector {
	g, err := glob.Compile(pattern)
	if err != nil {
		return FuncSelector(func(*FileInfo) bool { return false })
	}
	return &patternSelector{g: g}
}

func (s *patternSelector) Match(file *FileInfo) bool {
	return s.g.Match(file.Name)
}

func (s *patternSelector) TraverseDescendants(file *FileInfo) bool {
	return true
}

// ============================================================================
// PathPattern - glob matching on the full path
// ============================================================================

type pathPatternSelector struct {
	g glob.Glob
}

// PathPattern creates a selector matching whole paths against a
// separator-aware glob pattern, where * stops at '/' and ** crosses
// directories.
//
// Example:
//
//	PathPattern("**/vendor/**")
func PathPattern(pattern string) FileSelector {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return FuncSelector(func(*FileInfo) bool { return false })
	}
	return &pathPatternSelector{g: g}
}

func (s *pathPatternSelector) Match(file *FileInfo) bool {
	return s.g.Match(file.Path)
}

func (s *pathPatternSelector) TraverseDescendants(file *FileInfo) bool {
	return true
}

// ============================================================================
// Depth - depth limiting
// ============================================================================

type depthSelector struct {
	maxDepth int
	basePath string
}

// Depth limits traversal to maxDepth levels below basePath.
// Depth 1 = immediate children only.
func Depth(maxDepth int, basePath string) FileSelector {
	return &depthSelector{
		maxDepth: maxDepth,
		basePath: strings.TrimSuffix(basePath, "/"),
	}
}

func (s *depthSelector) getDepth(path string) int {
	rel := strings.TrimPrefix(path, s.basePath)
	rel = strings.Trim(rel, "/")
	if rel == "" {
		return 0
	}
	return strings.Count(rel, "/") + 1
}

func (s *depthSelector) Match(file *FileInfo) bool {
	return s.getDepth(file.Path) <= s.maxDepth
}

func (s *depthSelector) TraverseDescendants(file *FileInfo) bool {
	return s.getDepth(file.Path) < s.maxDepth
}

// ============================================================================
// Composable Selectors (And, Or, Not)
// ============================================================================

type andSelector struct {
	selectors []FileSelector
}

// And matches only if ALL selectors match.
func And(selectors ...FileSelector) FileSelector {
	return &andSelector{selectors: selectors}
}

func (s *andSelector) Match(file *FileInfo) bool {
	for _, sel := range s.selectors {
		if !sel.Match(file) {
			return false
		}
	}
	return true
}

func (s *andSelector) TraverseDescendants(file *FileInfo) bool {
	for _, sel := range s.selectors {
		if !sel.TraverseDescendants(file) {
			return false
		}
	}
	return true
}

type orSelector struct {
	selectors []FileSelector
}

// Or matches if ANY selector matches.
func Or(selectors ...FileSelector) FileSelector {
	return &orSelector{selectors: selectors}
}

func (s *orSelector) Match(file *FileInfo) bool {
	for _, sel := range s.selectors {
		if sel.Match(file) {
			return true
		}
	}
	return false
}

func (s *orSelector) TraverseDescendants(file *FileInfo) bool {
	for _, sel := range s.selectors {
		if sel.TraverseDescendants(file) {
			return true
		}
	}
	return false
}

type notSelector struct {
	selector FileSelector
}

// Not inverts a selector's match result. Traversal is not inverted:
// Not(Pattern("*.log")) still descends into every directory.
func Not(selector FileSelector) FileSelector {
	return &notSelector{selector: selector}
}

func (s *notSelector) Match(file *FileInfo) bool {
	return !s.selector.Match(file)
}

func (s *notSelector) TraverseDescendants(file *FileInfo) bool {
	return s.selector.TraverseDescendants(file)
}
