// Package ignore handles //queryconv:ignore directives.
package ignore

import (
	"go/ast"
	"go/token"
	"slices"
	"strings"
)

const directive = "queryconv:ignore"

// Entry tracks an ignore directive and its usage.
type Entry struct {
	pos  token.Pos // Position of the ignore comment
	used bool
}

// Map tracks ignore entries by line number.
type Map map[int]*Entry

// Build scans a file for ignore comments and returns a map.
func Build(fset *token.FileSet, file *ast.File) Map {
	m := make(Map)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if isIgnoreComment(c.Text) {
				line := fset.Position(c.Pos()).Line
				m[line] = &Entry{pos: c.Pos()}
			}
		}
	}

	return m
}

// isIgnoreComment reports whether text is an ignore directive.
//
// Supported formats:
//   - //queryconv:ignore
//   - //queryconv:ignore - reason
//   - //queryconv:ignore // reason
func isIgnoreComment(text string) bool {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	rest, ok := strings.CutPrefix(text, directive)
	if !ok {
		return false
	}

	// Reject longer directive names such as "queryconv:ignored".
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// ShouldIgnore returns true if the same line or the previous line has an ignore comment.
// When an ignore is used, it marks the entry as used.
func (m Map) ShouldIgnore(line int) bool {
	for _, l := range []int{line, line - 1} {
		if entry := m[l]; entry != nil {
			entry.used = true
			return true
		}
	}

	return false
}

// Unused returns the positions of ignore directives that were not used, in source order.
func (m Map) Unused() []token.Pos {
	var unused []token.Pos

	for _, entry := range m {
		if !entry.used {
			unused = append(unused, entry.pos)
		}
	}
	slices.Sort(unused)

	return unused
}
