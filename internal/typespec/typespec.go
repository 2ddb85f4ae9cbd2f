// Package typespec provides parsing and matching of type name specifications.
package typespec

import (
	"errors"
	"fmt"
	"go/types"
	"strings"
)

// ErrInvalidSpec is returned when a specification cannot be parsed.
var ErrInvalidSpec = errors.New("invalid type specification")

// Spec holds parsed components of a type specification.
// Format: "pkg/path.Type".
type Spec struct {
	PkgPath  string
	TypeName string
}

// Parse parses a single type specification string into components.
func Parse(s string) (Spec, error) {
	s = strings.TrimSpace(s)

	lastDot := strings.LastIndex(s, ".")
	if lastDot <= 0 || lastDot == len(s)-1 {
		return Spec{}, fmt.Errorf("%w: %q (want pkg/path.Type)", ErrInvalidSpec, s)
	}

	// A slash after the last dot means the dot belongs to the path ("example.com/pkg").
	if strings.Contains(s[lastDot+1:], "/") {
		return Spec{}, fmt.Errorf("%w: %q (want pkg/path.Type)", ErrInvalidSpec, s)
	}

	return Spec{
		PkgPath:  s[:lastDot],
		TypeName: s[lastDot+1:],
	}, nil
}

// String returns the specification in its "pkg/path.Type" form.
func (s Spec) String() string {
	return s.PkgPath + "." + s.TypeName
}

// Matches checks if a type name object matches this specification.
func (s Spec) Matches(obj *types.TypeName) bool {
	if obj == nil || obj.Name() != s.TypeName {
		return false
	}

	pkg := obj.Pkg()

	return pkg != nil && pkg.Path() == s.PkgPath
}
