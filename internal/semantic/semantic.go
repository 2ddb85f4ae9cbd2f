// Package semantic exposes the type information the detector needs:
// the implicit conversion applied to a method receiver and the generic
// shapes that define deferred queries and realized sequences.
package semantic

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"

	"github.com/mpyw/queryconv/internal/classify"
	"github.com/mpyw/queryconv/internal/typespec"
)

// Errors returned by [Info.Shape].
var (
	ErrShapeNotFound   = errors.New("shape type not declared in package")
	ErrNotGenericShape = errors.New("shape must be a generic type with exactly one type parameter")
)

// Conversion is the pair of a receiver's declared type and the type the
// selected member actually receives.
type Conversion struct {
	Declared  types.Type
	Converted types.Type
}

// Implicit reports whether the receiver is converted at all.
func (c Conversion) Implicit() bool {
	return !types.Identical(c.Declared, c.Converted)
}

// Model resolves conversions and shapes for a single analysis unit.
type Model interface {
	// Conversion returns the conversion applied to sel.X when sel is
	// selected. The second result is false when types are unresolved.
	Conversion(sel *ast.SelectorExpr) (Conversion, bool)

	// Shape resolves a "pkg/path.Type" name to its generic definition.
	// A package that is not reachable from the unit yields (nil, nil).
	Shape(name string) (*types.Named, error)
}

// Info implements [Model] over go/types results.
type Info struct {
	pkg  *types.Package
	info *types.Info
}

var _ Model = (*Info)(nil)

// New creates a model for the type-checked package.
func New(pkg *types.Package, info *types.Info) *Info {
	return &Info{pkg: pkg, info: info}
}

// Conversion implements [Model].
//
// Method values promoted through embedded struct fields are received by the
// embedded field, so the converted type is the type of the last field on the
// embedding path. Methods promoted through interface embedding are received
// by the embedded interface.
func (m *Info) Conversion(sel *ast.SelectorExpr) (Conversion, bool) {
	tv, ok := m.info.Types[sel.X]
	if !ok || !tv.IsValue() || !isValid(tv.Type) {
		return Conversion{}, false
	}
	declared := tv.Type

	selection, ok := m.info.Selections[sel]
	if !ok {
		return Conversion{}, false
	}

	if selection.Kind() != types.MethodVal {
		return Conversion{Declared: declared, Converted: declared}, true
	}

	index := selection.Index()
	converted := embeddedReceiver(declared, index)
	if converted == nil {
		return Conversion{}, false
	}

	if len(index) == 1 {
		if fn, ok := selection.Obj().(*types.Func); ok {
			if recv := fn.Signature().Recv(); recv != nil && isValid(recv.Type()) &&
				classify.Origin(recv.Type()) != classify.Origin(declared) {
				converted = recv.Type()
			}
		}
	}

	return Conversion{Declared: declared, Converted: converted}, true
}

// embeddedReceiver walks the embedded fields of a method selection path.
// The last index addresses the method itself and is not walked.
func embeddedReceiver(t types.Type, index []int) types.Type {
	for _, i := range index[:len(index)-1] {
		st, ok := deref(t).Underlying().(*types.Struct)
		if !ok || i < 0 || i >= st.NumFields() {
			return nil
		}
		t = st.Field(i).Type()
	}

	return t
}

// Shape implements [Model].
func (m *Info) Shape(name string) (*types.Named, error) {
	spec, err := typespec.Parse(name)
	if err != nil {
		return nil, err
	}

	pkg := findPackage(m.pkg, spec.PkgPath)
	if pkg == nil {
		return nil, nil
	}

	tn, ok := pkg.Scope().Lookup(spec.TypeName).(*types.TypeName)
	if !ok || !spec.Matches(tn) {
		return nil, fmt.Errorf("%w: %s", ErrShapeNotFound, spec)
	}

	named, ok := types.Unalias(tn.Type()).(*types.Named)
	if !ok || named.TypeParams().Len() != 1 {
		return nil, fmt.Errorf("%w: %s", ErrNotGenericShape, spec)
	}

	return named.Origin(), nil
}

// findPackage searches root and its transitive imports for path.
func findPackage(root *types.Package, path string) *types.Package {
	if root == nil {
		return nil
	}

	seen := make(map[*types.Package]bool)
	queue := []*types.Package{root}

	for len(queue) > 0 {
		pkg := queue[0]
		queue = queue[1:]

		if seen[pkg] {
			continue
		}
		seen[pkg] = true

		if pkg.Path() == path {
			return pkg
		}
		queue = append(queue, pkg.Imports()...)
	}

	return nil
}

func deref(t types.Type) types.Type {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		return types.Unalias(ptr.Elem())
	}

	return t
}

func isValid(t types.Type) bool {
	if t == nil {
		return false
	}
	basic, ok := t.(*types.Basic)

	return !ok || basic.Kind() != types.Invalid
}
