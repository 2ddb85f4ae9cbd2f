// Package detect finds deferred queries that are silently evaluated as
// in-memory sequences because a method is reached through an implicit
// receiver conversion.
package detect

import (
	"cmp"
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"iter"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/mpyw/queryconv/internal/classify"
	"github.com/mpyw/queryconv/internal/semantic"
)

// DefaultMaterializers are the method names accepted as explicit
// query-to-sequence conversions.
var DefaultMaterializers = []string{"ToList", "AsEnumerable"}

// Diagnostic is a single reported conversion.
type Diagnostic struct {
	Rule      Rule
	Pos       token.Pos
	End       token.Pos
	Receiver  string
	Declared  string
	Converted string
}

// Message renders the rule's message format.
func (d Diagnostic) Message() string {
	return fmt.Sprintf(d.Rule.Format, d.Receiver, d.Declared, d.Converted)
}

// Detector checks call sites against a classifier and a semantic model.
type Detector struct {
	rule          Rule
	classifier    *classify.Classifier
	model         semantic.Model
	materializers map[string]bool
	qualifier     types.Qualifier
}

// New creates a detector.
// A nil qualifier prints fully qualified package paths.
func New(
	rule Rule,
	classifier *classify.Classifier,
	model semantic.Model,
	materializers []string,
	qualifier types.Qualifier,
) *Detector {
	allowed := make(map[string]bool, len(materializers))
	for _, name := range materializers {
		allowed[name] = true
	}

	return &Detector{
		rule:          rule,
		classifier:    classifier,
		model:         model,
		materializers: allowed,
		qualifier:     qualifier,
	}
}

// Check evaluates a single call site.
func (d *Detector) Check(call *ast.CallExpr) (Diagnostic, bool) {
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return Diagnostic{}, false
	}

	conv, ok := d.model.Conversion(sel)
	if !ok || !conv.Implicit() {
		return Diagnostic{}, false
	}

	if !d.classifier.IsDeferredQuery(conv.Declared) || !d.classifier.IsRealizedSequence(conv.Converted) {
		return Diagnostic{}, false
	}

	if d.materializers[sel.Sel.Name] {
		return Diagnostic{}, false
	}

	return Diagnostic{
		Rule:      d.rule,
		Pos:       sel.Pos(),
		End:       sel.End(),
		Receiver:  receiverName(sel.X),
		Declared:  types.TypeString(conv.Declared, d.qualifier),
		Converted: types.TypeString(conv.Converted, d.qualifier),
	}, true
}

// Detect yields diagnostics for calls in the order they are produced.
func (d *Detector) Detect(calls iter.Seq[*ast.CallExpr]) iter.Seq[Diagnostic] {
	return func(yield func(Diagnostic) bool) {
		for call := range calls {
			diag, ok := d.Check(call)
			if !ok {
				continue
			}
			if !yield(diag) {
				return
			}
		}
	}
}

// DetectFiles checks files concurrently with at most workers goroutines
// and returns diagnostics sorted by position.
func (d *Detector) DetectFiles(ctx context.Context, files []*ast.File, workers int) ([]Diagnostic, error) {
	results := make([][]Diagnostic, len(files))

	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}

	for i, file := range files {
		eg.Go(func() error {
			for diag := range d.Detect(Calls(file)) {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[i] = append(results[i], diag)
			}

			return ctx.Err()
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	diags := slices.Concat(results...)
	slices.SortStableFunc(diags, func(a, b Diagnostic) int {
		return cmp.Compare(a.Pos, b.Pos)
	})

	return diags, nil
}

// Calls yields the call expressions of files in source order.
func Calls(files ...*ast.File) iter.Seq[*ast.CallExpr] {
	return func(yield func(*ast.CallExpr) bool) {
		for _, file := range files {
			for n := range ast.Preorder(file) {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					continue
				}
				if !yield(call) {
					return
				}
			}
		}
	}
}

// receiverName returns the identifier text for a bare identifier receiver
// and the printed expression otherwise.
func receiverName(x ast.Expr) string {
	if ident, ok := ast.Unparen(x).(*ast.Ident); ok {
		return ident.Name
	}

	return types.ExprString(x)
}
