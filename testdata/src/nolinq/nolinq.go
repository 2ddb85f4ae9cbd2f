// Package nolinq never reaches the configured shapes.
package nolinq

type Enumerable[T any] struct{ items []T }

func (e Enumerable[T]) Count() int { return len(e.items) }

type Queryable[T any] struct{ Enumerable[T] }

// [GOOD]: Look-alike types from another package
func goodLookAlike(q Queryable[int]) int {
	return q.Count()
}

// [BAD]: Unused directive is reported even without shapes
func unused() {
	//queryconv:ignore // want `unused queryconv:ignore directive`
	_ = 1
}
