package linq

import (
	"iter"
	"slices"
)

// Enumerable is an in-memory sequence.
type Enumerable[T any] struct {
	seq iter.Seq[T]
}

// FromSlice creates a sequence over s.
func FromSlice[T any](s []T) Enumerable[T] {
	return Enumerable[T]{seq: slices.Values(s)}
}

// FromSeq creates a sequence over seq.
func FromSeq[T any](seq iter.Seq[T]) Enumerable[T] {
	return Enumerable[T]{seq: seq}
}

// All returns the underlying iterator.
func (e Enumerable[T]) All() iter.Seq[T] {
	if e.seq == nil {
		return func(func(T) bool) {}
	}
	return e.seq
}

// Where returns the elements for which pred holds.
func (e Enumerable[T]) Where(pred func(T) bool) Enumerable[T] {
	return FromSeq(func(yield func(T) bool) {
		for v := range e.All() {
			if pred(v) && !yield(v) {
				return
			}
		}
	})
}

// Count returns the number of elements.
func (e Enumerable[T]) Count() int {
	n := 0
	for range e.All() {
		n++
	}
	return n
}

// First returns the first element.
func (e Enumerable[T]) First() (T, bool) {
	for v := range e.All() {
		return v, true
	}
	var zero T
	return zero, false
}

// Any reports whether the sequence has at least one element.
func (e Enumerable[T]) Any() bool {
	_, ok := e.First()
	return ok
}

// ToList collects the elements into a slice.
func (e Enumerable[T]) ToList() []T {
	return slices.Collect(e.All())
}

// AsEnumerable returns e.
func (e Enumerable[T]) AsEnumerable() Enumerable[T] {
	return e
}

// Source executes a query with the given filters.
type Source[T any] interface {
	Query(filters []func(T) bool) iter.Seq[T]
	All() iter.Seq[T]
}

// SliceSource is a [Source] over a slice.
type SliceSource[T any] []T

// Query implements [Source].
func (s SliceSource[T]) Query(filters []func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
	next:
		for _, v := range s {
			for _, f := range filters {
				if !f(v) {
					continue next
				}
			}
			if !yield(v) {
				return
			}
		}
	}
}

// All implements [Source].
func (s SliceSource[T]) All() iter.Seq[T] {
	return slices.Values(s)
}

// Queryable is a deferred query against a [Source].
type Queryable[T any] struct {
	Enumerable[T]

	source  Source[T]
	filters []func(T) bool
}

// NewQueryable creates a query over src.
func NewQueryable[T any](src Source[T]) Queryable[T] {
	return Queryable[T]{
		Enumerable: FromSeq(src.All()),
		source:     src,
	}
}

// Where adds a filter evaluated by the source.
func (q Queryable[T]) Where(pred func(T) bool) Queryable[T] {
	q.filters = append(slices.Clip(q.filters), pred)
	return q
}

// AsEnumerable executes the query.
func (q Queryable[T]) AsEnumerable() Enumerable[T] {
	if q.source == nil {
		return q.Enumerable
	}
	return FromSeq(q.source.Query(q.filters))
}

// ToList executes the query and collects the results.
func (q Queryable[T]) ToList() []T {
	return q.AsEnumerable().ToList()
}
