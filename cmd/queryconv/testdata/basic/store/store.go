package store

import "slices"

type Seq[T any] struct {
	items []T
}

func (s Seq[T]) Len() int { return len(s.items) }
func (s Seq[T]) ToList() []T { return slices.Clone(s.items) }
func (s Seq[T]) First() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[0], true
}

type Query[T any] struct {
	Seq[T]
	filters []func(T) bool
}

func From[T any](items ...T) Query[T] {
	return Query[T]{Seq: Seq[T]{items: items}}
}

func (q Query[T]) Where(pred func(T) bool) Query[T] {
	q.filters = append(slices.Clip(q.filters), pred)
	return q
}

func (q Query[T]) ToList() []T {
	var out []T
next:
	for _, v := range q.items {
		for _, f := range q.filters {
			if !f(v) {
				continue next
			}
		}
		out = append(out, v)
	}
	return out
}
