// Package linq provides the deferred query and in-memory sequence types that
// queryconv recognizes by default.
//
// # Overview
//
// [Enumerable] is a realized, in-memory sequence. [Queryable] is a deferred
// query against a [Source]: filters added with [Queryable.Where] are handed to
// the source when the query is materialized, so the source can evaluate them
// where the data lives.
//
// Queryable embeds Enumerable. Methods Queryable does not declare itself are
// promoted from the embedded Enumerable and run over the unfiltered, fully
// loaded sequence:
//
//	q := linq.NewQueryable(users)
//	n := q.Where(isActive).Count()   // counts every user, filter is dropped
//
// Materialize explicitly instead:
//
//	n := q.Where(isActive).AsEnumerable().Count()
//	list := q.Where(isActive).ToList()
//
// The queryconv analyzer reports the first form.
package linq
