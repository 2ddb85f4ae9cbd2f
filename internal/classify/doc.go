// Package classify decides whether a type is a deferred query or a realized
// in-memory sequence.
//
// # Overview
//
// Both capabilities are defined by a generic shape with exactly one type
// parameter. A type has the capability when its generic origin is the shape:
//
//	Queryable[int]     // deferred query
//	Queryable[string]  // deferred query
//	*Queryable[int]    // deferred query (pointer stripped)
//	Enumerable[int]    // realized sequence
//	[]int              // neither
//
// Shapes are resolved once per analysis pass (see the semantic package) and
// handed to [New]. A nil shape disables the corresponding capability.
package classify
