// Package basic contains test fixtures for the queryconv analyzer.
// This file covers the daily patterns: promoted in-memory methods reached
// through a deferred query, and the explicit materializations that are allowed.
package basic

import "github.com/mpyw/queryconv/linq"

var queryable = linq.NewQueryable[int](linq.SliceSource[int]{1, 3, 4})

type repository struct {
	users linq.Queryable[string]
}

func isOdd(i int) bool { return i%2 == 1 }

func key(i int) string { return "k" }

// ===== SHOULD REPORT =====

// [BAD]: Promoted method on a query
//
// ToMap is declared on Enumerable only, so the whole table is loaded.
func badToMap() {
	_ = queryable.ToMap(key) // want `queryable is an github.com/mpyw/queryconv/linq.Queryable\[int\], but is being implicitly converted to an github.com/mpyw/queryconv/linq.Enumerable\[int\]`
}

// [BAD]: Filter then count
//
// The filter is recorded on the query but Count runs over the unfiltered sequence.
func badWhereCount() {
	_ = queryable.Where(isOdd).Count() // want `queryable.Where\(isOdd\) is an github.com/mpyw/queryconv/linq.Queryable\[int\], but is being implicitly converted to an github.com/mpyw/queryconv/linq.Enumerable\[int\]`
}

// [BAD]: Same receiver used twice
//
// Every call site is reported on its own.
func badRepeated() {
	if queryable.Any() { // want `queryable is an .*Queryable\[int\], but is being implicitly converted to an .*Enumerable\[int\]`
		_, _ = queryable.First() // want `queryable is an .*Queryable\[int\]`
	}
	_, _ = queryable.Count(), queryable.Count() // want `queryable is an .*Queryable\[int\]` `queryable is an .*Queryable\[int\]`
}

// [BAD]: Range over promoted iterator
func badRange() {
	for v := range queryable.All() { // want `queryable is an .*Queryable\[int\]`
		_ = v
	}
}

// [BAD]: Pointer receiver
func badPointer() {
	p := &queryable
	_ = p.Count() // want `p is an \*github.com/mpyw/queryconv/linq.Queryable\[int\], but is being implicitly converted to an github.com/mpyw/queryconv/linq.Enumerable\[int\]`
}

// [BAD]: Field receiver with another type argument
func badField(r repository) {
	_ = r.users.Count() // want `r.users is an github.com/mpyw/queryconv/linq.Queryable\[string\], but is being implicitly converted to an github.com/mpyw/queryconv/linq.Enumerable\[string\]`
}

// [BAD]: Generic helper
func badGeneric[T any](q linq.Queryable[T]) int {
	return q.Count() // want `q is an github.com/mpyw/queryconv/linq.Queryable\[T\], but is being implicitly converted to an github.com/mpyw/queryconv/linq.Enumerable\[T\]`
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Materialize with ToList
func goodToList() {
	_ = queryable.Where(isOdd).ToList()
}

// [GOOD]: Materialize with AsEnumerable
func goodAsEnumerable() {
	_ = queryable.Where(isOdd).AsEnumerable()
	_ = queryable.Where(isOdd).AsEnumerable().Count()
}

// [GOOD]: Explicit embedded field
//
// Selecting the in-memory sequence by name is an explicit conversion.
func goodExplicitField() {
	_ = queryable.Enumerable.Count()
}

// [GOOD]: Query methods only
func goodQueryOnly() {
	_ = queryable.Where(isOdd).Where(isOdd)
}

// [GOOD]: In-memory sequence
func goodEnumerable() {
	e := linq.FromSlice([]int{1, 2, 3})
	_ = e.Where(isOdd).Count()
}

// [GOOD]: Method value without a call
func goodMethodValue() {
	count := queryable.Count
	_ = count
}

// [GOOD]: Package-qualified call
func goodPackageCall() {
	_ = linq.FromSlice([]string{"a"})
}
