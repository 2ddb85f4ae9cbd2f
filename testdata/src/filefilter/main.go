// Package filefilter tests file filtering functionality.
// Tests that:
// - Generated files are always skipped (see generated.go)
// - Test files are analyzed by default (see code_test.go)
package filefilter

import "github.com/mpyw/queryconv/linq"

var queryable = linq.NewQueryable[int](linq.SliceSource[int]{1, 2})

// badCount should be reported in regular files.
func badCount() int {
	return queryable.Count() // want `queryable is an .*Queryable\[int\]`
}
