// Package custom tests user-configured shapes and materializers.
package custom

import "custom/store"

// ===== SHOULD REPORT =====

// [BAD]: Method promoted through interface embedding
func badLen(q store.Query[int]) int {
	return q.Len() // want `q is an custom/store.Query\[int\], but is being implicitly converted to an custom/store.Seq\[.*\]`
}

// [BAD]: Default materializers are replaced by -materializers
func badToList(q store.Query[string]) []string {
	return q.ToList() // want `q is an custom/store.Query\[string\], but is being implicitly converted to an custom/store.Seq\[.*\]`
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Configured materializers
func goodMaterializers(q store.Query[int]) {
	_ = q.Fetch()
	_ = q.Collect()
}

// [GOOD]: Explicit conversion
func goodExplicitConversion(q store.Query[int]) int {
	return store.Seq[int](q).Len()
}

// [GOOD]: Query method
func goodFilter(q store.Query[int]) {
	_ = q.Filter(func(int) bool { return true })
}

// [GOOD]: Unrelated struct embedding an in-memory sequence
func goodRows(r store.Rows[int]) int {
	return r.Len()
}
