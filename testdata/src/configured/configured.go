// Package configured tests settings loaded from a config file.
package configured

import "custom/store"

func badLen(q store.Query[int]) int {
	return q.Len() // want `q is an custom/store.Query\[int\], but is being implicitly converted to an custom/store.Seq\[.*\]`
}

func badCollect(q store.Query[int]) []int {
	return q.Collect() // want `q is an custom/store.Query\[int\]`
}

func goodFetch(q store.Query[int]) []int {
	return q.Fetch()
}
