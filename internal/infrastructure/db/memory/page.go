// Package memory holds process-local stores. Every store guards its state
// with a single mutex held for the whole operation; data does not survive a
// restart.
package memory

// paginate returns the 1-based page of items. A page past the end is empty.
func paginate[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		return []T{}
	}
	skip := (page - 1) * size
	if skip >= len(items) {
		return []T{}
	}
	end := skip + size
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}
