package domain

const DefaultPageSize = 10

// NormalizePage maps non-positive page numbers to 1 and non-positive sizes
// to DefaultPageSize.
func NormalizePage(pageNumber, pageSize int) (int, int) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return pageNumber, pageSize
}

// PageCount is ceil(total/pageSize), 0 for an empty set.
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	n := total / pageSize
	if total%pageSize != 0 {
		n++
	}
	return n
}

// PageWindow returns the [start, end) bounds of a normalized page within a
// set of total items. Pages past the end yield an empty window.
func PageWindow(pageNumber, pageSize, total int) (start, end int) {
	pageNumber, pageSize = NormalizePage(pageNumber, pageSize)
	if pageNumber-1 >= PageCount(total, pageSize) {
		return 0, 0
	}
	start = (pageNumber - 1) * pageSize
	return start, start + min(pageSize, total-start)
}

// PageOffset returns the row offset of a normalized page. ok is false when
// the offset does not fit in an int.
func PageOffset(pageNumber, pageSize int) (offset int, ok bool) {
	pageNumber, pageSize = NormalizePage(pageNumber, pageSize)
	const maxInt = int(^uint(0) >> 1)
	if pageNumber-1 > maxInt/pageSize {
		return 0, false
	}
	return (pageNumber - 1) * pageSize, true
}
