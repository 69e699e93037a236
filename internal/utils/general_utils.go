package utils

// Paginate translates a 1-based page and a page size into skip/limit values.
// Out-of-range inputs fall back to the first page of ten.
func Paginate(page, size int) (skip int64, limit int64) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}
	return int64((page - 1) * size), int64(size)
}

// TotalPages computes the page count for a pagination response.
func TotalPages(total int64, size int) int {
	if size < 1 {
		size = 10
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}
