package pagination

import "math"

// PageSize is the fixed number of postings per page.
const PageSize = 24

type Result struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalJobs   int64 `json:"totalJobs"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// ClampPage maps any page below 1 to 1.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Offset is the row offset of page for the given page size. It saturates at
// math.MaxInt64 instead of wrapping for pages too large to address.
func Offset(page, pageSize int) int64 {
	if pageSize < 1 {
		pageSize = PageSize
	}
	skip := int64(ClampPage(page) - 1)
	if skip > math.MaxInt64/int64(pageSize) {
		return math.MaxInt64
	}
	return skip * int64(pageSize)
}

// Assemble computes the page window metadata. An empty result set has zero
// pages and no neighbours regardless of page.
func Assemble(page int, totalCount int64, pageSize int) Result {
	if pageSize < 1 {
		pageSize = PageSize
	}
	page = ClampPage(page)

	res := Result{CurrentPage: page, TotalJobs: totalCount}
	if totalCount <= 0 {
		res.TotalJobs = 0
		return res
	}

	res.TotalPages = int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	res.HasNext = page < res.TotalPages
	res.HasPrev = page > 1
	return res
}
