package pagination

import (
	"math"
	"strconv"
)

// Page describes one offset-based page window. Offset is skip = (page-1)*limit.
type Page struct {
	Page   int
	Limit  int
	Offset int
}

// FromQuery parses page/limit query strings, clamping limit to maxLimit.
// Anything unparsable falls back to page 1 with defaultLimit.
func FromQuery(pageStr, limitStr string, defaultLimit, maxLimit int) Page {
	page, _ := strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return Page{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Pages returns the page count for a total: ceil(total/limit), at least 1.
func Pages(total int64, limit int) int {
	pages := int(math.Ceil(float64(total) / float64(limit)))
	if pages < 1 {
		pages = 1
	}
	return pages
}
