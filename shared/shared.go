package shared

import (
	"fmt"
	"math"
	"strings"
)

const cacheKeySeparator = ":"

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// Paginate returns the 1-based page of items. Pages past the end are empty.
func Paginate[T any](items []T, page, limit int) []T {
	if page < 1 || limit < 1 {
		return []T{}
	}

	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}

	end := min(start+limit, len(items))

	return items[start:end]
}

// BuildCacheKey joins the parts into a colon separated key, e.g. view:3f2a:user:1757462400000:family.
func BuildCacheKey(parts ...any) string {
	values := make([]string, len(parts))
	for i, part := range parts {
		values[i] = fmt.Sprint(part)
	}

	return strings.Join(values, cacheKeySeparator)
}
