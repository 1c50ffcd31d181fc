package impl

import "bazaar/config"

// normalizePage clamps listing parameters to sane values: page starts at 1,
// limit falls back to the configured default and never exceeds the maximum.
func normalizePage(page, limit int, cfg config.PaginationConfig) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = cfg.DefaultLimit
	}
	if cfg.MaxLimit > 0 && limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}

	return page, limit
}

// totalPages is the page count for a total row count at the given limit.
func totalPages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	return int(pages)
}
