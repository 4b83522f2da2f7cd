package pagination

import "strconv"

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ParsePageLimit parses page/limit query values into effective bounds.
// Page defaults to 1 and is floored at 1; limit defaults to 10 and is clamped
// to [1, 100]. Non-numeric input falls back to the defaults.
func ParsePageLimit(pageStr, limitStr string) (page, limit int) {
	page = 1
	if p, err := strconv.Atoi(pageStr); err == nil && p > 1 {
		page = p
	}

	limit = defaultLimit
	if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
		limit = l
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
