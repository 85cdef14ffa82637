package pagination

import "strconv"

// holds pagination parameters from request; a zero Limit means no limit
type Params struct {
	Limit  int
	Offset int
}

// returns params that select every row
func All() Params {
	return Params{}
}

// DefaultParams returns pagination params with defaults applied
// defaultLimit: items per page when none is given (0 means all),
// maxLimit: upper bound on limit (0 means unbounded)
func DefaultParams(limit, offset, defaultLimit, maxLimit int) Params {
	if limit <= 0 {
		limit = defaultLimit
	}

	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	if offset < 0 {
		offset = 0
	}

	return Params{
		Limit:  limit,
		Offset: offset,
	}
}

// reads limit and offset query values, ignoring anything that is not an integer
func FromQuery(limitRaw, offsetRaw string, defaultLimit, maxLimit int) Params {
	limit, _ := strconv.Atoi(limitRaw)   //nolint:errcheck // invalid means unset
	offset, _ := strconv.Atoi(offsetRaw) //nolint:errcheck // invalid means unset

	return DefaultParams(limit, offset, defaultLimit, maxLimit)
}
