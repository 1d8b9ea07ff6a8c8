package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// MaxLimit caps the page size a caller may request.
const MaxLimit = 500

// Params holds pagination parameters extracted from a request. A Limit of
// zero means "no limit": list endpoints return the full result set unless
// the caller asks for a page.
type Params struct {
	Limit  int
	Offset int
}

// FromContext extracts pagination parameters from the echo context.
func FromContext(c echo.Context) Params {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 0 {
		limit = 0
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if offset < 0 {
		offset = 0
	}

	return Params{Limit: limit, Offset: offset}
}

// Unbounded reports whether the caller requested the full result set.
func (p Params) Unbounded() bool {
	return p.Limit <= 0
}

// HasNext reports whether another page may exist: a bounded request
// whose page came back full.
func (p Params) HasNext(returned int) bool {
	return !p.Unbounded() && returned >= p.Limit
}

// NextOffset returns the offset for the next page.
func (p Params) NextOffset() int {
	return p.Offset + p.Limit
}
