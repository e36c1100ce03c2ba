package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// MaxLimit caps the result-count limit a caller may request.
const MaxLimit = 200

// Params holds result-limiting parameters extracted from a request.
type Params struct {
	Limit int
}

// FromContext extracts the limit parameter from the echo context, falling
// back to the resource's default and clamping to MaxLimit.
func FromContext(c echo.Context, defaultLimit int) Params {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Limit: limit}
}
