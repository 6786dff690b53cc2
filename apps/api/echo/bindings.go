package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pgkhata/pgkhata/core"
)

var (
	skipParam      = "skip"
	limitParam     = "limit"
	monthParam     = "month"
	currMonthParam = "curr_month"
)

// bindPage reads the skip/limit query params. Malformed values fall back to the defaults.
func bindPage(ctx echo.Context) core.Page {
	var page core.Page
	if val := ctx.QueryParam(skipParam); val != "" {
		page.Skip, _ = strconv.Atoi(val)
	}
	if val := ctx.QueryParam(limitParam); val != "" {
		page.Limit, _ = strconv.Atoi(val)
	}
	page.Clean()
	return page
}

// bindMonth reads the `month` (or `curr_month`) value from the query string or form.
// An absent month is the zero Date unless orCurrent is set.
func bindMonth(ctx echo.Context, orCurrent bool) (core.Date, error) {
	val := ctx.FormValue(monthParam)
	if val == "" {
		val = ctx.FormValue(currMonthParam)
	}
	if val == "" && !orCurrent {
		return core.Date{}, nil
	}

	month, err := core.MonthOrCurrent(val)
	if err != nil {
		return core.Date{}, core.NewValidationError(err)
	}
	return month, nil
}

// paramID parses the integer path param `name`; anything else cannot match a resource.
func paramID(ctx echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id <= 0 {
		return 0, errHttpNotFound
	}
	return id, nil
}
