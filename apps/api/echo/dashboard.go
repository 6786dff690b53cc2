package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/pgkhata/pgkhata/core/dashboard"
)

func registerDashboardAPI(g *echo.Group, svc dashboard.Service) {
	g.GET("/stats", func(ctx echo.Context) error {
		month, err := bindMonth(ctx, true)
		if err != nil {
			return err
		}

		stats, err := svc.Stats(ctx.Request().Context(), ownerID(ctx), month)
		if err != nil {
			return errors.Wrap(err, "computing dashboard stats")
		}
		return ctx.JSON(http.StatusOK, stats)
	})
}
