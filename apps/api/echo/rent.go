package echoapi

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/pgkhata/pgkhata/core/rent"
)

type rentApi struct {
	svc      rent.Service
	validate *validator.Validate
}

func registerRentAPI(g *echo.Group, svc rent.Service, validate *validator.Validate) {
	api := rentApi{
		svc:      svc,
		validate: validate,
	}

	g.GET("", api.query)
	g.POST("/generate", api.generate)
	g.POST("/remind", api.remind)
	g.PUT("/:id", api.recordPayment, objectMiddleware("id", func(ctx context.Context, ownerID, id int) (interface{}, error) {
		return svc.Get(ctx, ownerID, id)
	}))
}

type (
	// RentQuery holds the query params of a rent records listing; the month is read separately.
	RentQuery struct {
		Status   string `json:"status" query:"status" validate:"omitempty,rent_status"`
		PGID     int    `json:"pg_id" query:"pg_id"`
		TenantID int    `json:"tenant_id" query:"tenant_id"`
	}

	ReminderResponse struct {
		Sent int `json:"sent"`
	}
)

func (api *rentApi) query(ctx echo.Context) error {
	var params RentQuery
	if err := ctx.Bind(&params); err != nil {
		return ctx.JSON(http.StatusOK, []rent.Record{})
	}
	if err := api.validate.Struct(params); err != nil {
		return err
	}
	month, err := bindMonth(ctx, false)
	if err != nil {
		return err
	}

	filter := rent.QueryFilter{
		OwnerID:  ownerID(ctx),
		Month:    month,
		PGID:     params.PGID,
		TenantID: params.TenantID,
	}
	if params.Status != "" {
		filter.Statuses = []string{params.Status}
	}

	recs, err := api.svc.Query(ctx.Request().Context(), filter, bindPage(ctx))
	if err != nil {
		return errors.Wrap(err, "querying rent records")
	}
	if recs == nil {
		recs = []rent.Record{}
	}
	return ctx.JSON(http.StatusOK, recs)
}

func (api *rentApi) generate(ctx echo.Context) error {
	month, err := bindMonth(ctx, true)
	if err != nil {
		return err
	}

	res, err := api.svc.Generate(ctx.Request().Context(), ownerID(ctx), month)
	if err != nil {
		return errors.Wrap(err, "generating rent records")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *rentApi) remind(ctx echo.Context) error {
	month, err := bindMonth(ctx, true)
	if err != nil {
		return err
	}

	sent, err := api.svc.SendReminders(ctx.Request().Context(), ownerID(ctx), month)
	if err != nil {
		return errors.Wrap(err, "sending rent reminders")
	}
	return ctx.JSON(http.StatusOK, ReminderResponse{Sent: sent})
}

func (api *rentApi) recordPayment(ctx echo.Context) error {
	rec, ok := ctx.Get(contextObjectKey).(rent.Record)
	if !ok {
		return errors.Wrap(errObjNotFoundInCtx, "retrieving rent record from context")
	}

	var data rent.UpdateRecord
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateRecord")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	rec, err := api.svc.RecordPayment(ctx.Request().Context(), rec, data)
	if err != nil {
		return errors.Wrap(err, "recording payment")
	}
	return ctx.JSON(http.StatusOK, rec)
}
