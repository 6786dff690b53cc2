package echoapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/pgkhata/pgkhata/core/complaint"
)

type complaintApi struct {
	svc      complaint.Service
	validate *validator.Validate
}

func registerComplaintAPI(g *echo.Group, svc complaint.Service, validate *validator.Validate) {
	api := complaintApi{
		svc:      svc,
		validate: validate,
	}

	g.GET("", api.query)
	g.POST("", api.create)

	dg := g.Group("/:id", objectMiddleware("id", func(ctx context.Context, ownerID, id int) (interface{}, error) {
		return svc.Get(ctx, ownerID, id)
	}))
	dg.GET("", api.retrieve)
	dg.PUT("/resolve", api.resolve)
}

func ctxComplaint(ctx echo.Context) (complaint.Complaint, error) {
	if cpl, ok := ctx.Get(contextObjectKey).(complaint.Complaint); ok {
		return cpl, nil
	}
	return complaint.Complaint{}, errors.Wrap(errObjNotFoundInCtx, "retrieving complaint from context")
}

func (api *complaintApi) query(ctx echo.Context) error {
	filter := new(complaint.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []complaint.Complaint{})
	}
	filter.OwnerID = ownerID(ctx)
	if err := filter.Validate(api.validate); err != nil {
		return err
	}

	cpls, err := api.svc.Query(ctx.Request().Context(), *filter, bindPage(ctx))
	if err != nil {
		return errors.Wrap(err, "querying complaints")
	}
	if cpls == nil {
		cpls = []complaint.Complaint{}
	}
	return ctx.JSON(http.StatusOK, cpls)
}

func (api *complaintApi) create(ctx echo.Context) error {
	var data complaint.NewComplaint
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewComplaint")
	}
	// the tenant may also be given as a query param
	if data.TenantID == 0 {
		data.TenantID, _ = strconv.Atoi(ctx.QueryParam("tenant_id"))
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	cpl, err := api.svc.Create(ctx.Request().Context(), ownerID(ctx), data)
	if err != nil {
		return errors.Wrap(err, "creating complaint")
	}
	return ctx.JSON(http.StatusCreated, cpl)
}

func (api *complaintApi) retrieve(ctx echo.Context) error {
	cpl, err := ctxComplaint(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cpl)
}

func (api *complaintApi) resolve(ctx echo.Context) error {
	cpl, err := ctxComplaint(ctx)
	if err != nil {
		return err
	}

	cpl, err = api.svc.Resolve(ctx.Request().Context(), cpl)
	if err != nil {
		return errors.Wrap(err, "resolving complaint")
	}
	return ctx.JSON(http.StatusOK, cpl)
}
