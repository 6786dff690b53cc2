package echoapi

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/pgkhata/pgkhata/core/tenant"
)

type tenantApi struct {
	svc      tenant.Service
	validate *validator.Validate
}

func registerTenantAPI(g *echo.Group, svc tenant.Service, validate *validator.Validate) {
	api := tenantApi{
		svc:      svc,
		validate: validate,
	}

	g.GET("", api.query)
	g.POST("", api.checkIn)

	dg := g.Group("/:id", objectMiddleware("id", func(ctx context.Context, ownerID, id int) (interface{}, error) {
		return svc.Get(ctx, ownerID, id)
	}))
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.POST("/checkout", api.checkout)
}

func ctxTenant(ctx echo.Context) (tenant.Tenant, error) {
	if tnt, ok := ctx.Get(contextObjectKey).(tenant.Tenant); ok {
		return tnt, nil
	}
	return tenant.Tenant{}, errors.Wrap(errObjNotFoundInCtx, "retrieving tenant from context")
}

func (api *tenantApi) query(ctx echo.Context) error {
	filter := new(tenant.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []tenant.Tenant{})
	}
	filter.OwnerID = ownerID(ctx)
	if err := filter.Validate(api.validate); err != nil {
		return err
	}

	tenants, err := api.svc.Query(ctx.Request().Context(), *filter, bindPage(ctx))
	if err != nil {
		return errors.Wrap(err, "querying tenants")
	}
	if tenants == nil {
		tenants = []tenant.Tenant{}
	}
	return ctx.JSON(http.StatusOK, tenants)
}

func (api *tenantApi) checkIn(ctx echo.Context) error {
	var data tenant.NewTenant
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTenant")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	tnt, err := api.svc.CheckIn(ctx.Request().Context(), ownerID(ctx), data)
	if err != nil {
		return errors.Wrap(err, "checking tenant in")
	}
	return ctx.JSON(http.StatusCreated, tnt)
}

func (api *tenantApi) retrieve(ctx echo.Context) error {
	tnt, err := ctxTenant(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, tnt)
}

func (api *tenantApi) update(ctx echo.Context) error {
	tnt, err := ctxTenant(ctx)
	if err != nil {
		return err
	}

	var data tenant.UpdateTenant
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateTenant")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	tnt, err = api.svc.Update(ctx.Request().Context(), tnt, data)
	if err != nil {
		return errors.Wrap(err, "updating tenant")
	}
	return ctx.JSON(http.StatusOK, tnt)
}

func (api *tenantApi) checkout(ctx echo.Context) error {
	tnt, err := ctxTenant(ctx)
	if err != nil {
		return err
	}

	tnt, err = api.svc.Checkout(ctx.Request().Context(), tnt)
	if err != nil {
		return errors.Wrap(err, "checking tenant out")
	}
	return ctx.JSON(http.StatusOK, tnt)
}

func (api *tenantApi) destroy(ctx echo.Context) error {
	tnt, err := ctxTenant(ctx)
	if err != nil {
		return err
	}
	if err = api.svc.Delete(ctx.Request().Context(), tnt); err != nil {
		return errors.Wrap(err, "deleting tenant")
	}
	return ctx.NoContent(http.StatusNoContent)
}
