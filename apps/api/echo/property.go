package echoapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/pgkhata/pgkhata/core/property"
)

type propertyApi struct {
	svc      property.Service
	validate *validator.Validate
}

func registerPropertyAPI(g *echo.Group, svc property.Service, validate *validator.Validate) {
	api := propertyApi{
		svc:      svc,
		validate: validate,
	}

	pgMw := objectMiddleware("id", func(ctx context.Context, ownerID, id int) (interface{}, error) {
		return svc.GetPG(ctx, ownerID, id)
	})
	roomMw := objectMiddleware("room_id", func(ctx context.Context, ownerID, id int) (interface{}, error) {
		return svc.GetRoom(ctx, ownerID, id)
	})
	bedMw := objectMiddleware("bed_id", func(ctx context.Context, ownerID, id int) (interface{}, error) {
		return svc.GetBed(ctx, ownerID, id)
	})

	g.GET("", api.query)
	g.POST("", api.create)
	g.GET("/:id", api.retrieve, pgMw)
	g.PUT("/:id", api.update, pgMw)
	g.DELETE("/:id", api.destroy, pgMw)
	g.GET("/:id/vacancies", api.vacancies)

	g.POST("/:id/rooms", api.createRoom, pgMw)
	g.PUT("/rooms/:room_id", api.updateRoom, roomMw)
	g.DELETE("/rooms/:room_id", api.destroyRoom, roomMw)

	g.POST("/rooms/:room_id/beds", api.createBed, roomMw)
	g.PUT("/beds/:bed_id", api.updateBed, bedMw)
	g.DELETE("/beds/:bed_id", api.destroyBed, bedMw)
}

func ctxPG(ctx echo.Context) (property.PG, error) {
	if pg, ok := ctx.Get(contextObjectKey).(property.PG); ok {
		return pg, nil
	}
	return property.PG{}, errors.Wrap(errObjNotFoundInCtx, "retrieving PG from context")
}

func ctxRoom(ctx echo.Context) (property.Room, error) {
	if room, ok := ctx.Get(contextObjectKey).(property.Room); ok {
		return room, nil
	}
	return property.Room{}, errors.Wrap(errObjNotFoundInCtx, "retrieving room from context")
}

func ctxBed(ctx echo.Context) (property.Bed, error) {
	if bed, ok := ctx.Get(contextObjectKey).(property.Bed); ok {
		return bed, nil
	}
	return property.Bed{}, errors.Wrap(errObjNotFoundInCtx, "retrieving bed from context")
}

// PGs

func (api *propertyApi) query(ctx echo.Context) error {
	filter := new(property.PGFilter)
	if err := ctx.Bind(filter); err != nil {
		return ctx.JSON(http.StatusOK, []property.PG{})
	}
	filter.OwnerID = ownerID(ctx)
	filter.Clean()

	pgs, err := api.svc.QueryPGs(ctx.Request().Context(), *filter, bindPage(ctx))
	if err != nil {
		return errors.Wrap(err, "querying PGs")
	}
	if pgs == nil {
		pgs = []property.PG{}
	}
	return ctx.JSON(http.StatusOK, pgs)
}

func (api *propertyApi) create(ctx echo.Context) error {
	var data property.NewPG
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPG")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	pg, err := api.svc.CreatePG(ctx.Request().Context(), ownerID(ctx), data)
	if err != nil {
		return errors.Wrap(err, "creating PG")
	}
	return ctx.JSON(http.StatusCreated, pg)
}

func (api *propertyApi) retrieve(ctx echo.Context) error {
	pg, err := ctxPG(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, pg)
}

func (api *propertyApi) update(ctx echo.Context) error {
	pg, err := ctxPG(ctx)
	if err != nil {
		return err
	}

	var data property.UpdatePG
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdatePG")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	pg, err = api.svc.UpdatePG(ctx.Request().Context(), pg, data)
	if err != nil {
		return errors.Wrap(err, "updating PG")
	}
	return ctx.JSON(http.StatusOK, pg)
}

func (api *propertyApi) destroy(ctx echo.Context) error {
	pg, err := ctxPG(ctx)
	if err != nil {
		return err
	}
	if err = api.svc.DeletePG(ctx.Request().Context(), pg); err != nil {
		return errors.Wrap(err, "deleting PG")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *propertyApi) vacancies(ctx echo.Context) error {
	pgID, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	var roomID int
	if val := ctx.QueryParam("room_id"); val != "" {
		if roomID, err = strconv.Atoi(val); err != nil {
			return errHttpNotFound
		}
	}

	vacancies, err := api.svc.Vacancies(ctx.Request().Context(), ownerID(ctx), pgID, roomID)
	if err != nil {
		return errors.Wrap(err, "listing vacancies")
	}
	return ctx.JSON(http.StatusOK, vacancies)
}

// Rooms

func (api *propertyApi) createRoom(ctx echo.Context) error {
	pg, err := ctxPG(ctx)
	if err != nil {
		return err
	}

	var data property.NewRoom
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRoom")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	room, err := api.svc.CreateRoom(ctx.Request().Context(), pg, data)
	if err != nil {
		return errors.Wrap(err, "creating room")
	}
	return ctx.JSON(http.StatusCreated, room)
}

func (api *propertyApi) updateRoom(ctx echo.Context) error {
	room, err := ctxRoom(ctx)
	if err != nil {
		return err
	}

	var data property.UpdateRoom
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateRoom")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	room, err = api.svc.UpdateRoom(ctx.Request().Context(), room, data)
	if err != nil {
		return errors.Wrap(err, "updating room")
	}
	return ctx.JSON(http.StatusOK, room)
}

func (api *propertyApi) destroyRoom(ctx echo.Context) error {
	room, err := ctxRoom(ctx)
	if err != nil {
		return err
	}
	if err = api.svc.DeleteRoom(ctx.Request().Context(), room); err != nil {
		return errors.Wrap(err, "deleting room")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Beds

func (api *propertyApi) createBed(ctx echo.Context) error {
	room, err := ctxRoom(ctx)
	if err != nil {
		return err
	}

	var data property.NewBed
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewBed")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	bed, err := api.svc.CreateBed(ctx.Request().Context(), room, data)
	if err != nil {
		return errors.Wrap(err, "creating bed")
	}
	return ctx.JSON(http.StatusCreated, bed)
}

func (api *propertyApi) updateBed(ctx echo.Context) error {
	bed, err := ctxBed(ctx)
	if err != nil {
		return err
	}

	var data property.UpdateBed
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateBed")
	}
	if err = data.Validate(api.validate); err != nil {
		return err
	}

	bed, err = api.svc.UpdateBed(ctx.Request().Context(), bed, data)
	if err != nil {
		return errors.Wrap(err, "updating bed")
	}
	return ctx.JSON(http.StatusOK, bed)
}

func (api *propertyApi) destroyBed(ctx echo.Context) error {
	bed, err := ctxBed(ctx)
	if err != nil {
		return err
	}
	if err = api.svc.DeleteBed(ctx.Request().Context(), bed); err != nil {
		return errors.Wrap(err, "deleting bed")
	}
	return ctx.NoContent(http.StatusNoContent)
}
