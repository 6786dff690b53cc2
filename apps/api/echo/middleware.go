package echoapi

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/pgkhata/pgkhata/core"
)

const contextObjectKey = "object"

type objectGetter func(ctx context.Context, ownerID, id int) (interface{}, error)

// objectMiddleware loads the resource identified by the `param` path param into the context.
// Resources of other owners do not exist as far as the current owner is concerned.
func objectMiddleware(param string, get objectGetter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id, err := paramID(ctx, param)
			if err != nil {
				return err
			}

			obj, err := get(ctx.Request().Context(), ownerID(ctx), id)
			if err != nil {
				if core.IsNotFound(err) {
					return err
				}
				return errors.Wrap(err, "loading object")
			}
			ctx.Set(contextObjectKey, obj)
			return next(ctx)
		}
	}
}
