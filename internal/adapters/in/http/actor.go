package http

import (
	"net/http"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services/accesspolicy"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the authenticating gateway. Authentication
// itself is an external collaborator; this service only consumes its
// verdict.
const (
	HeaderUserID       = "X-User-Id"
	HeaderUserRole     = "X-User-Role"
	HeaderWarehouseIDs = "X-Warehouse-Ids"

	actorContextKey = "fulfillment.actor"
)

// ActorMiddleware resolves the acting user from the identity headers and
// stores it on the request context. Requests without a complete identity
// are rejected before reaching any handler.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			actor, err := actorFromHeaders(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing or malformed identity headers",
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

func actorFromHeaders(ctx echo.Context) (accesspolicy.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderUserID))
	if err != nil {
		return accesspolicy.Actor{}, err
	}

	role, err := accesspolicy.RoleFromString(ctx.Request().Header.Get(HeaderUserRole))
	if err != nil {
		return accesspolicy.Actor{}, err
	}

	var warehouseIDs []kernel.UUID
	if raw := ctx.Request().Header.Get(HeaderWarehouseIDs); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			warehouseID, parseErr := kernel.UUIDFromString(strings.TrimSpace(part))
			if parseErr != nil {
				return accesspolicy.Actor{}, parseErr
			}
			warehouseIDs = append(warehouseIDs, warehouseID)
		}
	}

	return accesspolicy.NewActor(id, role, warehouseIDs)
}

func actorFrom(ctx echo.Context) accesspolicy.Actor {
	actor, _ := ctx.Get(actorContextKey).(accesspolicy.Actor)
	return actor
}
