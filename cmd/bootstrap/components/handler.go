package components

import (
	"rentx-api/internal/handler"
	"rentx-api/internal/handler/api"
	"rentx-api/internal/handler/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRentRequestHandler,
		api.NewEarningsHandler,
		api.NewProductHandler,
		api.NewAdminHandler,
		NewHealthHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHealthHandler(pool *pgxpool.Pool) *api.HealthHandler {
	return api.NewHealthHandler(pool)
}

type handlerParams struct {
	fx.In

	Health      *api.HealthHandler
	RentRequest *api.RentRequestHandler
	Earnings    *api.EarningsHandler
	Product     *api.ProductHandler
	Admin       *api.AdminHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Health:      p.Health,
		RentRequest: p.RentRequest,
		Earnings:    p.Earnings,
		Product:     p.Product,
		Admin:       p.Admin,
	}
}
