package handler

import (
	"log/slog"
	"net/http"

	"rentx-api/internal/domain/user"
	"rentx-api/internal/handler/api"
	"rentx-api/internal/handler/middleware"
	"rentx-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Health      *api.HealthHandler
	RentRequest *api.RentRequestHandler
	Earnings    *api.EarningsHandler
	Product     *api.ProductHandler
	Admin       *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogging(slog.Default()))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", h.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	buyer := authMiddleware.RequireRole(user.RoleBuyer)
	seller := authMiddleware.RequireRole(user.RoleSeller)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		rentRequests := apiGroup.Group("/rent-requests")
		addRoutes(rentRequests, []route{
			{Method: http.MethodPost, Path: "", Handler: h.RentRequest.Create, Mw: []gin.HandlerFunc{buyer}},
			{Method: http.MethodGet, Path: "/buyer", Handler: h.RentRequest.ListAsBuyer, Mw: []gin.HandlerFunc{buyer}},
			{Method: http.MethodGet, Path: "/seller", Handler: h.RentRequest.ListAsSeller, Mw: []gin.HandlerFunc{seller}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.RentRequest.Get},
			{Method: http.MethodPatch, Path: "/:id/decision", Handler: h.RentRequest.Decide, Mw: []gin.HandlerFunc{seller}},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.RentRequest.UpdateStatus, Mw: []gin.HandlerFunc{seller}},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/earnings", Handler: h.Earnings.Get, Mw: []gin.HandlerFunc{seller}},
			{Method: http.MethodPatch, Path: "/products/:id/stock", Handler: h.Product.UpdateStock, Mw: []gin.HandlerFunc{seller}},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireRole(user.RoleAdmin))
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/rentals", Handler: h.Admin.ListRentals},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
