package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sauna-reservation/internal/handler/api"
	"sauna-reservation/internal/handler/middleware"
	"sauna-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reservation       *api.ReservationHandler
	SharedReservation *api.SharedReservationHandler
	Sauna             *api.SaunaHandler
	Boat              *api.BoatHandler
}

func NewHandlers(
	reservation *api.ReservationHandler,
	sharedReservation *api.SharedReservationHandler,
	sauna *api.SaunaHandler,
	boat *api.BoatHandler,
) Handlers {
	return Handlers{
		Reservation:       reservation,
		SharedReservation: sharedReservation,
		Sauna:             sauna,
		Boat:              boat,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.RequestLogging())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup.Group("/saunas"), []route{
			{Method: http.MethodGet, Path: "/:id/next-available", Handler: h.Sauna.NextAvailable},
			{Method: http.MethodGet, Path: "/:id/reservations", Handler: h.Sauna.ListDay},
		})

		addRoutes(apiGroup.Group("/club-sauna"), []route{
			{Method: http.MethodGet, Path: "/eligibility", Handler: h.Sauna.ClubSaunaEligibility},
		})

		addRoutes(apiGroup.Group("/boats"), []route{
			{Method: http.MethodGet, Path: "/:id/daily-limit", Handler: h.Boat.DailyLimit},
		})

		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.CreateReservation},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation},
			{Method: http.MethodGet, Path: "/:id/cancellation", Handler: h.Reservation.CancelEligibility},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.CancelReservation},
		})

		addRoutes(apiGroup.Group("/shared-reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.SharedReservation.Create, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.SharedReservation.Get},
			{Method: http.MethodPost, Path: "/:id/participants", Handler: h.SharedReservation.Join},
			{Method: http.MethodDelete, Path: "/:id/participants/:boatId", Handler: h.SharedReservation.Leave},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
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
