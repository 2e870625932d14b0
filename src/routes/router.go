package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/supply-dashboard/supply-dashboard-backend/src/controllers"
	"github.com/supply-dashboard/supply-dashboard-backend/src/middleware"
	"github.com/supply-dashboard/supply-dashboard-backend/src/services"
	"gorm.io/gorm"
)

// APIPrefix is the root of every resource route and the scope of the CORS policy.
const APIPrefix = "/api"

type RouterConfig struct {
	AllowedOrigins []string
	Logger         *slog.Logger
	// Registry receives the HTTP metrics and is served on /metrics.
	Registry *prometheus.Registry
}

// SetupRouter builds the engine with every resource mounted under APIPrefix.
func SetupRouter(db *gorm.DB, cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(logger),
		middleware.NewMetrics(registry).Handler(),
		middleware.SetupCORS(cfg.AllowedOrigins, APIPrefix),
	)

	healthController := controllers.NewHealthController(db)
	router.GET("/health", healthController.GetHealth)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := router.Group(APIPrefix)
	SetupItemRoutes(api, services.NewItemService(db))
	SetupWarehouseRoutes(api, services.NewWarehouseService(db))
	SetupInventoryRoutes(api, services.NewInventoryService(db))
	SetupOrderRoutes(api, services.NewOrderService(db))
	SetupShipmentRoutes(api, services.NewShipmentService(db))
	SetupSupplierRoutes(api, services.NewSupplierService(db))
	SetupUserRoutes(api, services.NewUserService(db))

	return router
}
