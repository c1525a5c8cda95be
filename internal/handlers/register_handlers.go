package handlers

import (
	"net/http"

	"github.com/SscSPs/store_manager_app/cmd/docs"
	portssvc "github.com/SscSPs/store_manager_app/internal/core/ports/services"
	"github.com/SscSPs/store_manager_app/internal/middleware"
	"github.com/SscSPs/store_manager_app/internal/platform/config"
	"github.com/SscSPs/store_manager_app/internal/platform/metrics"
	"github.com/SscSPs/store_manager_app/internal/utils/daterange"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	resolver *daterange.Resolver,
	gatherer prometheus.Gatherer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if cfg.MetricsEnabled && gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(gatherer)))
	}

	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	RegisterStoreRoutes(v1, services, resolver, cfg.CurrencySymbol)

	setupSwaggerRoutes(r, cfg)
}

// RegisterStoreRoutes mounts every store-scoped resource under /stores/:store_id.
func RegisterStoreRoutes(
	rg *gin.RouterGroup,
	services *portssvc.ServiceContainer,
	resolver *daterange.Resolver,
	currencySymbol string,
) {
	registerValidators()

	store := rg.Group("/stores/:store_id")
	registerReportingRoutes(store, services.Reporting, resolver, currencySymbol)
	registerSaleRoutes(store, services.Sale, resolver, currencySymbol)
	registerExpenseRoutes(store, services.Expense, resolver, currencySymbol)
	registerCustomerRoutes(store, services.Customer, services.Credit, currencySymbol)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
