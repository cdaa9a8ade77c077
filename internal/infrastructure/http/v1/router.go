// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"storefront/internal/domain/auth"
	companycat "storefront/internal/domain/catalogs/company"
	"storefront/internal/domain/catalogs/customer"
	"storefront/internal/domain/catalogs/item"
	"storefront/internal/domain/catalogs/itemgroup"
	"storefront/internal/domain/catalogs/lead"
	"storefront/internal/domain/defaults"
	"storefront/internal/domain/pricing"
	"storefront/internal/domain/quotation"
	"storefront/internal/infrastructure/http/v1/handlers"
	"storefront/internal/infrastructure/http/v1/middleware"
	"storefront/pkg/logger"
)

// RouterConfig wires the services into the HTTP surface.
type RouterConfig struct {
	Logger       *logger.Logger
	JWTValidator middleware.JWTValidator

	AuthService      *auth.Service
	QuotationService *quotation.Service
	CustomerService  *customer.Service
	ItemService      *item.Service
	PricingService   *pricing.Service
	DefaultsService  *defaults.Service

	ItemGroupRepo itemgroup.Repository
	LeadRepo      lead.Repository
	CompanyRepo   companycat.Repository

	DB handlers.Pinger
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Order matters: gzip wraps the writer first so envelopes written by the
	// error middleware after the handler chain still pass through the open
	// compressor; recovery is the innermost error source.
	router.Use(middleware.Gzip())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))

	healthHandler := handlers.NewHealthHandler(cfg.DB)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	api := router.Group("/api/v1")
	{
		authHandler := handlers.NewAuthHandler(cfg.AuthService)
		api.POST("/auth/login", authHandler.Login)

		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		// Quotation operations anchor on the session user's customer link, so
		// the whole group is gated on the customer role.
		quotationHandler := handlers.NewQuotationHandler(cfg.QuotationService)
		quotations := protected.Group("/quotations", middleware.RequireRole("Customer"))
		{
			quotations.GET("", quotationHandler.List)
			quotations.POST("", quotationHandler.Create)
			quotations.POST("/totals", quotationHandler.Totals)
			quotations.GET("/:name", quotationHandler.Get)
			quotations.PUT("/:name", quotationHandler.Update)
			quotations.GET("/:name/attachments", quotationHandler.Attachments)
			quotations.GET("/:name/pdf", quotationHandler.PDF)
		}

		catalogHandler := handlers.NewCatalogHandler(
			cfg.CustomerService,
			cfg.ItemService,
			cfg.PricingService,
			cfg.ItemGroupRepo,
			cfg.LeadRepo,
		)
		protected.GET("/customers", catalogHandler.Customers)
		protected.GET("/items", catalogHandler.Items)
		protected.GET("/item-groups", catalogHandler.ItemGroups)
		protected.GET("/leads", catalogHandler.Leads)

		companyHandler := handlers.NewCompanyHandler(cfg.CompanyRepo, cfg.DefaultsService)
		protected.GET("/company", companyHandler.Get)
	}

	return router
}
