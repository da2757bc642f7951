package router

import (
	"time"

	"github.com/Yogesh-MG/inventory-os/internal/config"
	"github.com/Yogesh-MG/inventory-os/internal/handler"
	"github.com/Yogesh-MG/inventory-os/internal/infra"
	"github.com/Yogesh-MG/inventory-os/internal/middleware"
	"github.com/Yogesh-MG/inventory-os/internal/repository"
	"github.com/Yogesh-MG/inventory-os/internal/service"
	"github.com/Yogesh-MG/inventory-os/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, analyzer *infra.AnalyzerClient, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	partyRepo := repository.NewPartyRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	billRepo := repository.NewBillRepository(db)
	poRepo := repository.NewPurchaseOrderRepository(db)
	workflowRepo := repository.NewWorkflowRepository(db)
	alertRepo := repository.NewAlertRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	categorySvc := service.NewCategoryService(categoryRepo)
	productSvc := service.NewProductService(productRepo, categoryRepo)
	partySvc := service.NewPartyService(partyRepo)
	orderSvc := service.NewOrderService(orderRepo, partyRepo, productRepo)
	billingSvc := service.NewBillingService(billRepo, poRepo, partyRepo)
	automationSvc := service.NewAutomationService(workflowRepo, alertRepo, productRepo, dispatcher)
	reportSvc := service.NewReportService(productRepo, analyzer, rdb, time.Duration(cfg.ReportCacheTTLMinutes)*time.Minute)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	productsH := handler.NewProductsHandler(productSvc)
	partiesH := handler.NewPartiesHandler(partySvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	billsH := handler.NewBillsHandler(billingSvc)
	posH := handler.NewPurchaseOrdersHandler(billingSvc)
	workflowsH := handler.NewWorkflowsHandler(automationSvc)
	alertsH := handler.NewAlertsHandler(automationSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Protected routes — tokens are issued by the external identity provider
	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	{
		categories := v1.Group("/categories")
		{
			categories.POST("", categoriesH.Create)
			categories.GET("", categoriesH.List)
			categories.GET("/:id", categoriesH.Get)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Delete)
		}

		products := v1.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.GET("/low_stock", productsH.LowStock)
			products.GET("/total_value", productsH.TotalValue)
			products.GET("/:id", productsH.Get)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
			products.PATCH("/:id/deactivate", productsH.Deactivate)
			products.PATCH("/:id/reactivate", productsH.Reactivate)
		}

		// Unified customer/vendor registry
		customers := v1.Group("/customers")
		{
			customers.POST("", partiesH.Create)
			customers.GET("", partiesH.List)
			customers.GET("/:id", partiesH.Get)
			customers.PUT("/:id", partiesH.Update)
			customers.DELETE("/:id", partiesH.Delete)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", ordersH.Create)
			orders.GET("", ordersH.List)
			orders.GET("/revenue", ordersH.Revenue)
			orders.GET("/:id", ordersH.Get)
			orders.PUT("/:id", ordersH.Update)
			orders.DELETE("/:id", ordersH.Delete)
		}

		bills := v1.Group("/bills")
		{
			bills.POST("", billsH.Create)
			bills.GET("", billsH.List)
			bills.GET("/:id", billsH.Get)
			bills.GET("/:id/pdf", billsH.PDF)
			bills.PUT("/:id", billsH.Update)
			bills.DELETE("/:id", billsH.Delete)
		}

		pos := v1.Group("/purchase-orders")
		{
			pos.POST("", posH.Create)
			pos.GET("", posH.List)
			pos.GET("/:id", posH.Get)
			pos.PUT("/:id", posH.Update)
			pos.DELETE("/:id", posH.Delete)
		}

		workflows := v1.Group("/workflows")
		{
			workflows.POST("", workflowsH.Create)
			workflows.GET("", workflowsH.List)
			workflows.GET("/:id", workflowsH.Get)
			workflows.PUT("/:id", workflowsH.Update)
			workflows.DELETE("/:id", workflowsH.Delete)
			workflows.POST("/:id/trigger", workflowsH.Trigger)
		}

		alerts := v1.Group("/alerts")
		{
			alerts.POST("", alertsH.Create)
			alerts.GET("", alertsH.List)
			alerts.POST("/scan", alertsH.Scan)
			alerts.PATCH("/:id/mark_read", alertsH.MarkRead)
		}

		v1.GET("/inventory-report", reportsH.Inventory)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
