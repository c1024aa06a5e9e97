package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/config"
	domainRepo "github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/repository"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/presentation/http/handler"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/presentation/http/middleware"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Payment *handler.PaymentHandler
	Report  *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Log             *logrus.Entry
	// RateLimiter is built from Cfg.RateLimit when nil
	RateLimiter *middleware.UserRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	rateLimiter := deps.RateLimiter
	if rateLimiter == nil {
		rateLimiter = middleware.NewUserRateLimiter(
			middleware.RateLimiterConfigFor(deps.Cfg.RateLimit.Requests, deps.Cfg.RateLimit.Duration))
	}

	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(rateLimiter.Middleware())

		registerPaymentRoutes(protected, h, deps)
		registerReportRoutes(protected, h)
	}

	return router
}

func registerPaymentRoutes(rg *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := rg.Group("/orders/:orderId/payments")
	{
		orders.GET("", h.Payment.ListOrderPayments)
		orders.POST("/cash", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
			TTL:  deps.Cfg.Idempotency.TTL,
			Log:  deps.Log,
		}), h.Payment.RecordCashPayment)
	}

	rg.GET("/payments/:id", h.Payment.GetPayment)
}

func registerReportRoutes(rg *gin.RouterGroup, h *Handlers) {
	reports := rg.Group("/payments/reports")
	{
		reports.GET("", h.Report.GetReport)
		reports.GET("/export", h.Report.ExportReport)
	}
}
