package handler

import (
	"commerce-reconciler/config"
	"commerce-reconciler/internal/adapter/http/middleware"
	redisStore "commerce-reconciler/internal/adapter/storage/redis"
	"commerce-reconciler/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Payments       ports.PaymentReconciler
	Shipments      ports.ShipmentReconciler
	PickupBatcher  ports.PickupBatcher
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	RateLimit      config.RateLimitConfig
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Mode           string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.RateLimitRules(deps.RateLimit)
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok || rule.Limit <= 0 {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	paymentHandler := NewPaymentHandler(deps.Payments, deps.Logger)
	shippingHandler := NewShippingHandler(deps.Shipments, deps.PickupBatcher, deps.Logger)

	v1 := r.Group("/api/v1")

	// --- Customer-facing ---
	v1.POST("/checkout", middleware.Principal(), rl("checkout"), paymentHandler.Checkout)
	v1.GET("/payments/:merchant_txn_id", paymentHandler.GetStatus)

	shipping := v1.Group("/shipping")
	{
		shipping.GET("/serviceability/:pincode", rl("serviceability"), shippingHandler.Serviceability)
		shipping.GET("/track/:awb", rl("tracking"), shippingHandler.Track)
	}

	// --- External parties (always 200) ---
	v1.POST("/payments/callback/:provider", paymentHandler.Callback)
	shipping.POST("/webhook", shippingHandler.Webhook)

	// --- Admin actions ---
	admin := v1.Group("/admin", middleware.Actor())
	if deps.AuditSvc != nil {
		admin.Use(middleware.AuditLog(deps.AuditSvc))
	}
	{
		admin.POST("/orders/:order_id/shipment", shippingHandler.CreateShipment)
		admin.POST("/shipments/:awb/cancel", shippingHandler.CancelShipment)
		admin.PUT("/shipments/:awb", shippingHandler.EditShipment)
		admin.POST("/pickups", shippingHandler.SchedulePickup)
		admin.POST("/pickups/batch", shippingHandler.RunPickupBatch)
		admin.POST("/payments/:merchant_txn_id/refund", paymentHandler.Refund)
	}

	return r
}
