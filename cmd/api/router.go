package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sportcenter-backend/internal/shared/middleware"
	"sportcenter-backend/internal/shared/response"
	"sportcenter-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupBranchRoutes(v1, c)
		setupFieldRoutes(v1, c)
		setupPromotionRoutes(v1, c)
		setupBookingRoutes(v1, c)
		setupPaymentRoutes(v1, c)
		setupWebhookRoutes(v1, c)
		setupNotificationRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.AuthHandler.Register)
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/refresh", c.AuthHandler.Refresh)
		auth.GET("/me", middleware.AuthMiddleware(c.JWTManager), c.AuthHandler.Profile)
	}
}

// ========================================
// BRANCH ROUTES
// ========================================
func setupBranchRoutes(v1 *gin.RouterGroup, c *container.Container) {
	branches := v1.Group("/branches")
	{
		branches.GET("", c.BranchHandler.List)
		branches.GET("/:id", c.BranchHandler.Get)
	}
}

// ========================================
// FIELD ROUTES
// ========================================
func setupFieldRoutes(v1 *gin.RouterGroup, c *container.Container) {
	fields := v1.Group("/fields")
	{
		fields.GET("", c.FieldHandler.List)
		fields.GET("/:id", c.FieldHandler.Get)
		fields.GET("/:id/availability", c.FieldHandler.Availability)
	}
}

// ========================================
// PROMOTION ROUTES
// ========================================
func setupPromotionRoutes(v1 *gin.RouterGroup, c *container.Container) {
	promotions := v1.Group("/promotions")
	{
		promotions.GET("", c.PromotionHandler.List)
	}
}

// ========================================
// BOOKING ROUTES
// ========================================
func setupBookingRoutes(v1 *gin.RouterGroup, c *container.Container) {
	bookings := v1.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		bookings.POST("", c.BookingHandler.Create)
		bookings.GET("", c.BookingHandler.ListMine)
		bookings.GET("/:id", c.BookingHandler.Get)
		bookings.POST("/:id/cancel", c.BookingHandler.Cancel)
	}
}

// ========================================
// PAYMENT ROUTES
// ========================================
func setupPaymentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// Public: the checkout page needs the gateway client key for Snap.js.
	v1.GET("/payments/config", paymentConfigHandler(c))

	payments := v1.Group("/payments")
	payments.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		payments.GET("", c.PaymentHandler.ListMine)
	}
}

func paymentConfigHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		response.Success(ctx, http.StatusOK, gin.H{
			"clientKey": c.Config.Midtrans.ClientKey,
		})
	}
}

// ========================================
// WEBHOOK ROUTES
// ========================================
// No auth middleware: the gateway authenticates through its own channel
// and unknown payloads are rejected by the parser.
func setupWebhookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	webhooks := v1.Group("/webhooks")
	{
		webhooks.POST("/midtrans", c.WebhookHandler.HandleMidtransNotification)
	}
}

// ========================================
// NOTIFICATION ROUTES
// ========================================
func setupNotificationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	notifications := v1.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		notifications.GET("", c.NotificationHandler.List)
		notifications.GET("/unread-count", c.NotificationHandler.UnreadCount)
		notifications.PATCH("/:id/read", c.NotificationHandler.MarkRead)
		notifications.PATCH("/read-all", c.NotificationHandler.MarkAllRead)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminOnly())
	{
		admin.POST("/branches", c.BranchHandler.Create)
		admin.PUT("/branches/:id", c.BranchHandler.Update)
		admin.DELETE("/branches/:id", c.BranchHandler.Delete)

		admin.POST("/fields", c.FieldHandler.Create)
		admin.PUT("/fields/:id", c.FieldHandler.Update)
		admin.DELETE("/fields/:id", c.FieldHandler.Delete)
		admin.POST("/fields/:id/image", c.FieldHandler.UploadImage)

		admin.POST("/promotions", c.PromotionHandler.Create)
		admin.PUT("/promotions/:id", c.PromotionHandler.Update)
		admin.DELETE("/promotions/:id", c.PromotionHandler.Delete)

		admin.GET("/bookings", c.BookingHandler.ListAll)
		admin.GET("/bookings/stats", c.BookingHandler.Stats)
		admin.GET("/reports/revenue", c.BookingHandler.Revenue)

		admin.GET("/payments/:id", c.PaymentHandler.GetDetail)
		admin.POST("/payments/:id/mark-paid", c.WebhookHandler.MarkPaid)
		admin.PATCH("/payments/:id/status", c.WebhookHandler.UpdateStatus)

		admin.GET("/activity-logs", c.ActivityHandler.List)
	}
}
