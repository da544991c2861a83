package api

import (
	"nexlot/internal/api/handler"
	"nexlot/internal/api/middleware"
	"nexlot/internal/domain"
	"nexlot/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRouter(as *service.AuthService, ps *service.ParkingService, ss *service.SafetyService,
	authMw *middleware.AuthMiddleware, wsManager *handler.WebSocketManager) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// WebSocket endpoint (không cần auth cho real-time connection)
	wsHandler := handler.NewWebSocketHandler(wsManager)
	r.GET("/ws", wsHandler.HandleWebSocket)

	authHandler := handler.NewAuthHandler(as)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/signup", authHandler.Signup)

		authRoutes.POST("/logout", authMw.Authenticate(), authHandler.Logout)
		authRoutes.GET("/me", authMw.Authenticate(), authHandler.Me)
		authRoutes.PUT("/user-type", authMw.Authenticate(), authHandler.UpdateUserType)
	}

	v1 := r.Group("/api/v1")
	v1.Use(authMw.Authenticate())
	{
		spotH := handler.NewParkingSpotHandler(ps)
		spotRoutes := v1.Group("/parking-spots")
		{
			spotRoutes.GET("", spotH.ListSpots)
			spotRoutes.GET("/nearby", spotH.NearbySpots)
			spotRoutes.GET("/selection", spotH.GetSelectedSpot)
			spotRoutes.PUT("/selection", spotH.SelectSpot)
			spotRoutes.GET("/:id", spotH.GetSpotByID)
			spotRoutes.POST("", authMw.AuthorizeUserType(string(domain.UserTypeSpaceOwner)), spotH.CreateSpot)
			spotRoutes.PATCH("/:id", authMw.AuthorizeUserType(string(domain.UserTypeSpaceOwner)), spotH.UpdateSpot)
			spotRoutes.DELETE("/:id", authMw.AuthorizeUserType(string(domain.UserTypeSpaceOwner)), spotH.DeleteSpot)
		}

		bookingH := handler.NewBookingHandler(ps)
		bookingRoutes := v1.Group("/bookings")
		{
			bookingRoutes.GET("", bookingH.ListMyBookings)
			bookingRoutes.POST("", bookingH.CreateBooking)
		}

		safetyH := handler.NewSafetyHandler(ss)
		safetyRoutes := v1.Group("/safety")
		safetyRoutes.Use(authMw.AuthorizeUserType(string(domain.UserTypeSpaceOwner)))
		{
			safetyRoutes.POST("/analyze-image", safetyH.AnalyzeImage)
		}
	}
	return r
}
