package routes

import (
	"net/http"
	"time"

	"meetwise/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversational endpoints.
func RegisterChatRoutes(r *gin.Engine, chat *handlers.ChatHandler, confirm *handlers.ConfirmHandler) {
	api := r.Group("/api/chat")
	{
		api.POST("", chat.HandleChat)
		api.POST("/confirm", confirm.HandleConfirm)
		api.GET("/session/:sessionID/history", chat.GetHistory)
		api.GET("/session/:sessionID/bookings", confirm.ListBookings)
		api.DELETE("/session/:sessionID", chat.ClearSession)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MeetWise"})
	})
}

// CORSMiddleware returns the CORS policy for browser clients.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
