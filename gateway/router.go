package gateway

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"jobtalk/auth"
	"jobtalk/contract"
	"jobtalk/services"
)

// NewRouter assembles the HTTP surface: the WebSocket endpoint, which does
// its own credential check before upgrading, and the authenticated query
// API.
func NewRouter(log *slog.Logger, identity contract.IdentityProvider,
	chat services.IChatService, ws *Gateway) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/ws", ws.Handle)

	api := NewAPI(log, chat)
	chatGroup := router.Group("/api/chat", auth.Middleware(identity))
	{
		chatGroup.GET("/conversations", api.ListConversations)
		chatGroup.GET("/messages/:userId", api.ListMessages)
		chatGroup.GET("/job/:jobId/conversations", api.JobConversations)
		chatGroup.GET("/my-application-conversations", api.ApplicationConversations)
		chatGroup.GET("/can-send-message/:userId", api.CanSend)
	}

	return router
}
