// internal/interfaces/http/handlers/chat.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/restaurant-storefront/internal/domain/chat"
)

// ChatHandler proxies chatbot messages to the external AI service
type ChatHandler struct {
	chat *chat.Service
	log  *logrus.Entry
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *chat.Service, log *logrus.Entry) *ChatHandler {
	return &ChatHandler{
		chat: chatService,
		log:  log,
	}
}

// Ask handles POST /chat
func (h *ChatHandler) Ask(c *gin.Context) {
	if !h.chat.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Chat is not available right now",
		})
		return
	}

	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	reply, err := h.chat.Ask(c.Request.Context(), &req)
	if err != nil {
		h.log.WithError(err).Warn("Chat proxy request failed")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Chat is not available right now",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Reply generated successfully",
		"data":    reply,
	})
}
