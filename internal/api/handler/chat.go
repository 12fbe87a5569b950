package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tomoki/kanjilens/internal/service"
)

// ChatHandler handles the chat endpoint.
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// ChatRequest represents the chat API request.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Message is required",
		})
		return
	}

	response := h.chatService.Respond(c.Request.Context(), req.Message)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"response":  response,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
