package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acllc88/bugleboy-radio/internal/chat"
	"github.com/acllc88/bugleboy-radio/internal/models"
	"github.com/acllc88/bugleboy-radio/internal/radio"
)

type ChatHandler struct {
	service *radio.Service
}

func NewChatHandler(service *radio.Service) *ChatHandler {
	return &ChatHandler{service: service}
}

// History returns the live message window, oldest first.
func (h *ChatHandler) History(c *gin.Context) {
	msgs := h.service.ChatMessages()
	c.JSON(http.StatusOK, gin.H{
		"messages": msgs,
		"count":    len(msgs),
		"unread":   h.service.Unread(),
	})
}

// Send posts a message as the signed-in listener.
func (h *ChatHandler) Send(c *gin.Context) {
	var req models.WSChatSendPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.SendChat(c.Request.Context(), req.Text); err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage), errors.Is(err, chat.ErrMessageTooLong):
			ErrorResponse(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, chat.ErrNotSignedIn):
			ErrorResponse(c, http.StatusUnauthorized, err.Error())
		case errors.Is(err, chat.ErrSendInFlight):
			ErrorResponse(c, http.StatusTooManyRequests, err.Error())
		default:
			ErrorResponse(c, http.StatusBadGateway, "Failed to send message")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "sent"})
}

// Open marks the chat panel open and clears the unread badge.
func (h *ChatHandler) Open(c *gin.Context) {
	h.service.OpenChat()
	c.JSON(http.StatusOK, gin.H{"unread": 0})
}

// Close marks the chat panel closed.
func (h *ChatHandler) Close(c *gin.Context) {
	h.service.CloseChat()
	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}
