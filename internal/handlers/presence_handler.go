package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acllc88/bugleboy-radio/internal/radio"
)

type PresenceHandler struct {
	service *radio.Service
}

func NewPresenceHandler(service *radio.Service) *PresenceHandler {
	return &PresenceHandler{service: service}
}

// Online returns the current live roster and its size.
func (h *PresenceHandler) Online(c *gin.Context) {
	users := h.service.OnlineUsers()
	c.JSON(http.StatusOK, gin.H{
		"count": len(users),
		"users": users,
	})
}
