package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acllc88/bugleboy-radio/internal/liveconfig"
	"github.com/acllc88/bugleboy-radio/internal/models"
)

type AdminHandler struct {
	sessions *liveconfig.AdminSessions
	config   *liveconfig.Channel
	console  *liveconfig.Console
}

func NewAdminHandler(sessions *liveconfig.AdminSessions, config *liveconfig.Channel, console *liveconfig.Console) *AdminHandler {
	return &AdminHandler{
		sessions: sessions,
		config:   config,
		console:  console,
	}
}

type adminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks operator credentials and issues a 2-hour session token.
func (h *AdminHandler) Login(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.sessions.Login(req.Username, req.Password)
	if err != nil {
		ErrorResponse(c, http.StatusUnauthorized, "Invalid admin credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout revokes the admin session.
func (h *AdminHandler) Logout(c *gin.Context) {
	h.sessions.Logout(c.GetHeader("X-Admin-Token"))
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

// RequireSession gates the admin-only routes on a live session token.
func (h *AdminHandler) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Admin-Token")
		if token == "" || !h.sessions.Valid(token) {
			ErrorResponse(c, http.StatusUnauthorized, "Admin session required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSettings returns the current live settings. This endpoint is public;
// every client needs it to render the maintenance gate and announcements.
func (h *AdminHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.config.Current())
}

// SaveSettings upserts the whole settings document.
func (h *AdminHandler) SaveSettings(c *gin.Context) {
	var req models.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.config.Save(c.Request.Context(), req, "admin"); err != nil {
		ErrorResponse(c, http.StatusBadGateway, "Failed to save settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// Stats returns the dashboard summary counts.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.console.Stats(c.Request.Context())
	if err != nil {
		ErrorResponse(c, http.StatusBadGateway, "Failed to load stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// PurgeChat deletes every chat message.
func (h *AdminHandler) PurgeChat(c *gin.Context) {
	n, err := h.console.PurgeChat(c.Request.Context())
	if err != nil {
		ErrorResponse(c, http.StatusBadGateway, "Failed to purge chat")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

// PurgePresence clears all presence records. Live clients re-appear on
// their next heartbeat.
func (h *AdminHandler) PurgePresence(c *gin.Context) {
	n, err := h.console.PurgePresence(c.Request.Context())
	if err != nil {
		ErrorResponse(c, http.StatusBadGateway, "Failed to purge presence")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}
