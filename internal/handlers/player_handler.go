package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acllc88/bugleboy-radio/internal/models"
	"github.com/acllc88/bugleboy-radio/internal/player"
	"github.com/acllc88/bugleboy-radio/internal/radio"
)

type PlayerHandler struct {
	service *radio.Service
	relay   *player.Relay
}

func NewPlayerHandler(service *radio.Service, relay *player.Relay) *PlayerHandler {
	return &PlayerHandler{service: service, relay: relay}
}

// Status returns the current playback state.
func (h *PlayerHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.PlayerState())
}

// Play starts a station, or toggles it when it is already the active one.
func (h *PlayerHandler) Play(c *gin.Context) {
	var req models.WSPlayerPlayPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Play(req.StationID); err != nil {
		if errors.Is(err, radio.ErrUnknownStation) {
			ErrorResponse(c, http.StatusNotFound, "Station not found")
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, "Failed to start playback")
		return
	}

	c.JSON(http.StatusOK, h.service.PlayerState())
}

// Toggle pauses or resumes the active station.
func (h *PlayerHandler) Toggle(c *gin.Context) {
	h.service.TogglePlay()
	c.JSON(http.StatusOK, h.service.PlayerState())
}

// Volume sets the playback volume (0..1).
func (h *PlayerHandler) Volume(c *gin.Context) {
	var req models.WSPlayerVolumePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.service.SetVolume(req.Volume)
	c.JSON(http.StatusOK, h.service.PlayerState())
}

// Mute toggles mute, restoring the previous volume on unmute.
func (h *PlayerHandler) Mute(c *gin.Context) {
	h.service.ToggleMute()
	c.JSON(http.StatusOK, h.service.PlayerState())
}

// Stream relays the live audio bytes of whatever is currently bound. The
// local UI points its audio element here.
func (h *PlayerHandler) Stream(c *gin.Context) {
	ch, cancel, contentType, ok := h.relay.Listen()
	if !ok {
		ErrorResponse(c, http.StatusConflict, "Nothing is playing")
		return
	}
	defer cancel()

	if contentType == "" {
		contentType = "audio/mpeg"
	}
	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "no-store")
	c.Status(http.StatusOK)

	flusher, _ := c.Writer.(http.Flusher)
	for {
		select {
		case chunk, open := <-ch:
			if !open {
				return
			}
			if _, err := c.Writer.Write(chunk); err != nil {
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		case <-c.Request.Context().Done():
			return
		}
	}
}
