package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acllc88/bugleboy-radio/internal/favorites"
	"github.com/acllc88/bugleboy-radio/internal/stations"
)

type StationsHandler struct {
	catalog   *stations.Catalog
	favorites *favorites.Favorites
}

func NewStationsHandler(catalog *stations.Catalog, favs *favorites.Favorites) *StationsHandler {
	return &StationsHandler{catalog: catalog, favorites: favs}
}

// List returns catalog stations, optionally filtered by ?genre= and ?q=.
// ?favorites=true narrows to the favorite set.
func (h *StationsHandler) List(c *gin.Context) {
	result := h.catalog.Filter(c.Query("genre"), c.Query("q"))

	if c.Query("favorites") == "true" {
		filtered := result[:0]
		for _, s := range result {
			if h.favorites.IsFavorite(s.ID) {
				filtered = append(filtered, s)
			}
		}
		result = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"stations": result,
		"count":    len(result),
	})
}

// Genres returns the distinct catalog genres.
func (h *StationsHandler) Genres(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"genres": h.catalog.Genres()})
}

// Get returns one station by id.
func (h *StationsHandler) Get(c *gin.Context) {
	station, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		ErrorResponse(c, http.StatusNotFound, "Station not found")
		return
	}
	c.JSON(http.StatusOK, station)
}

// ToggleFavorite flips a station's favorite status.
func (h *StationsHandler) ToggleFavorite(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.catalog.Get(id); !ok {
		ErrorResponse(c, http.StatusNotFound, "Station not found")
		return
	}

	on, err := h.favorites.Toggle(c.Request.Context(), id)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to save favorites")
		return
	}

	c.JSON(http.StatusOK, gin.H{"station_id": id, "favorite": on})
}

// ListFavorites returns the favorite station ids.
func (h *StationsHandler) ListFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"favorites": h.favorites.List()})
}
