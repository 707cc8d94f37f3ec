package stations

import (
	"sort"
	"strings"

	"github.com/acllc88/bugleboy-radio/internal/models"
)

// Catalog is the bundled station list. It is compiled in; there is no
// remote station registry to fetch or fail on.
type Catalog struct {
	stations []models.Station
	byID     map[string]models.Station
}

// NewCatalog builds the default bundled catalog.
func NewCatalog() *Catalog {
	return newCatalog(defaultStations)
}

func newCatalog(list []models.Station) *Catalog {
	byID := make(map[string]models.Station, len(list))
	for _, s := range list {
		byID[s.ID] = s
	}
	return &Catalog{stations: list, byID: byID}
}

// All returns every station in catalog order.
func (c *Catalog) All() []models.Station {
	out := make([]models.Station, len(c.stations))
	copy(out, c.stations)
	return out
}

// Get looks a station up by id.
func (c *Catalog) Get(id string) (models.Station, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Genres returns the distinct genres, sorted.
func (c *Catalog) Genres() []string {
	seen := make(map[string]bool)
	var genres []string
	for _, s := range c.stations {
		if !seen[s.Genre] {
			seen[s.Genre] = true
			genres = append(genres, s.Genre)
		}
	}
	sort.Strings(genres)
	return genres
}

// Filter narrows the catalog by genre ("" or "All" matches everything) and
// a case-insensitive search over name, genre, city and state.
func (c *Catalog) Filter(genre, query string) []models.Station {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []models.Station
	for _, s := range c.stations {
		if genre != "" && genre != "All" && s.Genre != genre {
			continue
		}
		if query != "" && !matchesQuery(s, query) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesQuery(s models.Station, query string) bool {
	for _, field := range []string{s.Name, s.Genre, s.City, s.State} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
