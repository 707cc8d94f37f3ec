package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const lookupTimeout = 5 * time.Second

// Country is cosmetic presence metadata. Lookups are best-effort: any
// failure falls back to Default.
type Country struct {
	Code string
	Name string
	Flag string
}

// Default is used when the lookup fails or times out.
var Default = Country{Code: "US", Name: "United States", Flag: "🇺🇸"}

// Client resolves the caller's country from an IP-geolocation service.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: lookupTimeout},
	}
}

// Lookup resolves the caller's country. It never returns an error to the
// caller's flow: on any failure the fallback country is returned along with
// the cause for logging.
func (c *Client) Lookup(ctx context.Context) (Country, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return Default, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Default, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Default, fmt.Errorf("geolocation lookup returned status %d", resp.StatusCode)
	}

	var result struct {
		CountryCode string `json:"countryCode"`
		Country     string `json:"country"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Default, fmt.Errorf("failed to decode geolocation response: %w", err)
	}

	if len(result.CountryCode) != 2 {
		return Default, fmt.Errorf("geolocation returned no country code")
	}

	code := strings.ToUpper(result.CountryCode)
	return Country{
		Code: code,
		Name: result.Country,
		Flag: FlagEmoji(code),
	}, nil
}

// FlagEmoji converts a two-letter ISO country code to its regional
// indicator emoji.
func FlagEmoji(code string) string {
	if len(code) != 2 {
		return "🌍"
	}
	code = strings.ToUpper(code)
	var b strings.Builder
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "🌍"
		}
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}
