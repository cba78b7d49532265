// Package weather answers questions about current conditions. The live
// provider queries OpenWeather; when no API key is configured or the call
// fails, a fixed mock payload keeps the bot answering.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pudimbot/pudim-go/internal/logger"
	"github.com/pudimbot/pudim-go/internal/stringutil"
)

const openWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

var weatherKeywords = []string{
	"clima", "tempo", "temperatura", "chuva", "sol", "nuvem",
	"quente", "frio", "graus", "celsius", "umidade",
	"vento", "meteorologia", "previsão",
}

// Conditions is the provider-independent weather snapshot.
type Conditions struct {
	Location    string
	TempC       float64
	FeelsLikeC  float64
	HumidityPct int
	Description string
	WindKmh     float64 // zero when the provider reported no wind data
	HasWind     bool
}

// Provider supplies current conditions.
type Provider interface {
	CurrentConditions(ctx context.Context) (Conditions, error)
}

// Client queries OpenWeather and falls back to a mock payload when the API
// key is missing or the request fails.
type Client struct {
	apiKey  string
	city    string
	country string
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// NewClient creates a weather client. An empty apiKey selects the mock
// payload permanently.
func NewClient(apiKey, city, country string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		city:    city,
		country: country,
		baseURL: openWeatherURL,
		http:    &http.Client{Timeout: timeout},
		log:     log.WithModule("weather"),
	}
}

type openWeatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind *struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// CurrentConditions returns the live conditions, or the mock payload when
// the provider is unavailable. It never fails the request.
func (c *Client) CurrentConditions(ctx context.Context) (Conditions, error) {
	if c.apiKey == "" {
		return c.mockConditions(), nil
	}

	cond, err := c.fetch(ctx)
	if err != nil {
		c.log.WithError(err).Warn("weather lookup failed, using mock payload")
		return c.mockConditions(), nil
	}
	return cond, nil
}

func (c *Client) fetch(ctx context.Context) (Conditions, error) {
	query := url.Values{}
	query.Set("q", fmt.Sprintf("%s,%s", c.city, c.country))
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")
	query.Set("lang", "pt")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return Conditions{}, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Conditions{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Conditions{}, fmt.Errorf("weather request returned status %d", resp.StatusCode)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Conditions{}, fmt.Errorf("failed to decode weather response: %w", err)
	}

	cond := Conditions{
		Location:    payload.Name,
		TempC:       payload.Main.Temp,
		FeelsLikeC:  payload.Main.FeelsLike,
		HumidityPct: payload.Main.Humidity,
	}
	if cond.Location == "" {
		cond.Location = c.city
	}
	if len(payload.Weather) > 0 {
		cond.Description = payload.Weather[0].Description
	}
	if payload.Wind != nil {
		cond.WindKmh = payload.Wind.Speed * 3.6 // m/s to km/h
		cond.HasWind = true
	}
	return cond, nil
}

func (c *Client) mockConditions() Conditions {
	return Conditions{
		Location:    c.city,
		TempC:       25.0,
		FeelsLikeC:  27.0,
		HumidityPct: 65,
		Description: "céu limpo",
		WindKmh:     3.5 * 3.6,
		HasWind:     true,
	}
}

// IsWeatherQuestion reports whether text asks about the weather.
func IsWeatherQuestion(text string) bool {
	return stringutil.ContainsAnyWord(text, weatherKeywords...)
}

// FormatResponse renders conditions as a spoken-friendly sentence.
func FormatResponse(cond Conditions) string {
	response := fmt.Sprintf("Em %s, agora são %.0f°C, com sensação térmica de %.0f°C. O céu está %s. A umidade está em %d%%.",
		cond.Location, cond.TempC, cond.FeelsLikeC, cond.Description, cond.HumidityPct)
	if cond.HasWind {
		response += fmt.Sprintf(" Vento a %.0f km/h.", cond.WindKmh)
	}
	return response
}
