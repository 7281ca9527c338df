package weather

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ai-trip-planner/internal/trip"

	"github.com/golang-jwt/jwt/v5"
	"github.com/patrickmn/go-cache"
)

const (
	cacheTTL             = 30 * time.Minute
	cachePurge           = 10 * time.Minute
	tokenExpiry          = 5 * time.Minute
	outdoorRainThreshold = 60
)

// Client fetches daily forecasts for a coordinate. Implementations return
// whatever days they can; callers always treat weather as optional.
type Client interface {
	Forecast(ctx context.Context, lat, lon float64, start time.Time, days int) ([]trip.WeatherInfo, error)
}

type forecastDay struct {
	Date          string  `json:"date"`
	Condition     string  `json:"condition"`
	TempMax       float64 `json:"temp_max"`
	TempMin       float64 `json:"temp_min"`
	Precipitation int     `json:"precipitation_chance"`
}

type forecastResponse struct {
	Days []forecastDay `json:"days"`
}

type weatherClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	cache      *cache.Cache
}

// NewClient creates a weather API client. The API key uses the "id:secrethex"
// format and is exchanged for a short-lived signed token on each request.
func NewClient(apiKey, baseURL string) Client {
	return &weatherClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     apiKey,
		baseURL:    baseURL,
		cache:      cache.New(cacheTTL, cachePurge),
	}
}

// Forecast returns per-day weather starting at start. Results are cached by
// coordinate and range so repeated plan builds don't hammer the API.
func (c *weatherClient) Forecast(ctx context.Context, lat, lon float64, start time.Time, days int) ([]trip.WeatherInfo, error) {
	key := fmt.Sprintf("%.3f:%.3f:%s:%d", lat, lon, start.Format("2006-01-02"), days)
	if cached, found := c.cache.Get(key); found {
		return cached.([]trip.WeatherInfo), nil
	}

	token, err := c.createToken()
	if err != nil {
		return nil, fmt.Errorf("failed to create api token: %w", err)
	}

	url := fmt.Sprintf("%s/v1/forecast?lat=%f&lon=%f&start=%s&days=%d",
		c.baseURL, lat, lon, start.Format("2006-01-02"), days)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather api error: status %d", resp.StatusCode)
	}

	var fr forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	infos := make([]trip.WeatherInfo, 0, len(fr.Days))
	for _, d := range fr.Days {
		date, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			continue
		}
		infos = append(infos, trip.WeatherInfo{
			Date:                date,
			Condition:           conditionFor(d.Condition),
			TemperatureHigh:     d.TempMax,
			TemperatureLow:      d.TempMin,
			PrecipitationChance: d.Precipitation,
			SuitableForOutdoor:  suitableForOutdoor(conditionFor(d.Condition), d.Precipitation),
		})
	}

	c.cache.Set(key, infos, cache.DefaultExpiration)
	return infos, nil
}

// createToken generates a short-lived JWT for the weather API.
func (c *weatherClient) createToken() (string, error) {
	keyParts := strings.Split(c.apiKey, ":")
	if len(keyParts) != 2 {
		return "", fmt.Errorf("invalid api key format: expected id:secret")
	}

	id := keyParts[0]
	secret, err := hex.DecodeString(keyParts[1])
	if err != nil {
		return "", fmt.Errorf("failed to decode secret hex: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(tokenExpiry).Unix(),
		"aud": "/v1/forecast/",
	})
	token.Header["kid"] = id

	return token.SignedString(secret)
}

func conditionFor(s string) trip.WeatherCondition {
	switch strings.ToLower(s) {
	case "clear", "sunny":
		return trip.WeatherSunny
	case "clouds", "cloudy", "overcast", "partly_cloudy":
		return trip.WeatherCloudy
	case "rain", "rainy", "drizzle":
		return trip.WeatherRainy
	case "snow", "snowy":
		return trip.WeatherSnowy
	case "thunderstorm", "storm", "stormy":
		return trip.WeatherStormy
	case "fog", "foggy", "mist", "haze":
		return trip.WeatherFoggy
	default:
		return trip.WeatherCloudy
	}
}

func suitableForOutdoor(cond trip.WeatherCondition, precipChance int) bool {
	switch cond {
	case trip.WeatherRainy, trip.WeatherSnowy, trip.WeatherStormy:
		return false
	}
	return precipChance < outdoorRainThreshold
}
