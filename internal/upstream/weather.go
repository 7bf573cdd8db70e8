package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/libreria/apiserver/types"
	"go.uber.org/zap"
)

// DefaultWeatherBaseURL is the public OpenWeatherMap endpoint.
const DefaultWeatherBaseURL = "https://api.openweathermap.org"

// DefaultCity is used when the caller does not name a city.
const DefaultCity = "Madrid"

// WeatherClient fetches current weather reports.
type WeatherClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewWeatherClient constructs a client against baseURL with a bounded
// request timeout.
func NewWeatherClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *WeatherClient {
	if baseURL == "" {
		baseURL = DefaultWeatherBaseURL
	}
	return &WeatherClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  newHTTPClient(timeout),
		logger:  logger,
	}
}

type weatherReport struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// Current fetches the current weather for city and reshapes it. A blank
// city falls back to DefaultCity. Units are metric and descriptions are
// requested in Spanish, matching what the frontend displays.
func (c *WeatherClient) Current(ctx context.Context, city string) (types.Weather, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		city = DefaultCity
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")
	query.Set("lang", "es")
	reportURL := fmt.Sprintf("%s/data/2.5/weather?%s", c.baseURL, query.Encode())

	var report weatherReport
	if err := getJSON(ctx, c.client, reportURL, &report); err != nil {
		c.logger.Warn("weather fetch failed", zap.String("city", city), zap.Error(err))
		return types.Weather{}, err
	}

	weather := types.Weather{
		City:        report.Name,
		Country:     report.Sys.Country,
		Temperature: report.Main.Temp,
		FeelsLike:   report.Main.FeelsLike,
		Humidity:    report.Main.Humidity,
	}
	if len(report.Weather) > 0 {
		weather.Description = report.Weather[0].Description
		weather.Icon = report.Weather[0].Icon
	}
	return weather, nil
}
