package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/libreria/apiserver/types"
	"go.uber.org/zap"
)

const (
	defaultPokemonLimit = 20
	maxPokemonLimit     = 100
)

var (
	errInvalidLimit  = errors.New("invalid limit")
	errInvalidOffset = errors.New("invalid offset")
)

// CreatureCatalog fetches expanded pages of the external creature API.
type CreatureCatalog interface {
	ListPokemon(ctx context.Context, limit, offset int) (types.PokemonPage, error)
}

// WeatherProvider fetches current weather reports.
type WeatherProvider interface {
	Current(ctx context.Context, city string) (types.Weather, error)
}

// ExternalHandler proxies the two third-party APIs.
type ExternalHandler struct {
	catalog CreatureCatalog
	weather WeatherProvider
	logger  *zap.Logger
}

// NewExternalHandler constructs a handler with the provided clients.
func NewExternalHandler(catalog CreatureCatalog, weather WeatherProvider, logger *zap.Logger) *ExternalHandler {
	return &ExternalHandler{
		catalog: catalog,
		weather: weather,
		logger:  logger,
	}
}

// ExternalRouter registers the proxy routes on the given router. The
// caller mounts it behind the auth middleware.
func ExternalRouter(r chi.Router, catalog CreatureCatalog, weather WeatherProvider, logger *zap.Logger) {
	handler := NewExternalHandler(catalog, weather, logger)

	r.Get("/pokemon", handler.ListPokemon)
	r.Get("/weather", handler.GetWeather)
}

func (h *ExternalHandler) ListPokemon(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parsePokemonQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.catalog.ListPokemon(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch pokemon data")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *ExternalHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	weather, err := h.weather.Current(r.Context(), city)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch weather data")
		return
	}
	writeJSON(w, http.StatusOK, weather)
}

func parsePokemonQuery(r *http.Request) (limit, offset int, err error) {
	limit = defaultPokemonLimit

	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return 0, 0, errInvalidLimit
		}
	}
	if limit > maxPokemonLimit {
		limit = maxPokemonLimit
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("offset")); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, errInvalidOffset
		}
	}
	return limit, offset, nil
}
