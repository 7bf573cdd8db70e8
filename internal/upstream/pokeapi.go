package upstream

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/libreria/apiserver/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultPokeAPIBaseURL is the public PokeAPI endpoint.
const DefaultPokeAPIBaseURL = "https://pokeapi.co/api/v2"

// PokeClient fetches pages of the external creature catalog.
type PokeClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewPokeClient constructs a client against baseURL with a bounded
// request timeout.
func NewPokeClient(baseURL string, timeout time.Duration, logger *zap.Logger) *PokeClient {
	if baseURL == "" {
		baseURL = DefaultPokeAPIBaseURL
	}
	return &PokeClient{
		baseURL: baseURL,
		client:  newHTTPClient(timeout),
		logger:  logger,
	}
}

type pokeIndex struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"results"`
}

type pokeDetail struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Height int    `json:"height"`
	Weight int    `json:"weight"`
	Types  []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
		BackDefault  string `json:"back_default"`
	} `json:"sprites"`
}

// ListPokemon fetches one page of the upstream index, then fetches the
// full detail of every entry on that page concurrently and reshapes each
// into a types.Pokemon.
//
// The join is all-or-nothing: if the index fetch or any single detail
// fetch fails, the whole call fails. That mirrors the documented proxy
// behavior; no partial results are returned.
func (c *PokeClient) ListPokemon(ctx context.Context, limit, offset int) (types.PokemonPage, error) {
	indexURL := fmt.Sprintf("%s/pokemon?limit=%d&offset=%d", c.baseURL, limit, offset)

	var index pokeIndex
	if err := getJSON(ctx, c.client, indexURL, &index); err != nil {
		c.logger.Warn("pokemon index fetch failed", zap.String("url", indexURL), zap.Error(err))
		return types.PokemonPage{}, err
	}

	results := make([]types.Pokemon, len(index.Results))
	g, ctx := errgroup.WithContext(ctx)
	for i, entry := range index.Results {
		i, entry := i, entry
		g.Go(func() error {
			var detail pokeDetail
			if err := getJSON(ctx, c.client, entry.URL, &detail); err != nil {
				c.logger.Warn("pokemon detail fetch failed", zap.String("name", entry.Name), zap.Error(err))
				return err
			}

			typeNames := make([]string, len(detail.Types))
			for j, t := range detail.Types {
				typeNames[j] = t.Type.Name
			}

			results[i] = types.Pokemon{
				ID:     detail.ID,
				Name:   detail.Name,
				Height: detail.Height,
				Weight: detail.Weight,
				Types:  typeNames,
				Sprites: types.PokemonSprites{
					FrontDefault: detail.Sprites.FrontDefault,
					BackDefault:  detail.Sprites.BackDefault,
				},
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return types.PokemonPage{}, err
	}

	return types.PokemonPage{
		Count:    index.Count,
		Next:     index.Next,
		Previous: index.Previous,
		Results:  results,
	}, nil
}
