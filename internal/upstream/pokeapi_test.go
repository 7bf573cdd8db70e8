package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakePokeAPI serves a minimal index plus per-creature detail documents.
// Detail fetches for names in failing return HTTP 500.
func fakePokeAPI(t *testing.T, failing map[string]bool) *httptest.Server {
	t.Helper()

	creatures := []struct {
		id        int
		name      string
		typeNames []string
	}{
		{1, "bulbasaur", []string{"grass", "poison"}},
		{2, "ivysaur", []string{"grass", "poison"}},
		{3, "venusaur", []string{"grass", "poison"}},
		{4, "charmander", []string{"fire"}},
	}

	mux := http.NewServeMux()
	var server *httptest.Server

	mux.HandleFunc("/pokemon", func(w http.ResponseWriter, r *http.Request) {
		limit, _ := parseQueryInt(r, "limit", 20)
		offset, _ := parseQueryInt(r, "offset", 0)

		results := []map[string]string{}
		for i := offset; i < len(creatures) && i < offset+limit; i++ {
			results = append(results, map[string]string{
				"name": creatures[i].name,
				"url":  fmt.Sprintf("%s/pokemon/%d", server.URL, creatures[i].id),
			})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"count":    len(creatures),
			"next":     nil,
			"previous": nil,
			"results":  results,
		})
	})

	for _, c := range creatures {
		c := c
		mux.HandleFunc(fmt.Sprintf("/pokemon/%d", c.id), func(w http.ResponseWriter, r *http.Request) {
			if failing[c.name] {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			typeEntries := make([]map[string]any, len(c.typeNames))
			for i, name := range c.typeNames {
				typeEntries[i] = map[string]any{"type": map[string]string{"name": name}}
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":     c.id,
				"name":   c.name,
				"height": 7,
				"weight": 69,
				"types":  typeEntries,
				"sprites": map[string]string{
					"front_default": fmt.Sprintf("https://sprites.example/%d/front.png", c.id),
					"back_default":  fmt.Sprintf("https://sprites.example/%d/back.png", c.id),
				},
			})
		})
	}

	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func parseQueryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	var value int
	_, err := fmt.Sscanf(raw, "%d", &value)
	return value, err
}

func TestPokeClient_ListPokemon(t *testing.T) {
	server := fakePokeAPI(t, nil)
	client := NewPokeClient(server.URL, 5*time.Second, zap.NewNop())

	page, err := client.ListPokemon(context.Background(), 2, 0)
	require.NoError(t, err)

	assert.Equal(t, 4, page.Count)
	require.Len(t, page.Results, 2)

	first := page.Results[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "bulbasaur", first.Name)
	assert.Equal(t, 7, first.Height)
	assert.Equal(t, 69, first.Weight)
	assert.Equal(t, []string{"grass", "poison"}, first.Types)
	assert.Equal(t, "https://sprites.example/1/front.png", first.Sprites.FrontDefault)
	assert.Equal(t, "https://sprites.example/1/back.png", first.Sprites.BackDefault)

	assert.Equal(t, "ivysaur", page.Results[1].Name)
}

func TestPokeClient_ListPokemon_Offset(t *testing.T) {
	server := fakePokeAPI(t, nil)
	client := NewPokeClient(server.URL, 5*time.Second, zap.NewNop())

	page, err := client.ListPokemon(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Len(t, page.Results, 2)
	assert.Equal(t, "venusaur", page.Results[0].Name)
	assert.Equal(t, "charmander", page.Results[1].Name)
	assert.Equal(t, []string{"fire"}, page.Results[1].Types)
}

func TestPokeClient_ListPokemon_DetailFailureFailsWholeRequest(t *testing.T) {
	// One failing detail fetch fails the page; no partial results.
	server := fakePokeAPI(t, map[string]bool{"ivysaur": true})
	client := NewPokeClient(server.URL, 5*time.Second, zap.NewNop())

	page, err := client.ListPokemon(context.Background(), 3, 0)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Empty(t, page.Results)
}

func TestPokeClient_ListPokemon_IndexFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client := NewPokeClient(server.URL, 5*time.Second, zap.NewNop())

	_, err := client.ListPokemon(context.Background(), 2, 0)
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestPokeClient_ListPokemon_UnreachableHost(t *testing.T) {
	client := NewPokeClient("http://127.0.0.1:1", time.Second, zap.NewNop())

	_, err := client.ListPokemon(context.Background(), 2, 0)
	assert.ErrorIs(t, err, ErrUpstream)
}
