package types

// Pokemon is the reshaped summary of one creature returned by the
// external catalog proxy.
type Pokemon struct {
	// ID is the upstream identifier of the creature.
	ID int `json:"id"`

	// Name is the creature's lowercase name.
	Name string `json:"name"`

	// Height and Weight use the upstream's decimeter/hectogram units.
	Height int `json:"height"`
	Weight int `json:"weight"`

	// Types is the flat list of lowercase type names.
	Types []string `json:"types"`

	// Sprites holds the front and back sprite image URLs.
	Sprites PokemonSprites `json:"sprites"`
}

// PokemonSprites holds sprite image URLs. Wire names match the upstream
// API so the frontend can render them unchanged.
type PokemonSprites struct {
	FrontDefault string `json:"front_default"`
	BackDefault  string `json:"back_default"`
}

// PokemonPage is one page of the external creature catalog, with every
// entry expanded to its full summary.
type PokemonPage struct {
	// Count is the total number of creatures upstream.
	Count int `json:"count"`

	// Next and Previous are upstream pagination URLs, null at the ends.
	Next     *string `json:"next"`
	Previous *string `json:"previous"`

	// Results are the expanded summaries for this page.
	Results []Pokemon `json:"results"`
}

// Weather is the reshaped current-weather report for a city.
type Weather struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}
