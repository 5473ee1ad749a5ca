package testutil

import (
	"github.com/preston-bernstein/game-catalog-service/internal/domain/games"
)

// SampleGame returns a minimal game fixture with the provided id and genres.
func SampleGame(id int, genres ...string) games.Game {
	price := 19.99
	return games.Game{
		ID:          id,
		Title:       "Sample",
		Genres:      append([]string{}, genres...),
		Platforms:   []string{"pc"},
		Languages:   []string{"en"},
		Image:       "https://example.com/sample.jpg",
		Price:       &price,
		Rating:      4,
		Description: "sample game",
	}
}

// SampleCatalog returns a small catalog with varied tags for filter tests.
func SampleCatalog() []games.Game {
	return []games.Game{
		{ID: 1, Title: "Alpha", Genres: []string{"action", "rpg"}, Platforms: []string{"pc", "ps5"}, Languages: []string{"es", "en"}},
		{ID: 2, Title: "Beta", Genres: []string{"rpg"}, Platforms: []string{"switch"}, Languages: []string{"en", "ja"}},
		{ID: 3, Title: "Gamma", Genres: []string{"racing", "action"}, Platforms: []string{"pc"}, Languages: []string{"fr"}},
	}
}
