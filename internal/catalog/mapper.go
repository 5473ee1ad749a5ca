package catalog

import (
	"github.com/preston-bernstein/game-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/game-catalog-service/internal/remote"
)

func mapRecords(records []remote.GameRecord) []games.Game {
	out := make([]games.Game, 0, len(records))
	for _, rec := range records {
		out = append(out, mapRecord(rec))
	}
	return out
}

func mapRecord(rec remote.GameRecord) games.Game {
	g := games.Game{
		ID:          rec.ID,
		Title:       rec.Title,
		Genres:      copyTags(rec.Genres),
		Platforms:   copyTags(rec.Platforms),
		Languages:   copyTags(rec.Languages),
		Image:       rec.Image,
		Rating:      rec.Rating,
		Description: rec.Description,
	}
	if rec.Price != nil {
		p := *rec.Price
		g.Price = &p
	}
	return g
}

func copyTags(tags []string) []string {
	return append(make([]string, 0, len(tags)), tags...)
}
