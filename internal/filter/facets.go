package filter

import "github.com/preston-bernstein/game-catalog-service/internal/domain/games"

// Option is one selectable tag with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FacetSet lists the selectable options per axis. Each list starts with the
// wildcard option.
type FacetSet struct {
	Genres    []Option `json:"genres"`
	Platforms []Option `json:"platforms"`
	Languages []Option `json:"languages"`
}

var labels = map[Axis]map[string]string{
	AxisGenre: {
		Wildcard:    "Todos los géneros",
		"action":    "Acción",
		"adventure": "Aventura",
		"rpg":       "RPG",
		"strategy":  "Estrategia",
		"sports":    "Deportes",
		"racing":    "Carreras",
		"shooter":   "Disparos",
		"horror":    "Terror",
	},
	AxisPlatform: {
		Wildcard:      "Todas las plataformas",
		"pc":          "PC",
		"ps5":         "PlayStation 5",
		"ps4":         "PlayStation 4",
		"xbox-series": "Xbox Series X|S",
		"xbox-one":    "Xbox One",
		"switch":      "Nintendo Switch",
	},
	AxisLanguage: {
		Wildcard: "Todos los idiomas",
		"es":     "Español",
		"en":     "Inglés",
		"fr":     "Francés",
		"de":     "Alemán",
		"it":     "Italiano",
		"pt":     "Portugués",
		"ja":     "Japonés",
	},
}

// Label returns the display label for tag on axis, or the tag itself when
// it is unknown.
func Label(axis Axis, tag string) string {
	if l, ok := labels[axis][tag]; ok {
		return l
	}
	return tag
}

// Facets collects the distinct tags present in catalog, per axis, in
// first-seen order.
func Facets(catalog []games.Game) FacetSet {
	return FacetSet{
		Genres:    collect(AxisGenre, catalog, func(g games.Game) []string { return g.Genres }),
		Platforms: collect(AxisPlatform, catalog, func(g games.Game) []string { return g.Platforms }),
		Languages: collect(AxisLanguage, catalog, func(g games.Game) []string { return g.Languages }),
	}
}

func collect(axis Axis, catalog []games.Game, tags func(games.Game) []string) []Option {
	out := []Option{{Value: Wildcard, Label: Label(axis, Wildcard)}}
	seen := map[string]bool{Wildcard: true}
	for _, g := range catalog {
		for _, t := range tags(g) {
			if seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, Option{Value: t, Label: Label(axis, t)})
		}
	}
	return out
}
