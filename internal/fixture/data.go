package fixture

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/game-catalog-service/internal/domain/details"
	"github.com/preston-bernstein/game-catalog-service/internal/domain/games"
)

var (
	//go:embed data/catalog.yaml
	catalogYAML []byte
	//go:embed data/details.yaml
	detailsYAML []byte
)

const (
	genericImage       = "https://images.unsplash.com/photo-1660180445373-a4f28b7cf19c?w=1080"
	genericDeveloper   = "Desarrollador Desconocido"
	genericReleaseDate = "2023-01-01"
	genericShort       = "Descripción no disponible."
	genericDescription = "Los detalles completos de este juego solo están disponibles cuando el servidor de catálogo es accesible."
)

type dataset struct {
	catalog []games.Game
	details map[int]details.GameDetail
}

var (
	loadOnce sync.Once
	loaded   dataset
)

func data() dataset {
	loadOnce.Do(func() {
		var err error
		loaded, err = parse(catalogYAML, detailsYAML)
		if err != nil {
			panic(fmt.Sprintf("fixture: embedded data is invalid: %v", err))
		}
	})
	return loaded
}

func parse(catalogRaw, detailsRaw []byte) (dataset, error) {
	var catalog []games.Game
	if err := yaml.Unmarshal(catalogRaw, &catalog); err != nil {
		return dataset{}, fmt.Errorf("decode catalog: %w", err)
	}
	var detailList []details.GameDetail
	if err := yaml.Unmarshal(detailsRaw, &detailList); err != nil {
		return dataset{}, fmt.Errorf("decode details: %w", err)
	}

	seen := make(map[int]bool, len(catalog))
	for _, g := range catalog {
		if seen[g.ID] {
			return dataset{}, fmt.Errorf("duplicate catalog id %d", g.ID)
		}
		seen[g.ID] = true
	}

	byID := make(map[int]details.GameDetail, len(detailList))
	for _, d := range detailList {
		d.EnsureSlices()
		byID[d.ID] = d
	}
	return dataset{catalog: catalog, details: byID}, nil
}

// Catalog returns a fresh copy of the fixed fallback catalog.
func Catalog() []games.Game {
	return games.CloneAll(data().catalog)
}

// CatalogIDs lists the fallback catalog ids in table order.
func CatalogIDs() []int {
	src := data().catalog
	ids := make([]int, len(src))
	for i, g := range src {
		ids[i] = g.ID
	}
	return ids
}

// Detail returns the mock detail for id when one exists.
func Detail(id int) (details.GameDetail, bool) {
	d, ok := data().details[id]
	if !ok {
		return details.GameDetail{}, false
	}
	return d.Clone(), true
}

// GenericDetail builds the placeholder record used for ids without mock data.
func GenericDetail(id int) details.GameDetail {
	d := details.GameDetail{
		ID:               id,
		Title:            fmt.Sprintf("Game #%d", id),
		Developer:        genericDeveloper,
		Description:      genericDescription,
		ShortDescription: genericShort,
		MainImage:        genericImage,
		ReleaseDate:      genericReleaseDate,
	}
	d.EnsureSlices()
	return d
}
