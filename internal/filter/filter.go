package filter

import (
	"github.com/preston-bernstein/game-catalog-service/internal/domain/games"
)

// Catalog keeps the games matching every axis of sel, in catalog order.
// The result is never nil, so an empty match is distinguishable from a
// catalog that has not loaded.
func Catalog(catalog []games.Game, sel Selection) []games.Game {
	out := make([]games.Game, 0, len(catalog))
	for _, g := range catalog {
		if matches(g, sel) {
			out = append(out, g)
		}
	}
	return out
}

// InList returns the catalog entries whose id is in ids, in catalog order.
// Ids without a catalog entry are skipped.
func InList(catalog []games.Game, ids []int) []games.Game {
	wanted := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := make([]games.Game, 0, len(ids))
	for _, g := range catalog {
		if _, ok := wanted[g.ID]; ok {
			out = append(out, g)
		}
	}
	return out
}

// Featured returns the first n catalog entries.
func Featured(catalog []games.Game, n int) []games.Game {
	if n < 0 {
		n = 0
	}
	if n > len(catalog) {
		n = len(catalog)
	}
	return append(make([]games.Game, 0, n), catalog[:n]...)
}

func matches(g games.Game, sel Selection) bool {
	return (isWildcard(sel.Genre) || g.HasGenre(sel.Genre)) &&
		(isWildcard(sel.Platform) || g.HasPlatform(sel.Platform)) &&
		(isWildcard(sel.Language) || g.HasLanguage(sel.Language))
}
