package games

// Game is a catalog entry as served to the presentation layer.
type Game struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Genres      []string `json:"genres" yaml:"genres"`
	Platforms   []string `json:"platforms" yaml:"platforms"`
	Languages   []string `json:"languages" yaml:"languages"`
	Image       string   `json:"image" yaml:"image"`
	Price       *float64 `json:"price" yaml:"price"`
	Rating      float64  `json:"rating" yaml:"rating"`
	Description string   `json:"description" yaml:"description"`
}

// Source tells where a catalog snapshot came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// IsFree reports whether the game has no price attached.
func (g Game) IsFree() bool {
	return g.Price == nil || *g.Price == 0
}

// Clone returns a copy that shares no slices or pointers with g.
func (g Game) Clone() Game {
	g.Genres = append([]string{}, g.Genres...)
	g.Platforms = append([]string{}, g.Platforms...)
	g.Languages = append([]string{}, g.Languages...)
	if g.Price != nil {
		p := *g.Price
		g.Price = &p
	}
	return g
}

// CloneAll deep-copies a catalog, keeping order.
func CloneAll(src []Game) []Game {
	out := make([]Game, len(src))
	for i, g := range src {
		out[i] = g.Clone()
	}
	return out
}

// HasGenre, HasPlatform and HasLanguage test tag membership.
func (g Game) HasGenre(tag string) bool    { return contains(g.Genres, tag) }
func (g Game) HasPlatform(tag string) bool { return contains(g.Platforms, tag) }
func (g Game) HasLanguage(tag string) bool { return contains(g.Languages, tag) }

// CatalogResponse is the payload returned by GET /games.
type CatalogResponse struct {
	Count  int    `json:"count"`
	Source Source `json:"source"`
	Games  []Game `json:"games"`
}

// NewCatalogResponse builds a CatalogResponse payload.
func NewCatalogResponse(source Source, games []Game) CatalogResponse {
	return CatalogResponse{
		Count:  len(games),
		Source: source,
		Games:  games,
	}
}

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
