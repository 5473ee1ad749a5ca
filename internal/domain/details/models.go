package details

// StorePrice is one storefront offer for a game.
type StorePrice struct {
	ID        int     `json:"id" yaml:"id"`
	StoreName string  `json:"storeName" yaml:"storeName"`
	Price     float64 `json:"price" yaml:"price"`
	URL       string  `json:"url,omitempty" yaml:"url"`
}

// Review is a single user review.
type Review struct {
	ID       int    `json:"id" yaml:"id"`
	UserName string `json:"userName" yaml:"userName"`
	Rating   int    `json:"rating" yaml:"rating"`
	Comment  string `json:"comment" yaml:"comment"`
	Date     string `json:"date" yaml:"date"`
}

// GameDetail is the extended record behind a game's detail page. Every field
// is always populated; slices are empty rather than nil.
type GameDetail struct {
	ID                int          `json:"id" yaml:"id"`
	Title             string       `json:"title" yaml:"title"`
	Developer         string       `json:"developer" yaml:"developer"`
	Description       string       `json:"description" yaml:"description"`
	ShortDescription  string       `json:"shortDescription" yaml:"shortDescription"`
	MainImage         string       `json:"mainImage" yaml:"mainImage"`
	AverageRating     float64      `json:"averageRating" yaml:"averageRating"`
	TotalRatings      int          `json:"totalRatings" yaml:"totalRatings"`
	SavedByUsers      int          `json:"savedByUsers" yaml:"savedByUsers"`
	EstimatedHours    int          `json:"estimatedHours" yaml:"estimatedHours"`
	Genres            []string     `json:"genres" yaml:"genres"`
	Platforms         []string     `json:"platforms" yaml:"platforms"`
	OnlineMultiplayer bool         `json:"onlineMultiplayer" yaml:"onlineMultiplayer"`
	LocalMultiplayer  bool         `json:"localMultiplayer" yaml:"localMultiplayer"`
	RequiresInternet  bool         `json:"requiresInternet" yaml:"requiresInternet"`
	ReleaseDate       string       `json:"releaseDate" yaml:"releaseDate"`
	Prices            []StorePrice `json:"prices" yaml:"prices"`
	Reviews           []Review     `json:"reviews" yaml:"reviews"`
}

// Status describes how a detail record was produced.
type Status string

const (
	// StatusOK means the backend payload matched the expected shape.
	StatusOK Status = "ok"
	// StatusDefaulted means some fields were missing or mistyped and were
	// replaced with defaults.
	StatusDefaulted Status = "defaulted"
	// StatusFallback means the backend was unreachable and embedded data
	// was served instead.
	StatusFallback Status = "fallback"
)

// Result pairs a detail record with how it was obtained.
type Result struct {
	Detail      GameDetail `json:"detail"`
	Status      Status     `json:"status"`
	Substituted []string   `json:"substituted,omitempty"`
}

// EnsureSlices replaces nil slices with empty ones so JSON encodes [] not null.
func (d *GameDetail) EnsureSlices() {
	if d.Genres == nil {
		d.Genres = []string{}
	}
	if d.Platforms == nil {
		d.Platforms = []string{}
	}
	if d.Prices == nil {
		d.Prices = []StorePrice{}
	}
	if d.Reviews == nil {
		d.Reviews = []Review{}
	}
}

// Clone returns a deep copy so cached records cannot be mutated by callers.
func (d GameDetail) Clone() GameDetail {
	out := d
	out.Genres = append([]string{}, d.Genres...)
	out.Platforms = append([]string{}, d.Platforms...)
	out.Prices = append([]StorePrice{}, d.Prices...)
	out.Reviews = append([]Review{}, d.Reviews...)
	return out
}
