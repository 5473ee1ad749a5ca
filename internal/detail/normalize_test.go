package detail

import (
	"reflect"
	"testing"

	"github.com/preston-bernstein/game-catalog-service/internal/domain/details"
)

const completePayload = `{
	"id": 1,
	"title": "Cyber Revolution 2077",
	"developer": "NeoTech Studios",
	"description": "long",
	"shortDescription": "short",
	"mainImage": "img.jpg",
	"averageRating": 4.7,
	"totalRatings": 15420,
	"savedByUsers": 28543,
	"estimatedHours": 80,
	"genres": ["Acción", "RPG"],
	"platforms": ["PC"],
	"onlineMultiplayer": false,
	"localMultiplayer": true,
	"requiresInternet": false,
	"releaseDate": "2020-12-10",
	"prices": [
		{"id": 7, "storeName": "Steam", "price": 59.99, "url": "https://store.steampowered.com"}
	],
	"reviews": [
		{"id": 1, "userName": "CyberGamer92", "rating": 5, "comment": "great", "date": "2024-01-15"}
	]
}`

func TestNormalizeCompletePayloadIsOK(t *testing.T) {
	res := Normalize(1, []byte(completePayload))
	if res.Status != details.StatusOK {
		t.Fatalf("expected ok status, got %s (%v)", res.Status, res.Substituted)
	}
	d := res.Detail
	if d.Title != "Cyber Revolution 2077" || d.TotalRatings != 15420 || d.EstimatedHours != 80 {
		t.Fatalf("unexpected detail %+v", d)
	}
	if !d.LocalMultiplayer || d.AverageRating != 4.7 {
		t.Fatalf("unexpected flags/rating %+v", d)
	}
	if len(d.Prices) != 1 || d.Prices[0].ID != 7 || d.Prices[0].StoreName != "Steam" {
		t.Fatalf("unexpected prices %+v", d.Prices)
	}
	if len(d.Reviews) != 1 || d.Reviews[0].UserName != "CyberGamer92" {
		t.Fatalf("unexpected reviews %+v", d.Reviews)
	}
}

func TestNormalizeEmptyObjectDefaultsEverything(t *testing.T) {
	res := Normalize(42, []byte(`{}`))
	if res.Status != details.StatusDefaulted {
		t.Fatalf("expected defaulted status, got %s", res.Status)
	}
	d := res.Detail
	if d.ID != 42 || d.Title != "Game #42" {
		t.Fatalf("expected id/title defaults, got %d %q", d.ID, d.Title)
	}
	if d.Genres == nil || d.Platforms == nil || d.Prices == nil || d.Reviews == nil {
		t.Fatalf("expected non-nil slices, got %+v", d)
	}
	if len(res.Substituted) != len(topLevel) {
		t.Fatalf("expected every top-level field substituted, got %v", res.Substituted)
	}
}

func TestNormalizeMistypedFieldsAreDefaulted(t *testing.T) {
	payload := `{
		"id": 5,
		"title": null,
		"averageRating": "high",
		"estimatedHours": 12.5,
		"genres": "rpg",
		"platforms": ["PC", 3],
		"onlineMultiplayer": "yes",
		"prices": "free"
	}`
	res := Normalize(5, []byte(payload))
	d := res.Detail

	if d.Title != "Game #5" {
		t.Fatalf("expected null title to default, got %q", d.Title)
	}
	if d.AverageRating != 0 || d.EstimatedHours != 0 || d.OnlineMultiplayer {
		t.Fatalf("expected mistyped scalars to default, got %+v", d)
	}
	if len(d.Genres) != 0 {
		t.Fatalf("expected mistyped genres to default to empty, got %v", d.Genres)
	}
	if !reflect.DeepEqual(d.Platforms, []string{"PC"}) {
		t.Fatalf("expected non-string platform dropped, got %v", d.Platforms)
	}
	if len(d.Prices) != 0 {
		t.Fatalf("expected mistyped prices to default, got %v", d.Prices)
	}
	for _, want := range []string{"title", "averageRating", "estimatedHours", "genres", "platforms.1", "onlineMultiplayer", "prices"} {
		if !containsPath(res.Substituted, want) {
			t.Fatalf("expected %q in substituted %v", want, res.Substituted)
		}
	}
}

func TestNormalizeAssignsPositionalPriceIDs(t *testing.T) {
	payload := `{
		"prices": [
			{"storeName": "Steam", "price": 10},
			"garbage",
			{"storeName": "GOG", "price": 12, "url": "https://gog.com"}
		],
		"reviews": [
			{"userName": "a", "rating": 4, "comment": "ok", "date": "2024-01-01"}
		]
	}`
	res := Normalize(9, []byte(payload))
	prices := res.Detail.Prices

	if len(prices) != 2 {
		t.Fatalf("expected invalid price entry dropped, got %+v", prices)
	}
	if prices[0].ID != 1 || prices[1].ID != 2 {
		t.Fatalf("expected 1-based positional ids, got %d and %d", prices[0].ID, prices[1].ID)
	}
	if prices[1].URL != "https://gog.com" {
		t.Fatalf("unexpected price %+v", prices[1])
	}
	if containsPath(res.Substituted, "prices.0.id") {
		t.Fatalf("price ids should not be reported, got %v", res.Substituted)
	}
	if !containsPath(res.Substituted, "prices.0.url") {
		t.Fatalf("expected missing url reported, got %v", res.Substituted)
	}
	if res.Detail.Reviews[0].ID != 1 || !containsPath(res.Substituted, "reviews.0.id") {
		t.Fatalf("expected review id defaulted and reported, got %+v %v", res.Detail.Reviews, res.Substituted)
	}
}

func TestNormalizeNonObjectPayload(t *testing.T) {
	for _, payload := range []string{`[]`, `null`, `"text"`, `not json`} {
		res := Normalize(3, []byte(payload))
		if res.Status != details.StatusDefaulted || res.Detail.Title != "Game #3" {
			t.Fatalf("payload %s: unexpected result %+v", payload, res)
		}
		if !containsPath(res.Substituted, "(root)") {
			t.Fatalf("payload %s: expected root substitution, got %v", payload, res.Substituted)
		}
	}
}

func TestNormalizeKeepsPayloadIDWhenPresent(t *testing.T) {
	res := Normalize(1, []byte(`{"id": 77}`))
	if res.Detail.ID != 77 {
		t.Fatalf("expected payload id to win, got %d", res.Detail.ID)
	}
}

func TestNormalizeOutOfRangeIntegerDefaultsOnlyThatField(t *testing.T) {
	payload := `{
		"title": "Real Title",
		"developer": "Dev",
		"totalRatings": 1e30,
		"savedByUsers": -3,
		"prices": [{"id": 2, "storeName": "Steam", "price": 19.99, "url": "https://store.steampowered.com"}]
	}`
	res := Normalize(5, []byte(payload))
	d := res.Detail

	if d.Title != "Real Title" || d.Developer != "Dev" {
		t.Fatalf("expected valid fields kept, got %q %q", d.Title, d.Developer)
	}
	if d.TotalRatings != 0 || d.SavedByUsers != 0 {
		t.Fatalf("expected out-of-range counts defaulted, got %d %d", d.TotalRatings, d.SavedByUsers)
	}
	if len(d.Prices) != 1 || d.Prices[0].StoreName != "Steam" || d.Prices[0].ID != 2 {
		t.Fatalf("expected price entry kept, got %+v", d.Prices)
	}
	for _, want := range []string{"totalRatings", "savedByUsers"} {
		if !containsPath(res.Substituted, want) {
			t.Fatalf("expected %q in substituted %v", want, res.Substituted)
		}
	}
	for _, unwanted := range []string{"(root)", "title", "developer", "prices.0.url"} {
		if containsPath(res.Substituted, unwanted) {
			t.Fatalf("did not expect %q in substituted %v", unwanted, res.Substituted)
		}
	}
}

func TestNormalizeRatingsOutsideScaleAreDefaulted(t *testing.T) {
	payload := `{
		"averageRating": 42,
		"reviews": [
			{"id": 1, "userName": "a", "rating": 9, "comment": "x", "date": "2024-01-01"},
			{"id": 2, "userName": "b", "rating": 0, "comment": "y", "date": "2024-01-02"},
			{"id": 3, "userName": "c", "rating": 5, "comment": "z", "date": "2024-01-03"}
		]
	}`
	res := Normalize(6, []byte(payload))
	d := res.Detail

	if d.AverageRating != 0 {
		t.Fatalf("expected average rating defaulted, got %v", d.AverageRating)
	}
	if len(d.Reviews) != 3 || d.Reviews[0].Rating != 0 || d.Reviews[1].Rating != 0 || d.Reviews[2].Rating != 5 {
		t.Fatalf("expected only out-of-scale review ratings defaulted, got %+v", d.Reviews)
	}
	for _, want := range []string{"averageRating", "reviews.0.rating", "reviews.1.rating"} {
		if !containsPath(res.Substituted, want) {
			t.Fatalf("expected %q in substituted %v", want, res.Substituted)
		}
	}
	if containsPath(res.Substituted, "reviews.2.rating") {
		t.Fatalf("valid rating should not be reported, got %v", res.Substituted)
	}
}

func TestNormalizeAverageRatingBounds(t *testing.T) {
	for _, tc := range []struct {
		payload string
		want    float64
	}{
		{`{"averageRating": 0}`, 0},
		{`{"averageRating": 5}`, 5},
		{`{"averageRating": 3.5}`, 3.5},
		{`{"averageRating": -0.1}`, 0},
		{`{"averageRating": 5.01}`, 0},
	} {
		res := Normalize(1, []byte(tc.payload))
		if res.Detail.AverageRating != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.payload, tc.want, res.Detail.AverageRating)
		}
	}
}

func containsPath(paths []string, want string) bool {
	for _, p := range paths {
		if p == want {
			return true
		}
	}
	return false
}
