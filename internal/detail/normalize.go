package detail

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/preston-bernstein/game-catalog-service/internal/domain/details"
)

type fieldDefault struct {
	name  string
	value func(id int) any
}

func constant(v any) func(int) any { return func(int) any { return v } }

// Top-level fields in output order with their defaults.
var topLevel = []fieldDefault{
	{"id", func(id int) any { return id }},
	{"title", func(id int) any { return fmt.Sprintf("Game #%d", id) }},
	{"developer", constant("")},
	{"description", constant("")},
	{"shortDescription", constant("")},
	{"mainImage", constant("")},
	{"averageRating", constant(0)},
	{"totalRatings", constant(0)},
	{"savedByUsers", constant(0)},
	{"estimatedHours", constant(0)},
	{"genres", func(int) any { return []any{} }},
	{"platforms", func(int) any { return []any{} }},
	{"onlineMultiplayer", constant(false)},
	{"localMultiplayer", constant(false)},
	{"requiresInternet", constant(false)},
	{"releaseDate", constant("")},
	{"prices", func(int) any { return []any{} }},
	{"reviews", func(int) any { return []any{} }},
}

var priceFields = []fieldDefault{
	{"storeName", constant("")},
	{"price", constant(0)},
	{"url", constant("")},
}

var reviewFields = []fieldDefault{
	{"userName", constant("")},
	{"rating", constant(0)},
	{"comment", constant("")},
	{"date", constant("")},
}

// dropped marks array items removed because they failed validation.
type dropped struct{}

// Normalize validates payload against the detail schema and builds a fully
// populated record for id. Fields that are missing or mistyped are replaced
// with defaults and listed in Result.Substituted. Price ids are positional
// and are filled without being reported.
func Normalize(id int, payload []byte) details.Result {
	var substituted []string

	doc, ok := decodeObject(payload)
	if !ok {
		substituted = append(substituted, "(root)")
	}

	if res, err := detailSchema.Validate(gojsonschema.NewGoLoader(doc)); err == nil {
		for _, e := range res.Errors() {
			if path := e.Field(); path != "(root)" {
				prune(doc, strings.Split(path, "."))
				substituted = append(substituted, path)
			}
		}
	}

	substituted = append(substituted, fill(doc, topLevel, id, "")...)
	substituted = append(substituted, fillItems(doc, "prices", priceFields, false)...)
	substituted = append(substituted, fillItems(doc, "reviews", reviewFields, true)...)
	compactStrings(doc, "genres")
	compactStrings(doc, "platforms")

	detail, err := decodeDetail(doc)
	if err != nil {
		detail = details.GameDetail{ID: id, Title: fmt.Sprintf("Game #%d", id)}
		substituted = []string{"(root)"}
		for _, f := range topLevel {
			substituted = append(substituted, f.name)
		}
	}
	detail.EnsureSlices()

	res := details.Result{Detail: detail, Status: details.StatusOK}
	if len(substituted) > 0 {
		res.Status = details.StatusDefaulted
		res.Substituted = dedupe(substituted)
	}
	return res
}

func decodeObject(payload []byte) (map[string]any, bool) {
	var doc map[string]any
	if err := json.Unmarshal(payload, &doc); err != nil || doc == nil {
		return map[string]any{}, false
	}
	return doc, true
}

// prune removes the value at path so it is defaulted later.
func prune(doc map[string]any, path []string) {
	switch len(path) {
	case 1:
		delete(doc, path[0])
	case 2:
		if items, ok := doc[path[0]].([]any); ok {
			if idx, err := strconv.Atoi(path[1]); err == nil && idx >= 0 && idx < len(items) {
				items[idx] = dropped{}
			}
		}
	default:
		items, ok := doc[path[0]].([]any)
		if !ok {
			return
		}
		idx, err := strconv.Atoi(path[1])
		if err != nil || idx < 0 || idx >= len(items) {
			return
		}
		if item, ok := items[idx].(map[string]any); ok {
			delete(item, path[2])
		}
	}
}

func fill(obj map[string]any, fields []fieldDefault, id int, prefix string) []string {
	var missing []string
	for _, f := range fields {
		if _, ok := obj[f.name]; ok {
			continue
		}
		obj[f.name] = f.value(id)
		missing = append(missing, prefix+f.name)
	}
	return missing
}

// fillItems drops pruned entries, defaults missing item fields and assigns
// 1-based positional ids where the id is absent.
func fillItems(doc map[string]any, key string, fields []fieldDefault, reportIDs bool) []string {
	raw, _ := doc[key].([]any)
	items := make([]any, 0, len(raw))
	for _, it := range raw {
		if obj, ok := it.(map[string]any); ok {
			items = append(items, obj)
		}
	}

	var missing []string
	for i, it := range items {
		obj := it.(map[string]any)
		prefix := fmt.Sprintf("%s.%d.", key, i)
		if _, ok := obj["id"]; !ok {
			obj["id"] = i + 1
			if reportIDs {
				missing = append(missing, prefix+"id")
			}
		}
		missing = append(missing, fill(obj, fields, 0, prefix)...)
	}
	doc[key] = items
	return missing
}

func compactStrings(doc map[string]any, key string) {
	raw, _ := doc[key].([]any)
	out := make([]any, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	doc[key] = out
}

func decodeDetail(doc map[string]any) (details.GameDetail, error) {
	var d details.GameDetail
	body, err := json.Marshal(doc)
	if err != nil {
		return d, err
	}
	err = json.Unmarshal(body, &d)
	return d, err
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}
