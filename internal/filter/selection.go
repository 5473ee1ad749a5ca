package filter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"
)

// Wildcard matches every game on an axis.
const Wildcard = "all"

// Axis names one of the three filter dimensions.
type Axis string

const (
	AxisGenre    Axis = "genre"
	AxisPlatform Axis = "platform"
	AxisLanguage Axis = "language"
)

// Tags are matched exactly as the catalog carries them; only control
// characters are refused.
const (
	tagPattern   = `^[^\p{Cc}]+$`
	maxTagLength = 64
)

// Selection is the transient filter state. Each field is a tag or Wildcard.
type Selection struct {
	Genre    string `json:"genre"`
	Platform string `json:"platform"`
	Language string `json:"language"`
}

// All is the selection that matches the whole catalog.
func All() Selection {
	return Selection{Genre: Wildcard, Platform: Wildcard, Language: Wildcard}
}

// ParseSelection normalizes raw axis values. Values are trimmed and kept
// case-sensitive; empty values become Wildcard.
func ParseSelection(genre, platform, language string) (Selection, error) {
	var sel Selection
	var err error
	if sel.Genre, err = parseTag(AxisGenre, genre); err != nil {
		return Selection{}, err
	}
	if sel.Platform, err = parseTag(AxisPlatform, platform); err != nil {
		return Selection{}, err
	}
	if sel.Language, err = parseTag(AxisLanguage, language); err != nil {
		return Selection{}, err
	}
	return sel, nil
}

// IsAll reports whether the selection filters nothing out.
func (s Selection) IsAll() bool {
	return isWildcard(s.Genre) && isWildcard(s.Platform) && isWildcard(s.Language)
}

func parseTag(axis Axis, raw string) (string, error) {
	tag := strings.TrimSpace(raw)
	if isWildcard(tag) {
		return Wildcard, nil
	}
	if !utf8.ValidString(tag) || !govalidator.Matches(tag, tagPattern) || !govalidator.IsByteLength(tag, 1, maxTagLength) {
		return "", fmt.Errorf("invalid %s %q", axis, raw)
	}
	return tag, nil
}

func isWildcard(tag string) bool {
	return tag == "" || tag == Wildcard
}
