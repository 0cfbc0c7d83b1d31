// Package catalog holds helpers for rendering the game catalog:
// localized category names, special-flow detection, fallback game ids
// and point formatting.
package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-points-gateway/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when the requested locale has no translation.
const DefaultLocale = "en"

// specialFlowKeywords mark the cock-fight (Daga) game in names and icons.
var specialFlowKeywords = []string{"daga", "đágà", "đá gà", "cock", "fighting"}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

var printer = message.NewPrinter(language.English)

// LocalizedName decodes a locale-keyed JSON name and returns the entry for
// locale, falling back to DefaultLocale, then to the first locale in
// alphabetical order. A name that is not a JSON object is returned as is.
func LocalizedName(raw, locale string) string {
	var names map[string]string
	if err := json.Unmarshal([]byte(raw), &names); err != nil || len(names) == 0 {
		return raw
	}
	if v, ok := names[locale]; ok && v != "" {
		return v
	}
	if v, ok := names[DefaultLocale]; ok && v != "" {
		return v
	}
	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return names[keys[0]]
}

// Localize returns a copy of categories with names resolved for locale.
func Localize(categories []models.Category, locale string) []models.Category {
	out := make([]models.Category, len(categories))
	for i, c := range categories {
		c.Name = LocalizedName(c.Name, locale)
		out[i] = c
	}
	return out
}

// IsSpecialFlow reports whether any of the given texts names the Daga game.
func IsSpecialFlow(texts ...string) bool {
	joined := strings.ToLower(strings.Join(texts, " "))
	for _, kw := range specialFlowKeywords {
		if strings.Contains(joined, kw) {
			return true
		}
	}
	return false
}

// FindSpecialCategory returns the first category whose name, in any locale,
// names the Daga game.
func FindSpecialCategory(categories []models.Category) (models.Category, bool) {
	for _, c := range categories {
		var names map[string]string
		texts := []string{c.Name}
		if err := json.Unmarshal([]byte(c.Name), &names); err == nil {
			for _, v := range names {
				texts = append(texts, v)
			}
		}
		if IsSpecialFlow(texts...) {
			return c, true
		}
	}
	return models.Category{}, false
}

// DeriveGameID builds a fallback id from free text: lower-case alphanumerics,
// at most ten of them, or game_<unix-millis> when nothing is left.
func DeriveGameID(source string, now time.Time) models.GameID {
	id := nonAlnum.ReplaceAllString(strings.ToLower(source), "")
	if len(id) > 10 {
		id = id[:10]
	}
	if id == "" {
		return models.GameID(fmt.Sprintf("game_%d", now.UnixMilli()))
	}
	return models.GameID(id)
}

// AssignMissingGameIDs fills empty item game ids from the item name.
// The input slice is not modified.
func AssignMissingGameIDs(categories []models.Category, now time.Time) []models.Category {
	out := make([]models.Category, len(categories))
	for i, c := range categories {
		items := make([]models.GameItem, len(c.GameItems))
		for j, item := range c.GameItems {
			if item.GameID == "" {
				item.GameID = DeriveGameID(LocalizedName(item.Name, DefaultLocale), now)
			}
			items[j] = item
		}
		c.GameItems = items
		out[i] = c
	}
	return out
}

// FormatPoints renders an amount with thousands separators.
// Whole amounts have no fraction digits.
func FormatPoints(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	if v == math.Trunc(v) && math.Abs(v) < math.MaxInt64 {
		return printer.Sprintf("%d", int64(v))
	}
	return printer.Sprintf("%.2f", v)
}

// FormatLimit renders a limit the way the transfer form shows it, e.g. 1,000,000K.
func FormatLimit(v int64) string {
	return printer.Sprintf("%dK", v)
}
