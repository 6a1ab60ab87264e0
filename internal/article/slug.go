// Package article turns generated sections into a scored, SEO-ready article
// record and handles its lifecycle.
package article

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jonathan/review-schedule/internal/types"
)

// ligatures spells out letters that have no decomposed form.
var ligatures = strings.NewReplacer(
	"ß", "ss", "ẞ", "ss",
	"æ", "ae", "Æ", "ae",
	"œ", "oe", "Œ", "oe",
	"ø", "o", "Ø", "o",
	"đ", "d", "Đ", "d",
	"ł", "l", "Ł", "l",
	"þ", "th", "Þ", "th",
	"ð", "d", "Ð", "d",
)

// Slugify lowercases s, strips diacritics and joins the remaining words
// with single hyphens.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, s)
	if err != nil {
		plain = s
	}
	plain = ligatures.Replace(plain)

	var sb strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(plain) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingHyphen = false
			sb.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return sb.String()
}

// BuildSlug returns the article slug: make, model and year, plus a type
// suffix for anything other than a car.
func BuildSlug(p types.VehicleProfile) string {
	base := VehicleKey(p)
	if suffix := p.VehicleType.SlugSuffix(); suffix != "" {
		return Slugify(base + "-" + suffix)
	}
	return base
}

// VehicleKey returns the slug of make, model and year, without type suffix.
func VehicleKey(p types.VehicleProfile) string {
	parts := []string{p.Make, p.Model}
	if p.Year > 0 {
		parts = append(parts, strconv.Itoa(p.Year))
	}
	return Slugify(strings.Join(parts, "-"))
}
