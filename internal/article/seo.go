package article

import (
	"strconv"
	"strings"

	"github.com/jonathan/review-schedule/internal/phrases"
	"github.com/jonathan/review-schedule/internal/types"
	"github.com/jonathan/review-schedule/internal/variation"
)

// SeoMetadata is the search metadata attached to an article.
type SeoMetadata struct {
	PageTitle         string   `json:"page_title"`
	MetaDescription   string   `json:"meta_description"`
	URLSlug           string   `json:"url_slug"`
	H1                string   `json:"h1"`
	H2Tags            []string `json:"h2_tags"`
	PrimaryKeyword    string   `json:"primary_keyword"`
	SecondaryKeywords []string `json:"secondary_keywords"`
	MetaRobots        string   `json:"meta_robots"`
	CanonicalURL      string   `json:"canonical_url"`
	SchemaType        string   `json:"schema_type"`
	ArticleSection    string   `json:"article_section"`
	TargetAudience    string   `json:"target_audience"`
}

// Heading returns the H1 and title form for a vehicle.
func Heading(p types.VehicleProfile) string {
	return "Cronograma de Revisões do " + p.Identifier()
}

// templateData holds the placeholder values of the phrase pools.
func templateData(p types.VehicleProfile) map[string]string {
	year := ""
	if p.Year > 0 {
		year = strconv.Itoa(p.Year)
	}
	return map[string]string{
		"Make":       strings.TrimSpace(p.Make),
		"Model":      strings.TrimSpace(p.Model),
		"Year":       year,
		"MakeLower":  strings.ToLower(strings.TrimSpace(p.Make)),
		"ModelLower": strings.ToLower(strings.TrimSpace(p.Model)),
	}
}

// render formats every template and collapses the blanks left by empty values.
func render(templates []string, data map[string]string) []string {
	out := phrases.FormatAll(templates, data)
	for i, s := range out {
		out[i] = strings.Join(strings.Fields(s), " ")
	}
	return out
}

// buildSEO fills the SEO metadata. Title and description rotate through the
// selector; each heading slot is an independent uniform draw.
func (a *Assembler) buildSEO(p types.VehicleProfile, slug string) SeoMetadata {
	vt := string(p.VehicleType.Normalize())
	data := templateData(p)

	titles := render(a.catalog.PageTitles(vt), data)
	descriptions := render(a.catalog.MetaDescriptions(vt), data)

	headingSlots := a.catalog.HeadingOptions(vt)
	h2 := make([]string, 0, len(headingSlots))
	for _, options := range headingSlots {
		if len(options) == 0 {
			continue
		}
		h2 = append(h2, options[a.intn(len(options))])
	}

	return SeoMetadata{
		PageTitle:         a.selector.Pick(titles, variation.KeyFor(p, variation.FieldPageTitle)),
		MetaDescription:   a.selector.Pick(descriptions, variation.KeyFor(p, variation.FieldMetaDescription)),
		URLSlug:           "revisao-" + slug,
		H1:                Heading(p),
		H2Tags:            h2,
		PrimaryKeyword:    "cronograma revisões " + strings.ToLower(p.Identifier()),
		SecondaryKeywords: render(a.catalog.SecondaryKeywords(vt, p.IsPremium()), data),
		MetaRobots:        "index,follow",
		CanonicalURL:      slug,
		SchemaType:        "Article",
		ArticleSection:    "Automotive",
		TargetAudience:    a.catalog.Audience(vt, p.Subcategory, strings.ToLower(strings.TrimSpace(p.Segment))),
	}
}
