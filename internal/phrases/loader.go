// Package phrases provides the SEO phrase pools used to vary article metadata.
// Pools are stored as JSON files and embedded at compile time.
package phrases

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var phraseFiles embed.FS

// DefaultFile is the catalog shipped with the binary.
const DefaultFile = "seo.json"

// baseKey names the pool shared by every vehicle type.
const baseKey = "base"

// Catalog holds every phrase pool of one file.
type Catalog struct {
	TitlePools       map[string][]string   `json:"page_titles"`
	DescriptionPools map[string][]string   `json:"meta_descriptions"`
	Headings         map[string][][]string `json:"headings"`
	Keywords         map[string][]string   `json:"keywords"`
	Audiences        Audiences             `json:"audiences"`
}

// Audiences maps vehicle traits to a target audience description.
type Audiences struct {
	Matches  map[string]string `json:"matches"`
	Segments map[string]string `json:"segments"`
	Default  string            `json:"default"`
}

// cache stores parsed catalogs to avoid repeated JSON parsing
var (
	cache   = make(map[string]*Catalog)
	cacheMu sync.RWMutex
)

// Load returns the catalog stored in filename, parsing it on first use.
func Load(filename string) (*Catalog, error) {
	cacheMu.RLock()
	if c, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return c, nil
	}
	cacheMu.RUnlock()

	data, err := phraseFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read phrase file %s: %w", filename, err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse phrase file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = &c
	cacheMu.Unlock()

	return &c, nil
}

// Default returns the embedded catalog, panicking if it is unreadable.
func Default() *Catalog {
	c, err := Load(DefaultFile)
	if err != nil {
		panic(fmt.Sprintf("failed to load phrases: %v", err))
	}
	return c
}

// ClearCache clears the catalog cache. Useful for testing.
func ClearCache() {
	cacheMu.Lock()
	cache = make(map[string]*Catalog)
	cacheMu.Unlock()
}

// Format replaces template placeholders in the form {{.Key}} with values from data.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// FormatAll applies Format to every template.
func FormatAll(templates []string, data map[string]string) []string {
	out := make([]string, 0, len(templates))
	for _, t := range templates {
		out = append(out, Format(t, data))
	}
	return out
}

// PageTitles returns the base title templates followed by the type-specific ones.
func (c *Catalog) PageTitles(vehicleType string) []string {
	return withBase(c.TitlePools, vehicleType)
}

// MetaDescriptions returns the base description templates followed by the
// type-specific ones.
func (c *Catalog) MetaDescriptions(vehicleType string) []string {
	return withBase(c.DescriptionPools, vehicleType)
}

// HeadingOptions returns the option lists of each heading slot. Unknown types
// use the car headings.
func (c *Catalog) HeadingOptions(vehicleType string) [][]string {
	if h, ok := c.Headings[vehicleType]; ok {
		return h
	}
	return c.Headings["car"]
}

// SecondaryKeywords returns the base keyword templates, the type-specific
// ones, and the premium additions when premium is set.
func (c *Catalog) SecondaryKeywords(vehicleType string, premium bool) []string {
	out := withBase(c.Keywords, vehicleType)
	if premium {
		out = append(out, c.Keywords["premium"]...)
	}
	return out
}

// Audience resolves the target audience. The vehicle type is matched first,
// then the subcategory, then the segment, then the default.
func (c *Catalog) Audience(vehicleType, subcategory, segment string) string {
	if a, ok := c.Audiences.Matches[vehicleType]; ok {
		return a
	}
	if a, ok := c.Audiences.Matches[subcategory]; ok {
		return a
	}
	if segment == "" {
		segment = "intermediario"
	}
	if a, ok := c.Audiences.Segments[segment]; ok {
		return a
	}
	return c.Audiences.Default
}

func withBase(pools map[string][]string, vehicleType string) []string {
	base := pools[baseKey]
	out := make([]string, 0, len(base)+len(pools[vehicleType]))
	out = append(out, base...)
	if vehicleType != baseKey {
		out = append(out, pools[vehicleType]...)
	}
	return out
}
