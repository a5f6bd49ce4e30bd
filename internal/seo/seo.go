// Package seo holds page metadata and schema.org JSON-LD builders.
package seo

import "strings"

// SiteName is used for titles and og:site_name.
const SiteName = "Terraza Eden"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Image string
}

// Meta is the per-page head data rendered by the base layout.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// NewMeta fills OpenGraph and Twitter defaults from title, description and
// the absolute canonical URL.
func NewMeta(title, description, canonical, image string) Meta {
	full := SiteName
	if t := strings.TrimSpace(title); t != "" && t != SiteName {
		full = t + " | " + SiteName
	}
	m := Meta{
		Title:       full,
		Description: description,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       full,
			Description: description,
			Image:       image,
			Type:        "website",
			URL:         canonical,
			SiteName:    SiteName,
		},
		Twitter: Twitter{Card: "summary", Image: image},
	}
	if image != "" {
		m.Twitter.Card = "summary_large_image"
	}
	return m
}

// AddJSONLD appends the encoded form of each schema, skipping ones that fail to encode.
func (m *Meta) AddJSONLD(schemas ...map[string]any) {
	for _, s := range schemas {
		if js := JSON(s); js != "" {
			m.JSONLD = append(m.JSONLD, js)
		}
	}
}

// Absolute joins base and path. An empty base yields path unchanged.
func Absolute(base, path string) string {
	if base == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
