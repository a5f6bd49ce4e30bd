// Package icon assigns a decorative glyph to menu items.
//
// Classification is pure: an explicit override wins, then the first keyword rule whose
// substring appears in the lowercased product name, then a category lookup, then
// DefaultGlyph. Rule order, not keyword position or length, decides between several hits.
package icon

import "strings"

// Source records which step of the classification produced a glyph.
type Source string

const (
	SourceOverride Source = "override"
	SourceKeyword  Source = "keyword"
	SourceCategory Source = "category"
	SourceDefault  Source = "default"
)

// Match describes a classification result.
type Match struct {
	Glyph   string `json:"glyph"`
	Source  Source `json:"source"`
	Group   Group  `json:"group,omitempty"`
	Keyword string `json:"keyword,omitempty"`
}

// Classify returns the glyph for a product.
func Classify(productName, categoryID, override string) string {
	return Explain(productName, categoryID, override).Glyph
}

// Explain classifies a product and reports how the glyph was chosen.
func Explain(productName, categoryID, override string) Match {
	if override != "" {
		return Match{Glyph: override, Source: SourceOverride}
	}
	name := strings.ToLower(productName)
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if strings.Contains(name, kw) {
				return Match{Glyph: r.Glyph, Source: SourceKeyword, Group: r.Group, Keyword: kw}
			}
		}
	}
	if g, ok := categoryGlyphs[categoryID]; ok {
		return Match{Glyph: g, Source: SourceCategory}
	}
	return Match{Glyph: DefaultGlyph, Source: SourceDefault}
}

// CategoryGlyph returns the fallback glyph for a category id.
func CategoryGlyph(categoryID string) (string, bool) {
	g, ok := categoryGlyphs[categoryID]
	return g, ok
}

// Rules returns a copy of the ordered rule list.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		kw := make([]string, len(r.Keywords))
		copy(kw, r.Keywords)
		out[i] = Rule{Group: r.Group, Keywords: kw, Glyph: r.Glyph}
	}
	return out
}
