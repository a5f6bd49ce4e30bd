package theme

import (
	"fmt"
	"html/template"
	"regexp"
	"strconv"
	"strings"

	"terrazaeden.com/web/internal/catalog"
)

const fallbackColor = "#D2691E"

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Tokens is the style token set applied to a brand page.
type Tokens struct {
	TabActiveBG       string
	TabInactiveBG     string
	TabActiveBorder   string
	TabInactiveBorder string
	TabShadow         string
	TabGlyphActive    string
	TabGlyphInactive  string
	Badge             string
	Price             string
	CardBG            string
	CardBorder        string
	ItemGradient      string
	GlyphBG           string
	GlyphText         string
	GlyphShadow       string
	Hover             string
}

// Theme is the resolved design of one brand page.
type Theme struct {
	Variant     Variant
	Tokens      Tokens
	Background  Background
	Decoration  string
	Exclamation string

	icons        map[string]string
	iconFallback string
}

// Resolve computes the theme for a brand. Named variants use their fixed
// palette; the Default variant derives every token from the brand colours.
func Resolve(b catalog.Brand) Theme {
	v := VariantFor(b.ID)
	if cfg, ok := configs[v]; ok {
		return Theme{
			Variant:      v,
			Tokens:       namedTokens(cfg.Palette),
			Background:   cfg.Background,
			Decoration:   cfg.Decoration,
			Exclamation:  cfg.Exclamation,
			icons:        cfg.CategoryIcons,
			iconFallback: cfg.CategoryIconFallback,
		}
	}

	primary := color(b.PrimaryColor, fallbackColor)
	secondary := color(b.SecondaryColor, primary)
	accent := color(b.AccentColor, secondary)
	return Theme{
		Variant: Default,
		Tokens: Tokens{
			TabActiveBG:       primary,
			TabInactiveBG:     primary + "10",
			TabActiveBorder:   secondary,
			TabInactiveBorder: primary + "30",
			TabShadow:         "0 8px 25px " + primary + "30",
			TabGlyphActive:    primary,
			TabGlyphInactive:  primary + "50",
			Badge:             secondary,
			Price:             primary,
			CardBG:            "rgba(17, 24, 39, 0.8)",
			CardBorder:        primary + "30",
			ItemGradient:      fmt.Sprintf("linear-gradient(45deg, %s20, %s20)", primary, secondary),
			GlyphBG:           primary,
			GlyphText:         "#FFFFFF",
			GlyphShadow:       "0 8px 25px " + primary + "40",
			Hover:             accent,
		},
		Background: Background{
			Gradient: fmt.Sprintf("radial-gradient(circle at 20%% 20%%, %s26, transparent 55%%), radial-gradient(circle at 75%% 35%%, %s1A, transparent 50%%)", primary, secondary),
		},
		Exclamation: "¡Delicioso!",
	}
}

func namedTokens(p Palette) Tokens {
	muted := p.Muted
	if muted == "" {
		muted = p.Primary
	}
	badge := p.Badge
	if badge == "" {
		badge = p.Secondary
	}
	glyphText := p.GlyphText
	if glyphText == "" {
		glyphText = "#FFFFFF"
	}
	return Tokens{
		TabActiveBG:       p.Primary + "20",
		TabInactiveBG:     muted + "10",
		TabActiveBorder:   p.Primary,
		TabInactiveBorder: p.Primary + "30",
		TabShadow:         "0 20px 40px " + p.Primary + "30",
		TabGlyphActive:    p.Primary,
		TabGlyphInactive:  p.Primary + "50",
		Badge:             badge,
		Price:             p.Price,
		CardBG:            rgba(p.Primary, 0.1),
		CardBorder:        p.Primary + "30",
		ItemGradient:      fmt.Sprintf("linear-gradient(135deg, %s20, %s20)", p.Primary, p.Secondary),
		GlyphBG:           p.Primary,
		GlyphText:         glyphText,
		GlyphShadow:       "0 8px 25px " + p.Primary + "40",
		Hover:             muted + "15",
	}
}

// Named reports whether the theme is one of the bespoke designs.
func (t Theme) Named() bool {
	return t.Variant.Named()
}

// CategoryIcon returns the tab glyph for a category id. The Default variant
// has no tab icons and returns "".
func (t Theme) CategoryIcon(categoryID string) string {
	if g, ok := t.icons[categoryID]; ok {
		return g
	}
	return t.iconFallback
}

// Style renders the tokens as CSS custom properties for a style attribute.
func (t Theme) Style() template.CSS {
	tk := t.Tokens
	pairs := [][2]string{
		{"--te-tab-active-bg", tk.TabActiveBG},
		{"--te-tab-bg", tk.TabInactiveBG},
		{"--te-tab-active-border", tk.TabActiveBorder},
		{"--te-tab-border", tk.TabInactiveBorder},
		{"--te-tab-shadow", tk.TabShadow},
		{"--te-tab-glyph-active", tk.TabGlyphActive},
		{"--te-tab-glyph", tk.TabGlyphInactive},
		{"--te-badge", tk.Badge},
		{"--te-price", tk.Price},
		{"--te-card-bg", tk.CardBG},
		{"--te-card-border", tk.CardBorder},
		{"--te-item-gradient", tk.ItemGradient},
		{"--te-glyph-bg", tk.GlyphBG},
		{"--te-glyph-text", tk.GlyphText},
		{"--te-glyph-shadow", tk.GlyphShadow},
		{"--te-hover", tk.Hover},
		{"--te-page-bg", t.Background.Gradient},
	}
	var sb strings.Builder
	for _, p := range pairs {
		if p[1] == "" {
			continue
		}
		sb.WriteString(p[0])
		sb.WriteByte(':')
		sb.WriteString(p[1])
		sb.WriteByte(';')
	}
	// Every value is assembled from validated hex colours and fixed literals.
	return template.CSS(sb.String())
}

// TileStyle exposes the brand's validated primary colour as --te-brand for
// home page tiles, which do not use variants.
func TileStyle(b catalog.Brand) template.CSS {
	return template.CSS("--te-brand:" + color(b.PrimaryColor, fallbackColor) + ";")
}

func color(v, fallback string) string {
	v = strings.TrimSpace(v)
	if hexColor.MatchString(v) {
		return strings.ToUpper(v)
	}
	return fallback
}

func rgba(hex string, alpha float64) string {
	n, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil || len(hex) != 7 {
		return hex
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %.1f)", n>>16&0xFF, n>>8&0xFF, n&0xFF, alpha)
}
