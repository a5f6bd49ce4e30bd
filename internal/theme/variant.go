// Package theme resolves the visual variant of a brand page.
//
// A handful of brands ship a bespoke palette, background decoration and
// category-icon table. Every other brand gets the Default variant whose tokens
// are derived from the brand's own colours.
package theme

// Variant is the closed set of brand page designs.
type Variant string

const (
	Default       Variant = "default"
	Togoima       Variant = "togoima"
	AyWey         Variant = "ay-wey"
	Perfetto      Variant = "perfetto"
	Mazorca       Variant = "mazorca"
	SaborExtremo  Variant = "sabor-extremo"
	CocosPacifico Variant = "cocos-pacifico-fresh"
)

// Palette holds the fixed colours of a named variant. Colours are #RRGGBB.
type Palette struct {
	Primary   string
	Secondary string
	Accent    string
	// Muted tints inactive tabs; Primary when empty.
	Muted string
	// Badge fills the per-category item counter; Secondary when empty.
	Badge string
	Price string
	// GlyphText colours the item glyph disc text; white when empty.
	GlyphText string
}

// Background describes the page decoration behind the menu.
type Background struct {
	Gradient string
	// PatternColor tints the repeating svg pattern.
	PatternColor string
	Floaters     []string
}

// Config is everything a named variant overrides.
type Config struct {
	Variant              Variant
	Palette              Palette
	Background           Background
	CategoryIcons        map[string]string
	CategoryIconFallback string
	// Decoration is the corner glyph shown on item cards and the active tab.
	Decoration  string
	Exclamation string
}

var configs = map[Variant]Config{
	Togoima: {
		Variant: Togoima,
		Palette: Palette{
			Primary: "#8B4513", Secondary: "#D2691E", Accent: "#DEB887",
			Muted: "#3E2723", Badge: "#8B4513", Price: "#FF8C00",
		},
		Background: Background{
			Gradient:     "linear-gradient(135deg, #3E2723, #4E342E, #5D4037)",
			PatternColor: "#8B4513",
			Floaters:     []string{"☕", "🫘", "☕", "🍫"},
		},
		CategoryIcons: map[string]string{
			"tradicionales":     "☕",
			"rituales":          "☕",
			"cacaos-chocolates": "🍫",
			"combos":            "🥪",
			"hipotermicas":      "🧊",
			"pecados":           "🍰",
			"platos":            "🍽️",
			"sandwiches":        "🥖",
			"amasijos":          "🥐",
			"destilados":        "🥃",
			"mezclas":           "🍸",
		},
		CategoryIconFallback: "☕",
		Decoration:           "☕",
		Exclamation:          "¡Delicioso!",
	},
	AyWey: {
		Variant: AyWey,
		Palette: Palette{
			Primary: "#4CAF50", Secondary: "#F44336", Accent: "#FFC107",
			Price: "#FFC107",
		},
		Background: Background{
			Gradient:     "linear-gradient(135deg, #1B5E20, #7F1D1D, #713F12)",
			PatternColor: "#4CAF50",
			Floaters:     []string{"🌶️", "🌮", "🌶️", "🥑"},
		},
		CategoryIcons: map[string]string{
			"cocteleria":    "🍷",
			"aguas-frescas": "💧",
			"entrantes":     "👨‍🍳",
			"tacos":         "🌮",
			"volcanes":      "🌋",
			"gringas":       "🍕",
			"tortas":        "🥪",
			"adicionales":   "📦",
		},
		CategoryIconFallback: "🌮",
		Decoration:           "🌶️",
		Exclamation:          "¡Órale!",
	},
	Perfetto: {
		Variant: Perfetto,
		Palette: Palette{
			Primary: "#228B22", Secondary: "#DC143C", Accent: "#FFFFFF",
			Price: "#DC143C",
		},
		Background: Background{
			Gradient:     "linear-gradient(135deg, #14532D, #713F12, #7F1D1D)",
			PatternColor: "#228B22",
			Floaters:     []string{"🍨", "🍦", "🍧", "🍪"},
		},
		CategoryIcons: map[string]string{
			"frullatos":        "🥤",
			"parfaits-gelatos": "🍨",
			"guarniciones":     "🍒",
			"adicionales":      "📦",
		},
		CategoryIconFallback: "🍨",
		Decoration:           "🍨",
		Exclamation:          "¡Delizioso!",
	},
	Mazorca: {
		Variant: Mazorca,
		Palette: Palette{
			Primary: "#FFD700", Secondary: "#FF8C00", Accent: "#8B4513",
			Price: "#FFD700", GlyphText: "#8B4513",
		},
		Background: Background{
			Gradient:     "linear-gradient(135deg, #713F12, #92400E, #7C2D12)",
			PatternColor: "#FFD700",
			Floaters:     []string{"🌽", "🌾", "🌽", "🧀"},
		},
		CategoryIcons: map[string]string{
			"mazorcas": "🌽",
		},
		CategoryIconFallback: "🌽",
		Decoration:           "🌽",
		Exclamation:          "¡Qué rico!",
	},
	SaborExtremo: {
		Variant: SaborExtremo,
		Palette: Palette{
			Primary: "#FF4500", Secondary: "#1A1A1A", Accent: "#FFD700",
			Badge: "#FF4500", Price: "#FFD700",
		},
		Background: Background{
			Gradient:     "linear-gradient(135deg, #1A1A1A, #7C2D12, #1A1A1A)",
			PatternColor: "#FF4500",
			Floaters:     []string{"🔥", "🍔", "🔥", "🌭"},
		},
		CategoryIcons: map[string]string{
			"hamburguesas": "🍔",
			"perros":       "🌭",
			"salchipapas":  "🍟",
			"adicionales":  "📦",
		},
		CategoryIconFallback: "🔥",
		Decoration:           "🔥",
		Exclamation:          "¡Brutal!",
	},
	CocosPacifico: {
		Variant: CocosPacifico,
		Palette: Palette{
			Primary: "#00A86B", Secondary: "#F5DEB3", Accent: "#8B5A2B",
			Badge: "#8B5A2B", Price: "#F5DEB3",
		},
		Background: Background{
			Gradient:     "linear-gradient(135deg, #064E3B, #0E7490, #78350F)",
			PatternColor: "#00A86B",
			Floaters:     []string{"🥥", "🌴", "🥥", "🌊"},
		},
		CategoryIcons: map[string]string{
			"cocos":    "🥥",
			"jugos":    "🧃",
			"cocteles": "🍹",
		},
		CategoryIconFallback: "🥥",
		Decoration:           "🥥",
		Exclamation:          "¡Qué sabrosura!",
	},
}

// VariantFor maps any brand id to a variant. Unknown ids, including the empty
// string, resolve to Default.
func VariantFor(brandID string) Variant {
	if _, ok := configs[Variant(brandID)]; ok {
		return Variant(brandID)
	}
	return Default
}

// ConfigFor returns the named variant's configuration. Default has none and
// reports false.
func ConfigFor(v Variant) (Config, bool) {
	c, ok := configs[v]
	return c, ok
}

// Named reports whether v has a bespoke design.
func (v Variant) Named() bool {
	_, ok := configs[v]
	return ok
}
