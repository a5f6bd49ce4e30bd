package icon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		product  string
		category string
		override string
		want     string
	}{
		{"override wins", "Taco de Pollo", "tacos", "🔥", "🔥"},
		{"first rule beats later keyword", "Taco de Pollo", "", "", "🌮"},
		{"mains before salads", "Ensalada de Pollo", "entradas", "", "🍗"},
		{"case insensitive", "CAPPUCCINO DOBLE", "", "", "☕"},
		{"accented keyword", "Jalapeño relleno", "", "", "🌶️"},
		{"category fallback", "Especial de la casa", "volcanes", "", "🌋"},
		{"unknown everything", "Especial de la casa", "desconocida", "", DefaultGlyph},
		{"empty name", "", "", "", DefaultGlyph},
		{"coconut", "Coco Frío", "cocos", "", "🥥"},
		{"corn", "Mazorca Desgranada", "mazorcas", "", "🌽"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.product, tc.category, tc.override))
		})
	}
}

func TestExplainReportsSource(t *testing.T) {
	m := Explain("Ensalada de Pollo", "", "")
	require.Equal(t, SourceKeyword, m.Source)
	require.Equal(t, GroupMains, m.Group)
	require.Equal(t, "pollo", m.Keyword)

	m = Explain("Especial", "tacos", "")
	require.Equal(t, SourceCategory, m.Source)
	require.Equal(t, "🌮", m.Glyph)

	m = Explain("Especial", "", "")
	require.Equal(t, SourceDefault, m.Source)

	m = Explain("Especial", "", "🥃")
	require.Equal(t, SourceOverride, m.Source)
}

func TestRulesReturnsCopy(t *testing.T) {
	rs := Rules()
	require.NotEmpty(t, rs)
	require.Equal(t, "taco", rs[0].Keywords[0])

	rs[0].Keywords[0] = "mutated"
	rs[0].Glyph = "x"
	require.Equal(t, "🌮", Classify("taco", "", ""))
}

func TestCategoryGlyph(t *testing.T) {
	g, ok := CategoryGlyph("parfaits-gelatos")
	require.True(t, ok)
	require.Equal(t, "🍨", g)

	_, ok = CategoryGlyph("nope")
	require.False(t, ok)
}
