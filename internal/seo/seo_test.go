package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMeta(t *testing.T) {
	m := NewMeta("Ay Wey!", "Tacos y volcanes", "https://terrazaeden.com/brands/ay-wey", "")
	require.Equal(t, "Ay Wey! | Terraza Eden", m.Title)
	require.Equal(t, "Terraza Eden", m.OG.SiteName)
	require.Equal(t, "summary", m.Twitter.Card)

	home := NewMeta("", "", "", "https://cdn.example/og.jpg")
	require.Equal(t, SiteName, home.Title)
	require.Equal(t, "summary_large_image", home.Twitter.Card)
}

func TestRestaurantMenu(t *testing.T) {
	js := JSON(Restaurant("Togoima", "Café de origen", "https://x/brands/togoima", "", []MenuSection{
		{Name: "Cafés", Entries: []MenuEntry{{Name: "Tinto", Price: 3500}}},
	}))
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(js), &doc))
	require.Equal(t, "Restaurant", doc["@type"])
	menu := doc["hasMenu"].(map[string]any)
	sections := menu["hasMenuSection"].([]any)
	require.Len(t, sections, 1)
	item := sections[0].(map[string]any)["hasMenuItem"].([]any)[0].(map[string]any)
	require.Equal(t, "Tinto", item["name"])
	require.Equal(t, "COP", item["offers"].(map[string]any)["priceCurrency"])
}

func TestBreadcrumbList(t *testing.T) {
	m := BreadcrumbList([]BreadcrumbItem{{Name: "Inicio", Item: "https://x/"}, {Name: "Rifas", Item: "https://x/rifas"}})
	el := m["itemListElement"].([]map[string]any)
	require.Equal(t, 2, el[1]["position"])
}

func TestAddJSONLDAndAbsolute(t *testing.T) {
	var m Meta
	m.AddJSONLD(Organization("Terraza Eden", "https://x", ""), map[string]any{"bad": func() {}})
	require.Len(t, m.JSONLD, 1)

	require.Equal(t, "https://x/rifas", Absolute("https://x/", "/rifas"))
	require.Equal(t, "/rifas", Absolute("", "/rifas"))
	require.Equal(t, "https://cdn/a.png", Absolute("https://x", "https://cdn/a.png"))
}
