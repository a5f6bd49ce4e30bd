package handlers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"terrazaeden.com/web/internal/catalog"
	"terrazaeden.com/web/internal/config"
	"terrazaeden.com/web/internal/raffle"
	"terrazaeden.com/web/internal/theme"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Brand{
		{
			ID: "ay-wey", Name: "Ay Wey!", PrimaryColor: "#4CAF50", Category: "Mexicana",
			Contact: catalog.ContactInfo{InstagramHandle: "@aywey.co"},
			Raffle:  &catalog.RaffleConfig{Enabled: true, PrizeTitle: "Noche de tacos", PrizeAmount: 80000, ClosingDate: "2025-11-30"},
			Menu: catalog.Menu{Categories: []catalog.MenuCategory{
				{ID: "tacos", Name: "Tacos", Items: []catalog.MenuItem{
					{ID: "t1", Name: "Taco de Pollo", Price: 12000},
					{ID: "t2", Name: "Especial", Price: 9000, ImageIcon: "⭐"},
				}},
				{ID: "volcanes", Name: "Volcanes", Items: []catalog.MenuItem{
					{ID: "v1", Name: "Volcán Suadero", Price: 14000},
				}},
			}},
		},
		{ID: "nueva", Name: "Nueva", PrimaryColor: "nope"},
	})
	require.NoError(t, err)
	return c
}

func TestBuildHomeData(t *testing.T) {
	v := BuildHomeData(testCatalog(t), "+57 311 359 2535", "https://www.instagram.com/terrazaeleden/")
	require.Len(t, v.Tiles, 2)
	require.Equal(t, "/brands/ay-wey", v.Tiles[0].Href)
	require.Equal(t, "--te-brand:#4CAF50;", string(v.Tiles[0].Style))
	require.Equal(t, "--te-brand:#D2691E;", string(v.Tiles[1].Style))
	require.True(t, v.Tiles[0].Eager)
	require.Equal(t, "https://wa.me/573113592535", v.WhatsAppURL)
	require.True(t, v.RaffleOpen)

	require.Empty(t, BuildHomeData(testCatalog(t), "", "").WhatsAppURL)
}

func TestBuildBrandViewDefaultsToFirstCategory(t *testing.T) {
	b, err := testCatalog(t).Brand("ay-wey")
	require.NoError(t, err)

	v := BuildBrandView(b, "", true)
	require.Equal(t, theme.AyWey, v.Variant)
	require.True(t, v.Named)
	require.Equal(t, "tacos", v.Selected)
	require.Equal(t, "Tacos", v.SelectedName)
	require.Len(t, v.Tabs, 2)
	require.True(t, v.Tabs[0].Active)
	require.False(t, v.Tabs[1].Active)
	require.Equal(t, "🌮", v.Tabs[0].Icon)
	require.Equal(t, 2, v.Tabs[0].Count)
	require.Equal(t, "/brands/ay-wey?categoria=volcanes", v.Tabs[1].Href)
	require.Equal(t, "/brands/ay-wey/menu?categoria=volcanes", v.Tabs[1].FragmentHref)
	require.Equal(t, "/brands/ay-wey/hint", v.HintAction)
	require.True(t, v.ShowHint)
	require.Equal(t, "https://www.instagram.com/aywey.co/", v.Instagram)

	require.Len(t, v.Items, 2)
	require.Equal(t, "$12.000", v.Items[0].Price)
	require.Equal(t, "🌮", v.Items[0].Glyph)
	require.Equal(t, "⭐", v.Items[1].Glyph, "image icon overrides the classifier")
}

func TestBuildBrandViewSelectsRequested(t *testing.T) {
	b, _ := testCatalog(t).Brand("ay-wey")
	v := BuildBrandView(b, "volcanes", false)
	require.Equal(t, "volcanes", v.Selected)
	require.True(t, v.Tabs[1].Active)
	require.Equal(t, "🌋", v.Items[0].Glyph)
}

func TestBuildBrandViewUnknownCategoryIsEmptyGrid(t *testing.T) {
	b, _ := testCatalog(t).Brand("ay-wey")
	v := BuildBrandView(b, "no-existe", false)
	require.Equal(t, "no-existe", v.Selected)
	require.Empty(t, v.SelectedName)
	require.Empty(t, v.Items)
	for _, tab := range v.Tabs {
		require.False(t, tab.Active)
	}
}

func TestBuildBrandViewWithoutMenu(t *testing.T) {
	b, _ := testCatalog(t).Brand("nueva")
	v := BuildBrandView(b, "", false)
	require.Equal(t, theme.Default, v.Variant)
	require.Empty(t, v.Tabs)
	require.Empty(t, v.Items)
	require.Empty(t, v.Selected)
}

func TestBuildRaffleView(t *testing.T) {
	v := BuildRaffleView(testCatalog(t), RaffleForm{CSRFToken: "tok"}, "https://www.instagram.com/terrazaeleden/")
	require.Len(t, v.Raffles, 1)
	require.Equal(t, "$80.000", v.Raffles[0].PrizeAmount)
	require.Equal(t, "30 de noviembre de 2025", v.Raffles[0].ClosingDate)
	require.Equal(t, "@aywey.co", v.Participants[0].Handle)
	require.Len(t, v.Participants, 1+len(raffle.ExternalPartners()))
	require.Equal(t, RafflePath, v.Form.Action)
	require.Equal(t, "tok", v.Form.CSRFToken)
}

func TestFormAfterSubmit(t *testing.T) {
	ok := FormAfterSubmit("@ana", nil)
	require.True(t, ok.Submitted)
	require.Equal(t, SuccessMessage, ok.Message)

	failed := FormAfterSubmit("@ana", errors.Join(raffle.ErrSubmissionFailed, errors.New("timeout")))
	require.False(t, failed.Submitted)
	require.Equal(t, "@ana", failed.Value)
	require.Equal(t, "No pudimos registrar tu participación. Intenta nuevamente.", failed.Error)

	invalid := FormAfterSubmit("a b", raffle.ErrInvalidHandle)
	require.Equal(t, "Usuario inválido. Solo letras, números, punto y guion bajo", invalid.Error)
}

func TestAnalyticsFrom(t *testing.T) {
	a := AnalyticsFrom(config.AnalyticsConfig{GAMeasurementID: "G-1"})
	require.Equal(t, "G-1", a.GA4MeasurementID)
	require.Empty(t, a.GTMContainerID)
}
