package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

const jsonDataset = `{
  "brands": [
    {
      "id": "ay-wey",
      "name": "Ay Wey!",
      "primaryColor": "#4CAF50",
      "contact": {"instagramUrl": "https://www.instagram.com/aywey.co/"},
      "raffle": {"enabled": true},
      "menu": {"categories": [
        {"id": "tacos", "name": "Tacos", "items": [
          {"id": "t1", "name": "Taco de Pollo", "price": 12000}
        ]}
      ]}
    },
    {
      "id": "empty",
      "name": "Sin menú",
      "contact": {"instagramHandle": "@empty"},
      "raffle": {"enabled": false},
      "menu": {"categories": []}
    }
  ]
}`

func TestParseAcceptsJSON(t *testing.T) {
	c, err := Parse([]byte(jsonDataset))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	b, err := c.Brand("ay-wey")
	require.NoError(t, err)
	require.Equal(t, "Ay Wey!", b.Name)
	require.Len(t, b.Menu.Categories, 1)
	require.Equal(t, "tacos", b.Menu.Categories[0].ID)
	require.Equal(t, 12000.0, b.Menu.Categories[0].Items[0].Price)
	require.Equal(t, 1, b.ItemCount())
}

func TestBrandLookupMiss(t *testing.T) {
	c, err := Parse([]byte(jsonDataset))
	require.NoError(t, err)

	_, err = c.Brand("no-existe")
	require.ErrorIs(t, err, ErrBrandNotFound)

	var nilCatalog *Catalog
	_, err = nilCatalog.Brand("ay-wey")
	require.ErrorIs(t, err, ErrBrandNotFound)
}

func TestRaffleBrandsFiltersDisabled(t *testing.T) {
	c, err := Parse([]byte(jsonDataset))
	require.NoError(t, err)

	brands := c.RaffleBrands()
	require.Len(t, brands, 1)
	require.Equal(t, "ay-wey", brands[0].ID)
	require.Equal(t, []string{"aywey.co"}, c.RaffleHandles())
}

func TestValidationCollectsProblems(t *testing.T) {
	brands := []Brand{
		{ID: "a", Menu: Menu{Categories: []MenuCategory{
			{ID: "x", Items: []MenuItem{{ID: "1", Price: 10}, {ID: "1", Price: -1}}},
			{ID: "x"},
		}}},
		{ID: "a"},
		{ID: ""},
	}
	_, err := New(brands)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Problems(), 5)
}

func TestLoadBundledDataset(t *testing.T) {
	c, err := Load("../../data/brands.yaml")
	require.NoError(t, err)
	require.Greater(t, c.Len(), 0)

	b, err := c.Brand("ay-wey")
	require.NoError(t, err)
	require.Equal(t, "tacos", b.Menu.Categories[0].ID)
}

func TestContactHandle(t *testing.T) {
	cases := []struct {
		name string
		in   ContactInfo
		want string
	}{
		{"explicit handle wins", ContactInfo{InstagramHandle: "@perfetto", InstagramURL: "https://instagram.com/other"}, "perfetto"},
		{"handle without at", ContactInfo{InstagramHandle: "choripam"}, "choripam"},
		{"url trailing slash", ContactInfo{InstagramURL: "https://www.instagram.com/togoimacafe/"}, "togoimacafe"},
		{"url without slash", ContactInfo{InstagramURL: "https://www.instagram.com/lamazorca.eden"}, "lamazorca.eden"},
		{"nothing", ContactInfo{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.Handle())
		})
	}
}

func TestWhatsAppLink(t *testing.T) {
	c := ContactInfo{WhatsApp: "+57 311 359 2535"}
	require.Equal(t, "https://wa.me/573113592535?text=Hola%2C%20me%20interesa%20el%20men%C3%BA%20de%20Togoima", c.WhatsAppLink("Togoima"))

	c.WhatsAppMessage = "Quiero pedir"
	require.Equal(t, "https://wa.me/573113592535?text=Quiero%20pedir", c.WhatsAppLink("Togoima"))

	require.Empty(t, ContactInfo{}.WhatsAppLink("Togoima"))
}

func TestRaffleClosing(t *testing.T) {
	d, ok := RaffleConfig{ClosingDate: "2025-11-30"}.Closing()
	require.True(t, ok)
	require.Equal(t, 30, d.Day())

	_, ok = RaffleConfig{ClosingDate: "pronto"}.Closing()
	require.False(t, ok)
}
