package handlers

import (
	"html/template"
	"strings"

	"github.com/samber/lo"

	"terrazaeden.com/web/internal/catalog"
	"terrazaeden.com/web/internal/theme"
)

// HomeView is the view model for the landing page.
type HomeView struct {
	Tiles []BrandTile
	// WhatsAppURL opens a chat with the food court itself.
	WhatsAppURL  string
	InstagramURL string
	// RaffleOpen shows the "Participa por Bonos" call to action.
	RaffleOpen bool
}

// BrandTile is one brand card on the home grid.
type BrandTile struct {
	ID          string
	Name        string
	Description string
	Logo        string
	Category    string
	Href        string
	Style       template.CSS
	// Eager marks the first tiles whose logos load without lazy loading.
	Eager bool
}

const eagerTiles = 4

// BuildHomeData lays out brand tiles in dataset order.
func BuildHomeData(c *catalog.Catalog, whatsapp, instagramURL string) HomeView {
	tiles := lo.Map(c.Brands(), func(b catalog.Brand, i int) BrandTile {
		return BrandTile{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			Logo:        b.Logo,
			Category:    b.Category,
			Href:        BrandPath(b.ID),
			Style:       theme.TileStyle(b),
			Eager:       i < eagerTiles,
		}
	})
	return HomeView{
		Tiles:        tiles,
		WhatsAppURL:  whatsAppURL(whatsapp),
		InstagramURL: instagramURL,
		RaffleOpen:   len(c.RaffleBrands()) > 0,
	}
}

// BrandPath is the canonical path of a brand page.
func BrandPath(id string) string {
	return "/brands/" + id
}

func whatsAppURL(number string) string {
	digits := catalog.DigitsOnly(strings.TrimSpace(number))
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits
}
