package raffle

import (
	"strings"

	"github.com/samber/lo"

	"terrazaeden.com/web/internal/catalog"
)

// Partner is an Instagram account participants must follow.
type Partner struct {
	Name   string `json:"name"`
	Handle string `json:"handle"`
	URL    string `json:"url"`
}

// externalPartners sponsor the raffle without having a menu in the food court.
var externalPartners = []Partner{
	{Name: "Sabor Extremo Gourmet", Handle: "@saborextremogourmet", URL: "https://www.instagram.com/saborextremogourmet/"},
	{Name: "Fundación FEDI", Handle: "@fundacionfedi", URL: "https://www.instagram.com/fundacionfedi"},
	{Name: "Josué", Handle: "@josuee1.6", URL: "https://www.instagram.com/josuee1.6"},
	{Name: "PC Mobile Colombia", Handle: "@pcmobilecolombia", URL: "https://www.instagram.com/pcmobilecolombia"},
	{Name: "Marden Colombia", Handle: "@marden_colombia", URL: "https://www.instagram.com/marden_colombia"},
	{Name: "Salsamentaria La Mejor", Handle: "@salsamentaria_lamejor", URL: "https://www.instagram.com/salsamentaria_lamejor"},
	{Name: "Car Wash Obrero", Handle: "@carwashobrero_", URL: "https://www.instagram.com/carwashobrero_"},
}

// ExternalPartners returns a copy of the fixed sponsor list.
func ExternalPartners() []Partner {
	out := make([]Partner, len(externalPartners))
	copy(out, externalPartners)
	return out
}

// Participants lists every account shown on the raffle page: food court
// brands with an enabled raffle first, then the external sponsors.
func Participants(c *catalog.Catalog) []Partner {
	brands := lo.Map(c.RaffleBrands(), func(b catalog.Brand, _ int) Partner {
		return Partner{
			Name:   b.Name,
			Handle: "@" + b.Contact.Handle(),
			URL:    b.Contact.InstagramLink(),
		}
	})
	return append(brands, ExternalPartners()...)
}

func bareHandle(h string) string {
	return strings.TrimPrefix(strings.TrimSpace(h), "@")
}
