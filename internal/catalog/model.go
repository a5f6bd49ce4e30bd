package catalog

import (
	"strings"
	"time"
)

// Brand is one food vendor of the food court with its menu and visual identity.
type Brand struct {
	ID             string        `yaml:"id" json:"id"`
	Name           string        `yaml:"name" json:"name"`
	Description    string        `yaml:"description" json:"description"`
	Logo           string        `yaml:"logo" json:"logo"`
	PrimaryColor   string        `yaml:"primaryColor" json:"primaryColor"`
	SecondaryColor string        `yaml:"secondaryColor" json:"secondaryColor"`
	AccentColor    string        `yaml:"accentColor" json:"accentColor"`
	Category       string        `yaml:"category" json:"category"`
	Menu           Menu          `yaml:"menu" json:"menu"`
	Contact        ContactInfo   `yaml:"contact" json:"contact"`
	Raffle         *RaffleConfig `yaml:"raffle,omitempty" json:"raffle,omitempty"`
}

// Menu lists categories in display order. The first category is the default selection.
type Menu struct {
	Categories []MenuCategory `yaml:"categories" json:"categories"`
}

// MenuCategory groups menu items under a tab such as "Tacos" or "Bebidas".
type MenuCategory struct {
	ID    string     `yaml:"id" json:"id"`
	Name  string     `yaml:"name" json:"name"`
	Items []MenuItem `yaml:"items" json:"items"`
}

// MenuItem is a single product. Price is expressed in whole pesos.
type MenuItem struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description" json:"description"`
	Price       float64 `yaml:"price" json:"price"`
	Image       string  `yaml:"image,omitempty" json:"image,omitempty"`
	ImageIcon   string  `yaml:"imageIcon,omitempty" json:"imageIcon,omitempty"`
}

// ContactInfo holds optional contact channels. Empty fields omit the matching UI affordance.
type ContactInfo struct {
	WhatsApp        string `yaml:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	WhatsAppMessage string `yaml:"whatsappMessage,omitempty" json:"whatsappMessage,omitempty"`
	OfficialWebsite string `yaml:"officialWebsite,omitempty" json:"officialWebsite,omitempty"`
	CallWaiter      bool   `yaml:"callWaiter,omitempty" json:"callWaiter,omitempty"`
	InstagramURL    string `yaml:"instagramUrl,omitempty" json:"instagramUrl,omitempty"`
	InstagramHandle string `yaml:"instagramHandle,omitempty" json:"instagramHandle,omitempty"`
}

// RaffleConfig describes a brand's participation in the raffle promotion.
type RaffleConfig struct {
	Enabled     bool    `yaml:"enabled" json:"enabled"`
	PrizeAmount float64 `yaml:"prizeAmount,omitempty" json:"prizeAmount,omitempty"`
	PrizeTitle  string  `yaml:"prizeTitle,omitempty" json:"prizeTitle,omitempty"`
	ClosingDate string  `yaml:"closingDate,omitempty" json:"closingDate,omitempty"`
	Winner      string  `yaml:"winner,omitempty" json:"winner,omitempty"`
}

// RaffleEnabled reports whether the brand takes part in the current raffle.
func (b Brand) RaffleEnabled() bool {
	return b.Raffle != nil && b.Raffle.Enabled
}

// ItemCount returns the number of items across all categories.
func (b Brand) ItemCount() int {
	n := 0
	for _, c := range b.Menu.Categories {
		n += len(c.Items)
	}
	return n
}

// Closing parses ClosingDate. The second return value is false when the date is missing or malformed.
func (r RaffleConfig) Closing() (time.Time, bool) {
	v := strings.TrimSpace(r.ClosingDate)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
