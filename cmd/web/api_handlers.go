package main

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"terrazaeden.com/web/internal/catalog"
	"terrazaeden.com/web/internal/format"
	handlersPkg "terrazaeden.com/web/internal/handlers"
	"terrazaeden.com/web/internal/httpx"
	"terrazaeden.com/web/internal/icon"
	"terrazaeden.com/web/internal/theme"
)

type brandSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo,omitempty"`
	Category    string `json:"category,omitempty"`
	Variant     string `json:"variant"`
	Categories  int    `json:"categories"`
	Items       int    `json:"items"`
	Raffle      bool   `json:"raffle"`
	URL         string `json:"url"`
}

type brandDetail struct {
	brandSummary
	Instagram string         `json:"instagram,omitempty"`
	Theme     themeSummary   `json:"theme"`
	Menu      []menuCategory `json:"menu"`
}

type themeSummary struct {
	Price       string `json:"price"`
	Badge       string `json:"badge"`
	Exclamation string `json:"exclamation"`
}

type menuCategory struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Icon  string     `json:"icon,omitempty"`
	Items []menuItem `json:"items"`
}

type menuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	PriceLabel  string  `json:"priceLabel"`
	Image       string  `json:"image,omitempty"`
	Glyph       string  `json:"glyph"`
}

func summarize(b catalog.Brand) brandSummary {
	return brandSummary{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Logo:        b.Logo,
		Category:    b.Category,
		Variant:     string(theme.VariantFor(b.ID)),
		Categories:  len(b.Menu.Categories),
		Items:       b.ItemCount(),
		Raffle:      b.RaffleEnabled(),
		URL:         handlersPkg.BrandPath(b.ID),
	}
}

// apiBrands lists brand summaries in dataset order.
func (a *app) apiBrands(w http.ResponseWriter, r *http.Request) {
	out := lo.Map(a.catalog.Brands(), func(b catalog.Brand, _ int) brandSummary {
		return summarize(b)
	})
	httpx.WriteJSON(r.Context(), w, http.StatusOK, map[string]any{"brands": out})
}

// apiBrand returns one brand with its menu, each item carrying its glyph.
func (a *app) apiBrand(w http.ResponseWriter, r *http.Request) {
	b, err := a.catalog.Brand(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(r.Context(), w, httpx.NotFound("brand not found"))
		return
	}
	th := theme.Resolve(b)
	detail := brandDetail{
		brandSummary: summarize(b),
		Theme: themeSummary{
			Price:       th.Tokens.Price,
			Badge:       th.Tokens.Badge,
			Exclamation: th.Exclamation,
		},
		Menu: lo.Map(b.Menu.Categories, func(c catalog.MenuCategory, _ int) menuCategory {
			return menuCategory{
				ID:   c.ID,
				Name: c.Name,
				Icon: th.CategoryIcon(c.ID),
				Items: lo.Map(c.Items, func(it catalog.MenuItem, _ int) menuItem {
					return menuItem{
						ID:          it.ID,
						Name:        it.Name,
						Description: it.Description,
						Price:       it.Price,
						PriceLabel:  format.Price(it.Price),
						Image:       it.Image,
						Glyph:       icon.Classify(it.Name, c.ID, it.ImageIcon),
					}
				}),
			}
		}),
	}
	if b.Contact.HasInstagram() {
		detail.Instagram = b.Contact.InstagramLink()
	}
	httpx.WriteJSON(r.Context(), w, http.StatusOK, detail)
}

// apiIcon explains the glyph chosen for a product name.
func (a *app) apiIcon(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name, category, override := q.Get("name"), q.Get("category"), q.Get("override")
	if strings.TrimSpace(name+category+override) == "" {
		httpx.WriteError(r.Context(), w, httpx.BadRequest("name, category or override is required"))
		return
	}
	httpx.WriteJSON(r.Context(), w, http.StatusOK, icon.Explain(name, category, override))
}

func (a *app) apiNotFound(w http.ResponseWriter, r *http.Request) {
	httpx.WriteError(r.Context(), w, httpx.NotFound("route not found"))
}
