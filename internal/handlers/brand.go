package handlers

import (
	"html/template"
	"net/url"

	"github.com/samber/lo"

	"terrazaeden.com/web/internal/catalog"
	"terrazaeden.com/web/internal/format"
	"terrazaeden.com/web/internal/icon"
	"terrazaeden.com/web/internal/menu"
	"terrazaeden.com/web/internal/theme"
)

// BrandView is the view model for a brand page and its menu fragment.
type BrandView struct {
	ID          string
	Name        string
	Description string
	Logo        string
	Category    string
	Website     string
	Instagram   string

	Variant     theme.Variant
	Named       bool
	Style       template.CSS
	Decoration  string
	Exclamation string
	Floaters    []string

	Tabs     []CategoryTab
	Selected string
	// SelectedName is empty when the selected id does not exist.
	SelectedName string
	Items        []ItemView
	ShowHint     bool
	HintAction   string
}

// CategoryTab is one category switcher entry.
type CategoryTab struct {
	ID     string
	Name   string
	Icon   string
	Count  int
	Active bool
	// Href reloads the full page; FragmentHref swaps only the menu.
	Href         string
	FragmentHref string
}

// ItemView is one menu card.
type ItemView struct {
	ID          string
	Name        string
	Description string
	Price       string
	Image       string
	Glyph       string
}

// BuildBrandView resolves the theme and applies the requested category.
// An empty request selects the first category; an unknown id yields an
// empty grid.
func BuildBrandView(b catalog.Brand, requested string, showHint bool) BrandView {
	th := theme.Resolve(b)
	sel := menu.FromRequest(b, requested)

	view := BrandView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Logo:        b.Logo,
		Category:    b.Category,
		Website:     b.Contact.OfficialWebsite,
		Variant:     th.Variant,
		Named:       th.Named(),
		Style:       th.Style(),
		Decoration:  th.Decoration,
		Exclamation: th.Exclamation,
		Floaters:    th.Background.Floaters,
		Selected:    sel.Selected(),
		ShowHint:    showHint,
		HintAction:  BrandPath(b.ID) + "/hint",
	}
	if b.Contact.HasInstagram() {
		view.Instagram = b.Contact.InstagramLink()
	}

	view.Tabs = lo.Map(b.Menu.Categories, func(c catalog.MenuCategory, _ int) CategoryTab {
		return CategoryTab{
			ID:           c.ID,
			Name:         c.Name,
			Icon:         th.CategoryIcon(c.ID),
			Count:        len(c.Items),
			Active:       sel.IsSelected(c.ID),
			Href:         CategoryPath(b.ID, c.ID),
			FragmentHref: BrandPath(b.ID) + "/menu?" + categoryQuery(c.ID),
		}
	})

	if active, ok := sel.Active(); ok {
		view.SelectedName = active.Name
		view.Items = lo.Map(active.Items, func(it catalog.MenuItem, _ int) ItemView {
			return ItemView{
				ID:          it.ID,
				Name:        it.Name,
				Description: it.Description,
				Price:       format.Price(it.Price),
				Image:       it.Image,
				Glyph:       icon.Classify(it.Name, active.ID, it.ImageIcon),
			}
		})
	}
	return view
}

// CategoryPath is the shareable URL of a brand page with a category selected.
func CategoryPath(brandID, categoryID string) string {
	return BrandPath(brandID) + "?" + categoryQuery(categoryID)
}

func categoryQuery(id string) string {
	return url.Values{menu.QueryParam: {id}}.Encode()
}
