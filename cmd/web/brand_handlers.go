package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"terrazaeden.com/web/internal/catalog"
	handlersPkg "terrazaeden.com/web/internal/handlers"
	"terrazaeden.com/web/internal/menu"
	mw "terrazaeden.com/web/internal/middleware"
	"terrazaeden.com/web/internal/observability"
	"terrazaeden.com/web/internal/onboarding"
	"terrazaeden.com/web/internal/seo"
)

const brandNotFoundMessage = "Esta marca no existe o ya no hace parte de Terraza Eden."

// lookupBrand resolves {id}; on a miss it renders the 404 page and returns false.
func (a *app) lookupBrand(w http.ResponseWriter, r *http.Request) (catalog.Brand, bool) {
	id := chi.URLParam(r, "id")
	b, err := a.catalog.Brand(id)
	if err != nil {
		if !errors.Is(err, catalog.ErrBrandNotFound) {
			observability.FromContext(r.Context()).Error("brand lookup failed", zap.Error(err))
		}
		a.renderNotFound(w, r, brandNotFoundMessage)
		return catalog.Brand{}, false
	}
	return b, true
}

// brand renders the brand page with the category from ?categoria= selected.
func (a *app) brand(w http.ResponseWriter, r *http.Request) {
	b, ok := a.lookupBrand(w, r)
	if !ok {
		return
	}
	showHint := onboarding.ShouldShow(r, b.ID, len(b.Menu.Categories))
	view := handlersPkg.BuildBrandView(b, r.URL.Query().Get(menu.QueryParam), showHint)

	vm := a.page(r, b.Name, b.Description)
	vm.BodyClass = "brand-page brand-" + string(view.Variant)
	vm.Brand = &view
	vm.SEO.OG.Image = b.Logo
	vm.SEO.AddJSONLD(seo.Restaurant(b.Name, b.Description, vm.SEO.Canonical, b.Logo, menuSections(b)))
	a.views.renderPage(w, r, http.StatusOK, "brand", vm)
}

// brandMenu swaps the category tabs and item grid. Plain requests are sent
// to the full page so the link works without htmx.
func (a *app) brandMenu(w http.ResponseWriter, r *http.Request) {
	b, ok := a.lookupBrand(w, r)
	if !ok {
		return
	}
	selected := r.URL.Query().Get(menu.QueryParam)
	if !mw.IsHTMX(r.Context()) {
		target := handlersPkg.BrandPath(b.ID)
		if selected != "" {
			target = handlersPkg.CategoryPath(b.ID, selected)
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	view := handlersPkg.BuildBrandView(b, selected, false)
	push := handlersPkg.BrandPath(b.ID)
	if view.Selected != "" {
		push = handlersPkg.CategoryPath(b.ID, view.Selected)
	}
	w.Header().Set("HX-Push-Url", push)
	a.views.renderFragment(w, r, http.StatusOK, "frag_brand_menu", view)
}

// brandHint records that the visitor dismissed the category hint.
func (a *app) brandHint(w http.ResponseWriter, r *http.Request) {
	b, ok := a.lookupBrand(w, r)
	if !ok {
		return
	}
	onboarding.MarkSeen(w, b.ID, a.cfg.Production())
	w.WriteHeader(http.StatusNoContent)
}

func menuSections(b catalog.Brand) []seo.MenuSection {
	return lo.Map(b.Menu.Categories, func(c catalog.MenuCategory, _ int) seo.MenuSection {
		return seo.MenuSection{
			Name: c.Name,
			Entries: lo.Map(c.Items, func(it catalog.MenuItem, _ int) seo.MenuEntry {
				return seo.MenuEntry{Name: it.Name, Description: it.Description, Price: it.Price}
			}),
		}
	})
}
