package main

import (
	"net/http"

	handlersPkg "terrazaeden.com/web/internal/handlers"
	"terrazaeden.com/web/internal/seo"
)

const homeDescription = "Terraza Eden: marcas, menús y rifas de la plazoleta de comidas. Donde cada sabor cuenta una historia."

// home renders the landing page with the brand grid.
func (a *app) home(w http.ResponseWriter, r *http.Request) {
	view := handlersPkg.BuildHomeData(a.catalog, a.cfg.Site.WhatsApp, a.cfg.Site.InstagramURL)
	vm := a.page(r, seo.SiteName, homeDescription)
	vm.BodyClass = "home-page"
	vm.Home = &view
	vm.SEO.AddJSONLD(seo.Organization(seo.SiteName, a.absoluteURL(r, "/"), a.absoluteURL(r, "/assets/logo.png"), a.cfg.Site.InstagramURL))
	a.views.renderPage(w, r, http.StatusOK, "home", vm)
}
