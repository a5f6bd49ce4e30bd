package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"terrazaeden.com/web/internal/catalog"
	"terrazaeden.com/web/internal/cms"
	"terrazaeden.com/web/internal/config"
	handlersPkg "terrazaeden.com/web/internal/handlers"
	mw "terrazaeden.com/web/internal/middleware"
	"terrazaeden.com/web/internal/nav"
	"terrazaeden.com/web/internal/raffle"
	"terrazaeden.com/web/internal/seo"
)

// app carries everything request handlers need.
type app struct {
	cfg          config.Config
	logger       *zap.Logger
	catalog      *catalog.Catalog
	views        *views
	raffle       *raffle.Service
	guard        *raffle.Guard
	content      *cms.Store
	assetVersion string
}

func newRouter(a *app) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(chimw.RealIP)
	r.Use(mw.InjectLogger(a.logger))
	r.Use(mw.RequestLogger)
	r.Use(mw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/assets/*", mw.AssetsWithCache("/assets", a.cfg.Site.PublicDir+"/assets"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/brands", a.apiBrands)
		r.Get("/brands/{id}", a.apiBrand)
		r.Get("/icon", a.apiIcon)
		r.NotFound(a.apiNotFound)
	})

	sessions := mw.NewSessionStore(mw.SessionOptions{
		SigningKey: a.cfg.Session.SigningKey,
		Secure:     a.cfg.Production(),
		Logger:     a.logger,
	})
	r.Group(func(r chi.Router) {
		r.Use(mw.HTMX)
		r.Use(sessions.Middleware)
		r.Use(mw.CSRF(sessions.Secure()))

		r.Get("/", a.home)
		r.Get("/brands/{id}", a.brand)
		r.Get("/brands/{id}/menu", a.brandMenu)
		r.Post("/brands/{id}/hint", a.brandHint)
		r.Get("/rifas", a.raffles)
		r.Post("/rifas", a.raffleSubmit)
		r.Get("/rifas/bases", a.raffleTerms)
		r.NotFound(a.notFound)
	})
	return r
}

// page fills the layout fields shared by every page.
func (a *app) page(r *http.Request, title, description string) handlersPkg.PageData {
	canonical := a.absoluteURL(r, r.URL.Path)
	meta := seo.NewMeta(title, description, canonical, "")
	crumbs := nav.Breadcrumbs(r.URL.Path, a.crumbLabel)
	if len(crumbs) > 1 {
		items := make([]seo.BreadcrumbItem, 0, len(crumbs))
		for _, c := range crumbs {
			items = append(items, seo.BreadcrumbItem{Name: c.Label, Item: a.absoluteURL(r, c.Href)})
		}
		meta.AddJSONLD(seo.BreadcrumbList(items))
	}
	return handlersPkg.PageData{
		Title:        title,
		Lang:         handlersPkg.Lang,
		SEO:          meta,
		Analytics:    handlersPkg.AnalyticsFrom(a.cfg.Analytics),
		Path:         r.URL.Path,
		Nav:          nav.Build(r.URL.Path),
		Breadcrumbs:  crumbs,
		CSRFToken:    mw.CSRFToken(r),
		AssetVersion: a.assetVersion,
	}
}

func (a *app) crumbLabel(href, segment string) (string, bool) {
	if href != handlersPkg.BrandPath(segment) {
		return "", false
	}
	b, err := a.catalog.Brand(segment)
	if err != nil {
		return "", false
	}
	return b.Name, true
}

// absoluteURL prefers the configured base URL and falls back to the request host.
func (a *app) absoluteURL(r *http.Request, path string) string {
	if a.cfg.Site.BaseURL != "" {
		return seo.Absolute(a.cfg.Site.BaseURL, path)
	}
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return seo.Absolute(scheme+"://"+r.Host, path)
}

// notFound renders the 404 page inside the layout.
func (a *app) notFound(w http.ResponseWriter, r *http.Request) {
	a.renderNotFound(w, r, "No encontramos la página que buscas.")
}

func (a *app) renderNotFound(w http.ResponseWriter, r *http.Request, message string) {
	vm := a.page(r, "Página no encontrada", message)
	vm.SEO.Robots = "noindex"
	vm.SEO.JSONLD = nil
	vm.Breadcrumbs = nav.Breadcrumbs("/", nil)
	vm.NotFound = &handlersPkg.NotFoundView{Message: message}
	a.views.renderPage(w, r, http.StatusNotFound, "not_found", vm)
}
