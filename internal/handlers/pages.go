// Package handlers builds the view models rendered by the web templates.
package handlers

import (
	"terrazaeden.com/web/internal/cms"
	"terrazaeden.com/web/internal/config"
	"terrazaeden.com/web/internal/nav"
	"terrazaeden.com/web/internal/seo"
)

// Lang is the only locale the site is written in.
const Lang = "es"

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
	GTMContainerID   string // e.g. GTM-XXXXXXX
}

// AnalyticsFrom copies the tracking ids out of the loaded configuration.
func AnalyticsFrom(cfg config.AnalyticsConfig) Analytics {
	return Analytics{
		GA4MeasurementID: cfg.GAMeasurementID,
		GTMContainerID:   cfg.GTMContainerID,
	}
}

// PageData is the view model for every page using the shared layout.
type PageData struct {
	Title     string
	Lang      string
	SEO       seo.Meta
	Analytics Analytics

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb
	CSRFToken   string
	// AssetVersion busts the stylesheet cache.
	AssetVersion string
	// BodyClass lets pages restyle the shell, e.g. "brand-page".
	BodyClass string

	// Exactly one of the per-page payloads is set.
	Home     *HomeView
	Brand    *BrandView
	Raffle   *RaffleView
	Content  *cms.ContentPage
	NotFound *NotFoundView
}

// NotFoundView explains a lookup miss.
type NotFoundView struct {
	Message string
}
