// Package nav builds the header navigation and breadcrumbs.
package nav

import (
	"path"
	"strings"
)

// Item represents a top-level navigation item.
type Item struct {
	Path  string // e.g. "/rifas"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/", Label: "Inicio"},
	{Path: "/rifas", Label: "Rifas y Bonos"},
}

// sections that have no page of their own; crumbs for them link home
var sectionLabels = map[string]string{
	"brands": "Marcas",
}

// Labeler names a path segment, e.g. a brand id. It returns false to fall
// back to a prettified segment.
type Labeler func(href, segment string) (string, bool)

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path, starting at
// Inicio. label may be nil.
func Breadcrumbs(currentPath string, label Labeler) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Inicio", Active: currentPath == "/"}}
	clean := path.Clean("/" + currentPath)
	if clean == "/" {
		return crumbs
	}

	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	href := ""
	for i, seg := range parts {
		href += "/" + seg
		name := ""
		if label != nil {
			if l, ok := label(href, seg); ok {
				name = l
			}
		}
		if name == "" && i == 0 {
			name = topLabel(href, seg)
		}
		if name == "" {
			name = titleFromSegment(seg)
		}
		crumbHref := href
		if _, ok := sectionLabels[seg]; ok && i == 0 {
			crumbHref = "/"
		}
		crumbs = append(crumbs, Crumb{Href: crumbHref, Label: name, Active: i == len(parts)-1})
	}
	return crumbs
}

func topLabel(href, seg string) string {
	for _, it := range Main {
		if it.Path == href {
			return it.Label
		}
	}
	return sectionLabels[seg]
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
