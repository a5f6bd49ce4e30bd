package seo

import (
	"encoding/json"
)

const schemaContext = "https://schema.org"

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string, sameAs ...string) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	if len(sameAs) > 0 {
		m["sameAs"] = sameAs
	}
	return m
}

// MenuEntry is one dish in a Restaurant's menu.
type MenuEntry struct {
	Name        string
	Description string
	Price       float64
}

// MenuSection groups entries under a category name.
type MenuSection struct {
	Name    string
	Entries []MenuEntry
}

// Restaurant returns a Restaurant schema whose hasMenu lists every section.
func Restaurant(name, description, url, imageURL string, sections []MenuSection) map[string]any {
	m := map[string]any{
		"@context":      schemaContext,
		"@type":         "Restaurant",
		"name":          name,
		"servesCuisine": "Colombiana",
	}
	if description != "" {
		m["description"] = description
	}
	if url != "" {
		m["url"] = url
	}
	if imageURL != "" {
		m["image"] = imageURL
	}
	if len(sections) == 0 {
		return m
	}
	secs := make([]map[string]any, 0, len(sections))
	for _, s := range sections {
		items := make([]map[string]any, 0, len(s.Entries))
		for _, e := range s.Entries {
			item := map[string]any{
				"@type": "MenuItem",
				"name":  e.Name,
				"offers": map[string]any{
					"@type":         "Offer",
					"price":         e.Price,
					"priceCurrency": "COP",
				},
			}
			if e.Description != "" {
				item["description"] = e.Description
			}
			items = append(items, item)
		}
		secs = append(secs, map[string]any{
			"@type":       "MenuSection",
			"name":        s.Name,
			"hasMenuItem": items,
		})
	}
	m["hasMenu"] = map[string]any{
		"@type":          "Menu",
		"hasMenuSection": secs,
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}
