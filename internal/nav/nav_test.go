package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildMarksActive(t *testing.T) {
	items := Build("/rifas/bases")
	require.Len(t, items, 2)
	require.False(t, items[0].Active)
	require.True(t, items[1].Active)

	items = Build("")
	require.True(t, items[0].Active)
}

func TestBreadcrumbsHome(t *testing.T) {
	require.Equal(t, []Crumb{{Href: "/", Label: "Inicio", Active: true}}, Breadcrumbs("/", nil))
}

func TestBreadcrumbsBrand(t *testing.T) {
	crumbs := Breadcrumbs("/brands/ay-wey", func(href, seg string) (string, bool) {
		if href == "/brands/ay-wey" {
			return "Ay Wey!", true
		}
		return "", false
	})
	require.Equal(t, []Crumb{
		{Href: "/", Label: "Inicio"},
		{Href: "/", Label: "Marcas"},
		{Href: "/brands/ay-wey", Label: "Ay Wey!", Active: true},
	}, crumbs)
}

func TestBreadcrumbsFallbackLabels(t *testing.T) {
	crumbs := Breadcrumbs("/rifas/bases-y-condiciones", nil)
	require.Len(t, crumbs, 3)
	require.Equal(t, "Rifas y Bonos", crumbs[1].Label)
	require.Equal(t, "/rifas", crumbs[1].Href)
	require.Equal(t, "Bases y condiciones", crumbs[2].Label)
	require.True(t, crumbs[2].Active)
}
