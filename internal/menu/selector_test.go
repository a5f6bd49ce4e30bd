package menu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"terrazaeden.com/web/internal/catalog"
)

func ayWey() catalog.Brand {
	return catalog.Brand{
		ID:   "ay-wey",
		Name: "Ay Wey!",
		Menu: catalog.Menu{Categories: []catalog.MenuCategory{
			{ID: "tacos", Name: "Tacos", Items: []catalog.MenuItem{{ID: "t1", Name: "Taco de Pollo", Price: 12000}}},
			{ID: "volcanes", Name: "Volcanes", Items: []catalog.MenuItem{{ID: "v1", Name: "Volcán", Price: 14000}, {ID: "v2", Name: "Volcán Mixto", Price: 16000}}},
		}},
	}
}

func TestNewSelectorPicksFirstCategory(t *testing.T) {
	s := NewSelector(ayWey())
	require.Equal(t, Selected, s.State())
	require.Equal(t, "tacos", s.Selected())
	require.Len(t, s.Items(), 1)
	require.Equal(t, "t1", s.Items()[0].ID)
	require.True(t, s.IsSelected("tacos"))
	require.False(t, s.IsSelected("volcanes"))
}

func TestSelectorWithoutCategoriesStaysUninitialized(t *testing.T) {
	s := NewSelector(catalog.Brand{ID: "vacia"})
	require.Equal(t, Uninitialized, s.State())
	require.Empty(t, s.Selected())
	require.Nil(t, s.Items())
	_, ok := s.Active()
	require.False(t, ok)
	require.Equal(t, "uninitialized", s.State().String())
}

func TestSelectSwitchesItems(t *testing.T) {
	s := NewSelector(ayWey())
	s.Select("volcanes")
	require.Equal(t, "volcanes", s.Selected())
	require.Len(t, s.Items(), 2)

	s.Select("volcanes")
	require.Len(t, s.Items(), 2)
}

func TestUnknownSelectionRendersEmptyGrid(t *testing.T) {
	s := FromRequest(ayWey(), "postres")
	require.Equal(t, Selected, s.State())
	require.Equal(t, "postres", s.Selected())
	require.Empty(t, s.Items())
}

func TestFromRequestEmptyKeepsDefault(t *testing.T) {
	s := FromRequest(ayWey(), "")
	require.Equal(t, "tacos", s.Selected())
}

func TestActiveCategory(t *testing.T) {
	c, ok := ActiveCategory(ayWey(), "volcanes")
	require.True(t, ok)
	require.Equal(t, "Volcanes", c.Name)

	_, ok = ActiveCategory(ayWey(), "")
	require.False(t, ok)
}
