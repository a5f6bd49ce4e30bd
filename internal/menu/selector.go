// Package menu tracks which category of a brand menu is on display.
package menu

import (
	"terrazaeden.com/web/internal/catalog"
)

// QueryParam carries the selected category id in brand page URLs.
const QueryParam = "categoria"

// State is the selection state of a brand page.
type State int

const (
	// Uninitialized means no category is selected. It only persists for
	// brands without categories.
	Uninitialized State = iota
	Selected
)

func (s State) String() string {
	if s == Selected {
		return "selected"
	}
	return "uninitialized"
}

// ActiveCategory finds the category with the given id. A miss is not an error;
// callers render an empty grid.
func ActiveCategory(b catalog.Brand, selectedID string) (catalog.MenuCategory, bool) {
	if selectedID == "" {
		return catalog.MenuCategory{}, false
	}
	for _, c := range b.Menu.Categories {
		if c.ID == selectedID {
			return c, true
		}
	}
	return catalog.MenuCategory{}, false
}

// Selector holds the selected category of one brand page.
type Selector struct {
	brand    catalog.Brand
	state    State
	selected string
}

// NewSelector loads a brand and selects its first category when there is one.
func NewSelector(b catalog.Brand) *Selector {
	s := &Selector{brand: b}
	if len(b.Menu.Categories) > 0 {
		s.state = Selected
		s.selected = b.Menu.Categories[0].ID
	}
	return s
}

// FromRequest builds a selector and applies a requested id when non-empty.
func FromRequest(b catalog.Brand, requested string) *Selector {
	s := NewSelector(b)
	if requested != "" {
		s.Select(requested)
	}
	return s
}

// Select sets the selected id. The id is not validated: tabs only offer ids
// drawn from the brand, and a stale id resolves to an empty grid.
func (s *Selector) Select(id string) {
	s.state = Selected
	s.selected = id
}

// State returns the current selection state.
func (s *Selector) State() State { return s.state }

// Selected returns the selected category id.
func (s *Selector) Selected() string { return s.selected }

// Brand returns the brand the selector was built for.
func (s *Selector) Brand() catalog.Brand { return s.brand }

// Active returns the selected category.
func (s *Selector) Active() (catalog.MenuCategory, bool) {
	return ActiveCategory(s.brand, s.selected)
}

// Items returns the items of the selected category, or nil.
func (s *Selector) Items() []catalog.MenuItem {
	c, ok := s.Active()
	if !ok {
		return nil
	}
	return c.Items
}

// IsSelected reports whether id is the current selection.
func (s *Selector) IsSelected(id string) bool {
	return s.state == Selected && s.selected == id
}
