package page

import "strconv"

// MenuToggle shows and hides the navigation menu
type MenuToggle struct {
	control Element
	target  Element
}

// BindMenuToggle wires the menu button to the navigation links. It returns
// nil when either element is missing; a nil toggle is inert.
func BindMenuToggle(lookup Lookup) *MenuToggle {
	control := lookup(MenuToggleID)
	target := lookup(NavLinksID)
	if control == nil || target == nil {
		return nil
	}
	return &MenuToggle{control: control, target: target}
}

// Toggle flips the "open" class on the links and mirrors it into the
// button's aria-expanded attribute. It returns the new state.
func (m *MenuToggle) Toggle() bool {
	if m == nil {
		return false
	}
	open := m.target.ToggleClass("open")
	m.control.SetAttr("aria-expanded", strconv.FormatBool(open))
	return open
}
