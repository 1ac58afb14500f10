package navigation

import "strings"

// Item represents a navigation link rendered in the shared header and
// footer. Anchor items point at a section of the home page and resolve
// relative to the current page.
type Item struct {
	Label  string
	Path   string
	Anchor string
}

// Href returns the link target for an item as seen from currentPath.
func (i Item) Href(currentPath string) string {
	if i.Anchor == "" {
		return i.Path
	}
	anchor := strings.TrimPrefix(i.Anchor, "#")
	if currentPath == "" || currentPath == "/" {
		return "#" + anchor
	}
	return "/#" + anchor
}

// Default is the site navigation: process, about and contact.
func Default() []Item {
	return []Item{
		{Label: "Werkwijze", Anchor: "werkwijze"},
		{Label: "Over ons", Path: "/over-ons"},
		{Label: "Contact", Anchor: "contact"},
	}
}

// CallToAction is the highlighted header button.
func CallToAction() Item {
	return Item{Label: "Neem contact op", Anchor: "contact"}
}
