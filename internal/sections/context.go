package sections

import (
	"net/url"
	"strings"

	"aivanta-site/internal/catalog"
	"aivanta-site/internal/contact"
	"aivanta-site/internal/widgets"
)

// Query parameters carrying widget state between server renders.
const (
	ParamProcessStep = "stap"
	ParamFAQ         = "vraag"
	ParamSubService  = "dienst"
	ParamUseCase     = "toepassing"
)

// RenderContext carries everything a renderer may read for one page render.
// It is built per request and never shared between requests.
type RenderContext struct {
	Catalog      *catalog.Catalog
	Path         string
	Query        url.Values
	SiteName     string
	ContactEmail string

	// Category is set on category detail pages.
	Category *catalog.ServiceCategory

	Contact ContactView
	Lock    *widgets.ScrollLock
}

// ContactView is the state of the intake form shown in the contact section.
type ContactView struct {
	Token  string
	Status contact.Status
	Values contact.Submission
	Errors map[string]string
}

func (c *RenderContext) param(key string) (string, bool) {
	if c == nil || c.Query == nil {
		return "", false
	}
	values, ok := c.Query[key]
	if !ok || len(values) == 0 {
		return "", ok
	}
	return strings.TrimSpace(values[0]), true
}

// LinkWith returns the current page URL with key set to value.
func (c *RenderContext) LinkWith(key, value, fragment string) string {
	query := c.cloneQuery()
	query.Set(key, value)
	return c.link(query, fragment)
}

// LinkWithout returns the current page URL with key removed.
func (c *RenderContext) LinkWithout(key, fragment string) string {
	query := c.cloneQuery()
	query.Del(key)
	return c.link(query, fragment)
}

// ScrollLocked reports whether a section holds the page scroll lock.
func (c *RenderContext) ScrollLocked() bool {
	return c != nil && c.Lock != nil && c.Lock.Locked()
}

func (c *RenderContext) cloneQuery() url.Values {
	query := url.Values{}
	if c == nil {
		return query
	}
	for key, values := range c.Query {
		query[key] = append([]string(nil), values...)
	}
	return query
}

func (c *RenderContext) link(query url.Values, fragment string) string {
	path := "/"
	if c != nil && strings.TrimSpace(c.Path) != "" {
		path = c.Path
	}

	var b strings.Builder
	b.WriteString(path)
	if encoded := query.Encode(); encoded != "" {
		b.WriteString("?")
		b.WriteString(encoded)
	}
	if fragment != "" {
		b.WriteString("#")
		b.WriteString(fragment)
	}
	return b.String()
}

func (c *RenderContext) siteName() string {
	if c == nil || strings.TrimSpace(c.SiteName) == "" {
		return "Aivanta"
	}
	return c.SiteName
}

func (c *RenderContext) contactEmail() string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.ContactEmail)
}
