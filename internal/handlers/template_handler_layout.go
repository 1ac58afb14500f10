package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aivanta-site/internal/catalog"
	"aivanta-site/internal/pages"
	"aivanta-site/internal/sections"
	"aivanta-site/internal/widgets"
	"aivanta-site/pkg/logger"
	"aivanta-site/pkg/navigation"
	"aivanta-site/pkg/utils"
)

const layoutTemplate = "base.html"

func (h *TemplateHandler) renderContext(c *gin.Context, category *catalog.ServiceCategory) *sections.RenderContext {
	return &sections.RenderContext{
		Catalog:      h.catalog,
		Path:         utils.NormalizePath(c.Request.URL.Path),
		Query:        c.Request.URL.Query(),
		SiteName:     h.config.SiteName,
		ContactEmail: h.config.ContactEmail,
		Category:     category,
		Lock:         &widgets.ScrollLock{},
	}
}

func (h *TemplateHandler) basePageData(c *gin.Context, page pages.Page) gin.H {
	activePath := utils.NormalizePath(c.Request.URL.Path)

	nav := make([]gin.H, 0, len(h.navigation))
	for _, item := range h.navigation {
		nav = append(nav, gin.H{"Label": item.Label, "Href": item.Href(activePath), "Path": item.Path})
	}
	cta := navigation.CallToAction()

	canonical := ""
	if base := strings.TrimRight(h.config.SiteURL, "/"); base != "" {
		canonical = base + activePath
	}

	return gin.H{
		"Title":        page.Title,
		"Description":  page.Description,
		"Kind":         string(page.Kind),
		"Content":      page.Body,
		"Scripts":      page.Scripts,
		"ScrollLocked": page.ScrollLocked,
		"ActivePath":   activePath,
		"Canonical":    canonical,
		"Navigation":   nav,
		"CallToAction": gin.H{"Label": cta.Label, "Href": cta.Href(activePath)},
		"Site": gin.H{
			"Name":         h.config.SiteName,
			"URL":          h.config.SiteURL,
			"ContactEmail": h.config.ContactEmail,
		},
	}
}

// renderPage composes kind and writes it through the base layout. It returns
// the written bytes so callers can cache them.
func (h *TemplateHandler) renderPage(c *gin.Context, status int, kind pages.Kind, rctx *sections.RenderContext) []byte {
	page, err := h.composer.Compose(kind, rctx)
	if err != nil {
		logger.FromContext(c.Request.Context()).WithError(err).WithField("page", string(kind)).Error("Failed to compose page")
		h.renderError(c, http.StatusInternalServerError)
		return nil
	}

	if kind == pages.KindNotFound {
		c.Header("X-Robots-Tag", "noindex")
	}

	output, err := h.executeTemplate(h.templates.Lookup(layoutTemplate), h.basePageData(c, page))
	if err != nil {
		logger.FromContext(c.Request.Context()).WithError(err).WithField("page", string(kind)).Error("Failed to render layout")
		h.renderError(c, http.StatusInternalServerError)
		return nil
	}

	c.Data(status, "text/html; charset=utf-8", output)
	return output
}

func (h *TemplateHandler) executeTemplate(tmpl *template.Template, data interface{}) ([]byte, error) {
	if tmpl == nil {
		return nil, errTemplateMissing
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderError is the last resort when a page cannot be composed: a bare
// document that still points visitors home.
func (h *TemplateHandler) renderError(c *gin.Context, status int) {
	email := template.HTMLEscapeString(h.config.ContactEmail)
	body := `<!doctype html><html lang="nl"><meta charset="utf-8"><title>Er ging iets mis</title>` +
		`<p>Er ging iets mis bij het laden van deze pagina.</p>` +
		`<p><a href="/">Terug naar de homepage</a> of mail <a href="mailto:` + email + `">` + email + `</a>.</p></html>`
	c.Data(status, "text/html; charset=utf-8", []byte(body))
}
