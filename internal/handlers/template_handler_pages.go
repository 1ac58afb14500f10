package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"aivanta-site/internal/catalog"
	"aivanta-site/internal/pages"
	"aivanta-site/pkg/logger"
)

func (h *TemplateHandler) RenderHome(c *gin.Context) {
	h.renderCached(c, pages.KindHome, nil)
}

func (h *TemplateHandler) RenderAbout(c *gin.Context) {
	h.renderCached(c, pages.KindAbout, nil)
}

func (h *TemplateHandler) RenderCategory(c *gin.Context) {
	slug := c.Param("slug")

	category, err := h.catalog.FindCategory(slug)
	if err != nil {
		if !errors.Is(err, catalog.ErrNotFound) {
			logger.FromContext(c.Request.Context()).WithError(err).Error("Failed to load category")
		}
		h.RenderNotFound(c)
		return
	}

	h.renderCached(c, pages.KindCategory, &category)
}

func (h *TemplateHandler) RenderNotFound(c *gin.Context) {
	h.renderPage(c, http.StatusNotFound, pages.KindNotFound, h.renderContext(c, nil))
}

// renderCached serves query-free pages from the page cache when it is
// enabled. Pages carrying widget state in the query are always rendered.
func (h *TemplateHandler) renderCached(c *gin.Context, kind pages.Kind, category *catalog.ServiceCategory) {
	rctx := h.renderContext(c, category)
	cacheable := c.Request.URL.RawQuery == ""

	if cacheable {
		if body, ok := h.cachedPage(c.Request.Context(), rctx.Path); ok {
			c.Header("X-Page-Cache", "hit")
			c.Data(http.StatusOK, "text/html; charset=utf-8", body)
			return
		}
	}

	body := h.renderPage(c, http.StatusOK, kind, rctx)
	if cacheable && body != nil {
		h.storePage(c.Request.Context(), rctx.Path, body)
	}
}
