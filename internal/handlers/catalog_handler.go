package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aivanta-site/internal/catalog"
	"aivanta-site/internal/sections"
	"aivanta-site/pkg/logger"
)

// CatalogHandler exposes the site content as JSON.
type CatalogHandler struct {
	catalog  *catalog.Catalog
	registry *sections.Registry
}

func NewCatalogHandler(cat *catalog.Catalog, registry *sections.Registry) *CatalogHandler {
	if cat == nil {
		cat = catalog.Default()
	}
	return &CatalogHandler{catalog: cat, registry: registry}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalog.Categories()})
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.catalog.FindCategory(c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		logger.Error(err, "Failed to load category", map[string]interface{}{"slug": c.Param("slug")})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

func (h *CatalogHandler) GetSubService(c *gin.Context) {
	sub, err := h.catalog.FindSubService(c.Param("slug"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "sub-service not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subService": sub})
}

// ListUseCases returns all use cases, or the ones named in ?ids=a,b,c in
// that order with unknown ids left out.
func (h *CatalogHandler) ListUseCases(c *gin.Context) {
	raw, ok := c.GetQuery("ids")
	if !ok {
		c.JSON(http.StatusOK, gin.H{"useCases": h.catalog.UseCases()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"useCases": h.catalog.FindUseCases(splitIDs(raw))})
}

func (h *CatalogHandler) ListFAQ(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"faq": h.catalog.FAQ()})
}

func (h *CatalogHandler) ListProcess(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"steps": h.catalog.ProcessSteps()})
}

func (h *CatalogHandler) ListSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": h.registry.ListMetadata()})
}

func splitIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}
