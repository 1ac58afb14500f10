package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aivanta-site/internal/catalog"
	"aivanta-site/pkg/cache"
)

// Health reports liveness plus the state of the optional cache.
func Health(cat *catalog.Catalog, pageCache *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		cacheState := "disabled"
		if pageCache.Enabled() {
			cacheState = "ok"
			if err := pageCache.Ping(c.Request.Context()); err != nil {
				cacheState = "unreachable"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"cache":   cacheState,
			"catalog": cat.Stats(),
		})
	}
}
