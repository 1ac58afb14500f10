package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// NoIndexMiddleware marks machine-facing responses (API, health, metrics) as
// not to be indexed. Without directives it sends "noindex, nofollow".
func NoIndexMiddleware(directives ...string) gin.HandlerFunc {
	kept := directives[:0:0]
	for _, d := range directives {
		if d = strings.TrimSpace(d); d != "" {
			kept = append(kept, d)
		}
	}
	if len(kept) == 0 {
		kept = []string{"noindex", "nofollow"}
	}
	value := strings.Join(kept, ", ")

	return func(c *gin.Context) {
		c.Header("X-Robots-Tag", value)
		c.Next()
	}
}
