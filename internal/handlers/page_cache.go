package handlers

import (
	"context"
	"errors"

	"aivanta-site/pkg/cache"
	"aivanta-site/pkg/logger"
)

const pageCachePrefix = "page:"

func pageCacheKey(path string) string {
	return pageCachePrefix + path
}

func (h *TemplateHandler) cachedPage(ctx context.Context, path string) ([]byte, bool) {
	if !h.pageCache.Enabled() {
		return nil, false
	}

	body, err := h.pageCache.GetBytes(ctx, pageCacheKey(path))
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.FromContext(ctx).WithError(err).Debug("Page cache lookup failed")
		}
		return nil, false
	}
	return body, true
}

func (h *TemplateHandler) storePage(ctx context.Context, path string, body []byte) {
	if !h.pageCache.Enabled() || h.config.PageCacheTTL <= 0 {
		return
	}
	if err := h.pageCache.SetBytes(ctx, pageCacheKey(path), body, h.config.PageCacheTTL); err != nil {
		logger.FromContext(ctx).WithError(err).Debug("Page cache store failed")
	}
}

// FlushPageCache drops every cached page and reports how many were removed.
func FlushPageCache(ctx context.Context, pageCache *cache.Cache) (int, error) {
	if !pageCache.Enabled() {
		return 0, cache.ErrCacheDisabled
	}
	return pageCache.DeletePattern(ctx, pageCachePrefix+"*")
}
