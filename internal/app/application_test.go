package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aivanta-site/internal/catalog"
	"aivanta-site/internal/config"
	"aivanta-site/internal/contact"
	"aivanta-site/pkg/validator"
)

type nopRelay struct{}

func (nopRelay) Deliver(context.Context, contact.Payload) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Port:                "0",
		Environment:         "test",
		SiteName:            "Aivanta",
		SiteURL:             "https://aivanta.be",
		ContactEmail:        "hallo@aivanta.be",
		ContactRelayTimeout: time.Second,
		RateLimitRequests:   5,
		RateLimitWindow:     60,
		RateLimitBurst:      3,
		CORSOrigins:         []string{"https://aivanta.be"},
		EnableMetrics:       true,
		ServicesView:        config.ServicesViewList,
		ShowUseCases:        true,
		ShowTools:           true,
		ShowFAQ:             true,
	}
}

func newTestApp(t *testing.T, opts Options) *Application {
	t.Helper()
	validator.Init()
	if opts.Relay == nil {
		opts.Relay = nopRelay{}
	}

	application, err := New(testConfig(), opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Shutdown(context.Background()) })
	return application
}

func get(application *Application, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	application.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRoutes(t *testing.T) {
	application := newTestApp(t, Options{})

	tests := []struct {
		path   string
		status int
	}{
		{"/", http.StatusOK},
		{"/over-ons", http.StatusOK},
		{"/diensten/leadgeneratie", http.StatusOK},
		{"/diensten/onbekend", http.StatusNotFound},
		{"/bestaat-niet", http.StatusNotFound},
		{"/static/css/site.css", http.StatusOK},
		{"/static/js/accordion.js", http.StatusOK},
		{"/api/v1/categories", http.StatusOK},
		{"/api/v1/categories/leadgeneratie/ai-leadkwalificatie-scoring", http.StatusOK},
		{"/api/v1/faq", http.StatusOK},
		{"/api/v1/process", http.StatusOK},
		{"/health", http.StatusOK},
		{"/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.status, get(application, tt.path).Code)
		})
	}
}

func TestUnknownAPIRouteIsJSON(t *testing.T) {
	application := newTestApp(t, Options{})

	w := get(application, "/api/v1/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"))
	assert.Equal(t, "noindex, nofollow", w.Header().Get("X-Robots-Tag"))
}

func TestSecurityAndRequestHeaders(t *testing.T) {
	application := newTestApp(t, Options{})

	w := get(application, "/")
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Empty(t, w.Header().Get("X-Robots-Tag"))

	assert.Equal(t, "noindex, nofollow", get(application, "/health").Header().Get("X-Robots-Tag"))
}

func TestListViewIsRendered(t *testing.T) {
	application := newTestApp(t, Options{})

	body := get(application, "/").Body.String()
	assert.Contains(t, body, "data-hover-list")
	assert.Contains(t, body, "/static/js/hover-list.js")
}

func TestInvalidCatalogIsRejected(t *testing.T) {
	validator.Init()
	broken := catalog.New(catalog.Content{
		Categories: []catalog.ServiceCategory{{Slug: "a"}, {Slug: "a"}},
	})

	_, err := New(testConfig(), Options{Catalog: broken, Relay: nopRelay{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid catalog")
}

func TestInvalidConfigIsRejected(t *testing.T) {
	cfg := testConfig()
	cfg.ServicesView = "grid"

	_, err := New(cfg, Options{Relay: nopRelay{}})
	require.Error(t, err)
}

func TestEmptyCORSOriginsAreRejected(t *testing.T) {
	cfg := testConfig()
	cfg.CORSOrigins = nil

	_, err := New(cfg, Options{Relay: nopRelay{}})
	require.ErrorContains(t, err, "CORS_ORIGINS")
}

func TestCachedPathsCoverEveryCategory(t *testing.T) {
	application := newTestApp(t, Options{})

	paths := application.CachedPaths()
	assert.Equal(t, "/", paths[0])
	assert.Contains(t, paths, "/over-ons")
	for _, category := range application.Catalog().Categories() {
		assert.Contains(t, paths, "/diensten/"+category.Slug)
		assert.Equal(t, http.StatusOK, get(application, "/diensten/"+category.Slug).Code)
	}
}
