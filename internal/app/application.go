package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"aivanta-site/internal/background"
	"aivanta-site/internal/catalog"
	"aivanta-site/internal/config"
	"aivanta-site/internal/contact"
	"aivanta-site/internal/handlers"
	"aivanta-site/internal/middleware"
	"aivanta-site/internal/pages"
	"aivanta-site/internal/sections"
	"aivanta-site/pkg/cache"
	"aivanta-site/pkg/logger"
	"aivanta-site/pkg/utils"
	"aivanta-site/web"
)

type Options struct {
	// Catalog replaces the compiled-in content when set.
	Catalog *catalog.Catalog
	// Relay replaces the HTTP form relay when set.
	Relay contact.Relay
}

type Application struct {
	cfg     *config.Config
	options Options
	started time.Time

	cache      *cache.Cache
	catalog    *catalog.Catalog
	registry   *sections.Registry
	relay      contact.Relay
	contact    *contact.Service
	rateLimits *middleware.RateLimitManager
	jobs       *background.Runner

	handlers handlerContainer
	router   *gin.Engine
	server   *http.Server
}

type handlerContainer struct {
	Template *handlers.TemplateHandler
	Contact  *handlers.ContactHandler
	Catalog  *handlers.CatalogHandler
}

func New(cfg *config.Config, opts Options) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	app := &Application{
		cfg:     cfg,
		options: opts,
		started: time.Now(),
	}

	app.initCache()

	if err := app.initCatalog(); err != nil {
		return nil, err
	}

	app.initContact()
	app.rateLimits = middleware.NewRateLimitManager(context.Background())
	app.jobs = background.NewRunner()

	if err := app.initHandlers(); err != nil {
		_ = app.rateLimits.Shutdown()
		return nil, err
	}

	app.initRouter()

	app.server = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// The HTML contact post waits on the relay.
		WriteTimeout:   cfg.ContactRelayTimeout + 10*time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
		"cache":       a.cache.Enabled(),
	})

	return a.server.ListenAndServe()
}

// Serve runs the server until ctx is cancelled or it fails, then shuts down
// within shutdownTimeout.
func (a *Application) Serve(ctx context.Context, shutdownTimeout time.Duration) error {
	g, gctx := errgroup.WithContext(ctx)

	a.jobs.Start(gctx)
	if a.cache.Enabled() && a.cfg.PageCacheTTL > 0 {
		if err := a.jobs.Go(background.WarmPages(a.router, a.CachedPaths())); err != nil {
			logger.Error(err, "Failed to schedule page cache warm-up", nil)
		}
	}

	g.Go(func() error {
		if err := a.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (a *Application) Shutdown(ctx context.Context) error {
	var errs []error

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown server: %w", err))
		}
	}

	if a.jobs != nil {
		if err := a.jobs.Shutdown(ctx); err != nil {
			logger.Error(err, "Background jobs did not stop in time", nil)
		}
	}

	if a.rateLimits != nil {
		if err := a.rateLimits.Shutdown(); err != nil {
			logger.Error(err, "Failed to stop rate limit manager", nil)
		}
	}

	if closer, ok := a.relay.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			logger.Error(err, "Failed to close contact relay", nil)
		}
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	return errors.Join(errs...)
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) Catalog() *catalog.Catalog {
	return a.catalog
}

func (a *Application) Cache() *cache.Cache {
	return a.cache
}

// CachedPaths lists the query-free pages the page cache serves.
func (a *Application) CachedPaths() []string {
	paths := []string{"/", "/over-ons"}
	for _, category := range a.catalog.Categories() {
		paths = append(paths, "/diensten/"+category.Slug)
	}
	return paths
}

// initCache connects to Redis when enabled. An unreachable Redis degrades to
// a disabled cache; the site renders fine without it.
func (a *Application) initCache() {
	if a.cfg.EnableCache {
		c, err := cache.NewCache(a.cfg.RedisURL, true)
		if err == nil {
			a.cache = c
			return
		}
		logger.Error(err, "Cache unavailable, continuing without it", map[string]interface{}{"redis": a.cfg.RedisURL})
	}

	a.cache, _ = cache.NewCache("", false)
}

func (a *Application) initCatalog() error {
	cat := a.options.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	if err := cat.Validate(); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	a.catalog = cat
	a.registry = sections.DefaultRegistry()
	logger.Info("Catalog loaded", map[string]interface{}{"stats": cat.Stats()})
	return nil
}

func (a *Application) initContact() {
	relay := a.options.Relay
	if relay == nil {
		relay = contact.NewHTTPRelay(contact.RelayConfig{
			URL:               a.cfg.ContactRelayURL,
			Timeout:           a.cfg.ContactRelayTimeout,
			RequestsPerSecond: a.cfg.ContactRelayRPS,
		})
	}

	a.relay = relay
	a.contact = contact.NewService(relay, a.cache, contact.Config{SiteName: a.cfg.SiteName})
}

func (a *Application) initHandlers() error {
	templates, err := utils.LoadTemplates(web.FS, "templates", web.AssetVersion(a.started))
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	logger.Info("Templates loaded successfully", nil)

	composer := pages.NewComposer(a.registry, pages.LayoutFromConfig(a.cfg))

	templateHandler, err := handlers.NewTemplateHandler(a.cfg, a.catalog, composer, a.contact, a.cache, templates)
	if err != nil {
		return fmt.Errorf("failed to initialize template handler: %w", err)
	}

	a.handlers = handlerContainer{
		Template: templateHandler,
		Contact:  handlers.NewContactHandler(a.contact, a.cfg.ContactEmail),
		Catalog:  handlers.NewCatalogHandler(a.catalog, a.registry),
	}
	return nil
}

func (a *Application) initRouter() {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	router.Use(middleware.SecurityHeadersMiddleware())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}
	router.Use(func(c *gin.Context) {
		c.Set(middleware.RateLimitManagerKey, a.rateLimits)
		c.Next()
	})
	router.Use(middleware.RateLimitMiddleware(a.cfg))

	router.Use(cors.New(cors.Config{
		AllowOrigins:  a.cfg.CORSOrigins,
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	router.StaticFS("/static", http.FS(web.Static()))
	router.GET("/favicon.ico", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/static/images/favicon.svg")
	})

	internal := router.Group("", middleware.NoIndexMiddleware())
	{
		internal.GET("/health", handlers.Health(a.catalog, a.cache))
		if a.cfg.EnableMetrics {
			internal.GET("/metrics", gin.WrapH(promhttp.Handler()))
		}
	}

	router.GET("/", a.handlers.Template.RenderHome)
	router.GET("/over-ons", a.handlers.Template.RenderAbout)
	router.GET("/diensten/:slug", a.handlers.Template.RenderCategory)
	router.POST("/contact", a.handlers.Template.SubmitContact)

	v1 := router.Group("/api/v1", middleware.NoIndexMiddleware())
	{
		v1.GET("/categories", a.handlers.Catalog.ListCategories)
		v1.GET("/categories/:slug", a.handlers.Catalog.GetCategory)
		v1.GET("/categories/:slug/:id", a.handlers.Catalog.GetSubService)
		v1.GET("/usecases", a.handlers.Catalog.ListUseCases)
		v1.GET("/faq", a.handlers.Catalog.ListFAQ)
		v1.GET("/process", a.handlers.Catalog.ListProcess)
		v1.GET("/sections", a.handlers.Catalog.ListSections)

		v1.POST("/contact", a.handlers.Contact.Submit)
		v1.DELETE("/contact/:token", a.handlers.Contact.Discard)
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Header("X-Robots-Tag", "noindex, nofollow")
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Route not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		a.handlers.Template.RenderNotFound(c)
	})

	a.router = router
}
