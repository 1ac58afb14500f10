package handlers

import (
	"fmt"
	"html/template"

	"aivanta-site/internal/catalog"
	"aivanta-site/internal/config"
	"aivanta-site/internal/contact"
	"aivanta-site/internal/pages"
	"aivanta-site/pkg/cache"
	"aivanta-site/pkg/navigation"
)

// TemplateHandler renders the public pages and the HTML contact flow.
type TemplateHandler struct {
	templates  *template.Template
	config     *config.Config
	catalog    *catalog.Catalog
	composer   *pages.Composer
	contact    *contact.Service
	pageCache  *cache.Cache
	navigation []navigation.Item
}

func NewTemplateHandler(cfg *config.Config, cat *catalog.Catalog, composer *pages.Composer, contactService *contact.Service, pageCache *cache.Cache, templates *template.Template) (*TemplateHandler, error) {
	if templates == nil {
		return nil, fmt.Errorf("templates are required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cat == nil {
		cat = catalog.Default()
	}
	if composer == nil {
		composer = pages.NewComposer(nil, pages.LayoutFromConfig(cfg))
	}

	return &TemplateHandler{
		templates:  templates,
		config:     cfg,
		catalog:    cat,
		composer:   composer,
		contact:    contactService,
		pageCache:  pageCache,
		navigation: navigation.Default(),
	}, nil
}
