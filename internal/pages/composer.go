// Package pages assembles registered sections into the site's pages.
package pages

import (
	"fmt"
	"html/template"
	"strings"

	"aivanta-site/internal/config"
	"aivanta-site/internal/sections"
	"aivanta-site/pkg/logger"
)

type Kind string

const (
	KindHome     Kind = "home"
	KindCategory Kind = "category"
	KindAbout    Kind = "about"
	KindNotFound Kind = "not_found"
)

// Layout selects the optional home sections and how services are shown.
type Layout struct {
	ServicesView string
	ShowUseCases bool
	ShowTools    bool
	ShowFAQ      bool
}

// LayoutFromConfig reads the layout flags from the site configuration.
func LayoutFromConfig(cfg *config.Config) Layout {
	if cfg == nil {
		return DefaultLayout()
	}
	return Layout{
		ServicesView: cfg.ServicesView,
		ShowUseCases: cfg.ShowUseCases,
		ShowTools:    cfg.ShowTools,
		ShowFAQ:      cfg.ShowFAQ,
	}
}

func DefaultLayout() Layout {
	return Layout{
		ServicesView: config.ServicesViewTiles,
		ShowUseCases: true,
		ShowTools:    true,
		ShowFAQ:      true,
	}
}

// Page is a composed page ready for the base layout.
type Page struct {
	Kind         Kind
	Title        string
	Description  string
	Body         template.HTML
	Scripts      []string
	ScrollLocked bool
}

// Composer renders pages from a section registry in a fixed order per kind.
type Composer struct {
	registry *sections.Registry
	layout   Layout
}

func NewComposer(registry *sections.Registry, layout Layout) *Composer {
	if registry == nil {
		registry = sections.DefaultRegistry()
	}
	if layout.ServicesView == "" {
		layout.ServicesView = config.ServicesViewTiles
	}
	return &Composer{registry: registry, layout: layout}
}

func (c *Composer) Layout() Layout {
	return c.layout
}

// Placements returns the section order for a page kind.
func (c *Composer) Placements(kind Kind) []sections.Placement {
	switch kind {
	case KindHome:
		return c.homePlacements()
	case KindCategory:
		return placements("category_hero", "subservices", "approach", "scope", "category_cta")
	case KindAbout:
		return placements("about_hero", "about_body")
	default:
		return placements("not_found")
	}
}

func (c *Composer) homePlacements() []sections.Placement {
	result := placements("hero", "quote")

	switch c.layout.ServicesView {
	case config.ServicesViewList:
		result = append(result, sections.Placement{Type: "services_list"})
	case config.ServicesViewCarousel:
		result = append(result, sections.Placement{Type: "usecases"})
	default:
		result = append(result, sections.Placement{Type: "services_tiles"})
	}

	result = append(result, sections.Placement{Type: "process"})

	if c.layout.ShowUseCases && c.layout.ServicesView != config.ServicesViewCarousel {
		result = append(result, sections.Placement{Type: "usecases"})
	}
	if c.layout.ShowTools {
		result = append(result, sections.Placement{Type: "tools"})
	}
	if c.layout.ShowFAQ {
		result = append(result, sections.Placement{Type: "faq"})
	}
	return append(result, sections.Placement{Type: "contact"})
}

func placements(types ...string) []sections.Placement {
	result := make([]sections.Placement, 0, len(types))
	for _, t := range types {
		result = append(result, sections.Placement{Type: t})
	}
	return result
}

// Compose renders every section of kind into one page body. Sections that
// render nothing are skipped; scripts are deduplicated in first-use order.
func (c *Composer) Compose(kind Kind, ctx *sections.RenderContext) (Page, error) {
	if ctx == nil || ctx.Catalog == nil {
		return Page{}, fmt.Errorf("render context with catalog is required")
	}
	if kind == KindCategory && ctx.Category == nil {
		return Page{}, fmt.Errorf("category page requires a category")
	}

	var body strings.Builder
	var scripts []string
	seen := make(map[string]struct{})

	for _, placement := range c.Placements(kind) {
		renderer, ok := c.registry.Get(placement.Type)
		if !ok {
			logger.Warn("Section type not registered", map[string]interface{}{"type": placement.Type, "page": string(kind)})
			continue
		}

		node, sectionScripts := renderer(ctx, placement)
		if node == nil {
			continue
		}
		if err := node.Render(&body); err != nil {
			return Page{}, fmt.Errorf("render section %s: %w", placement.Type, err)
		}

		for _, script := range sectionScripts {
			if _, dup := seen[script]; dup {
				continue
			}
			seen[script] = struct{}{}
			scripts = append(scripts, script)
		}
	}

	title, description := c.meta(kind, ctx)
	return Page{
		Kind:         kind,
		Title:        title,
		Description:  description,
		Body:         template.HTML(body.String()),
		Scripts:      scripts,
		ScrollLocked: ctx.ScrollLocked(),
	}, nil
}

func (c *Composer) meta(kind Kind, ctx *sections.RenderContext) (string, string) {
	site := strings.TrimSpace(ctx.SiteName)
	if site == "" {
		site = "Aivanta"
	}

	switch kind {
	case KindHome:
		return site + " | AI & Automatisering voor ondernemers",
			"We helpen u een productievere, winstgevendere onderneming te bouwen met AI & Automatisering."
	case KindCategory:
		return ctx.Category.Title + " | " + site, ctx.Category.Tagline
	case KindAbout:
		return "Over ons | " + site, "Tristan Distelmans over waarom " + site + " AI naar de gewone ondernemer brengt."
	default:
		return "Pagina niet gevonden | " + site, ""
	}
}
