package sections

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"aivanta-site/internal/catalog"
)

// RegisterServices registers the two static renditions of the service
// categories: a tile grid and a hover-highlight list.
func RegisterServices(reg *Registry) {
	if reg == nil {
		return
	}
	reg.RegisterWithMetadata(&SectionDescriptor{
		Renderer: renderServiceTiles,
		Metadata: SectionMetadata{
			Type:        "services_tiles",
			Name:        "Service tiles",
			Description: "Grid of category tiles linking to the category pages.",
			Page:        "home",
		},
	})
	reg.RegisterWithMetadata(&SectionDescriptor{
		Renderer: renderServiceList,
		Metadata: SectionMetadata{
			Type:        "services_list",
			Name:        "Service list",
			Description: "Category list that highlights the hovered row.",
			Page:        "home",
			Scripts:     []string{ScriptHoverList},
		},
	})
}

func servicesHeader() g.Node {
	return Div(Class("section-header split"),
		Div(
			eyebrow("Concrete AI-toepassingen"),
			H2(Class("section-title"), g.Text("Wat kan Aivanta voor u automatiseren?")),
		),
		P(Class("section-lead"), g.Text("Kies een domein en ontdek wat er in uw bedrijf mogelijk is.")),
	)
}

func servicesFootnote() g.Node {
	return P(Class("footnote"), g.Text("Geen van deze toepassingen vereist technische kennis van uw kant."))
}

func categoryHref(category catalog.ServiceCategory) string {
	return "/diensten/" + category.Slug
}

func categoryIsRenderable(category catalog.ServiceCategory) bool {
	return strings.TrimSpace(category.Slug) != "" && strings.TrimSpace(category.Title) != ""
}

func renderServiceTiles(ctx *RenderContext, p Placement) (g.Node, []string) {
	categories := ctx.Catalog.Categories()

	node := Section(ID(anchorOr(p, "diensten")), Class("services band-light"),
		Div(Class("container"),
			servicesHeader(),
			Div(Class("tile-grid"),
				g.Group(g.Map(categories, func(category catalog.ServiceCategory) g.Node {
					if !categoryIsRenderable(category) {
						return Div(Class("tile tile-placeholder"), P(g.Text("Binnenkort beschikbaar")))
					}
					return A(Class("tile"), Href(categoryHref(category)),
						g.Attr("data-category", category.Slug),
						icon(IconName(category.Icon), "tile-icon"),
						H3(Class("tile-title"), g.Text(category.Title)),
						P(Class("tile-tagline"), g.Text(category.Tagline)),
						Span(Class("tile-more"), g.Text("Ontdek meer"), icon("lucide:arrow-right", "")),
					)
				})),
			),
			servicesFootnote(),
		),
	)
	return node, nil
}

func renderServiceList(ctx *RenderContext, p Placement) (g.Node, []string) {
	categories := ctx.Catalog.Categories()

	node := Section(ID(anchorOr(p, "diensten")), Class("services band-light"),
		Div(Class("container"),
			servicesHeader(),
			Ul(Class("hover-list"), g.Attr("data-hover-list", ""),
				g.Group(g.Map(categories, func(category catalog.ServiceCategory) g.Node {
					if !categoryIsRenderable(category) {
						return Li(Class("hover-item hover-item-placeholder"), g.Text("Binnenkort beschikbaar"))
					}
					return Li(Class("hover-item"), g.Attr("data-hover-id", category.Slug),
						A(Href(categoryHref(category)),
							icon(IconName(category.Icon), "hover-icon"),
							Span(Class("hover-title"), g.Text(category.Title)),
							Span(Class("hover-tagline"), g.Text(category.Tagline)),
						),
					)
				})),
			),
			servicesFootnote(),
		),
	)
	return node, []string{ScriptHoverList}
}
