package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"aivanta-site/internal/catalog"
)

const simpleIconsCDN = "https://cdn.simpleicons.org/"

// RegisterTools registers the integrations cloud.
func RegisterTools(reg *Registry) {
	if reg == nil {
		return
	}
	reg.RegisterWithMetadata(&SectionDescriptor{
		Renderer: renderTools,
		Metadata: SectionMetadata{
			Type:        "tools",
			Name:        "Integraties",
			Description: "Logos of the tools Aivanta connects.",
			Page:        "home",
		},
	})
}

func renderTools(ctx *RenderContext, p Placement) (g.Node, []string) {
	tools := ctx.Catalog.Tools()

	node := Section(ID(anchorOr(p, "integraties")), Class("tools band-dark"), Style("background: "+DarkBackground),
		Div(Class("container centered"),
			Div(Class("section-header"),
				eyebrow("Naadloze integraties"),
				H2(Class("section-title"),
					g.Text("Koppel elke tool die u gebruikt "),
					Span(Class("accent"), g.Text("aan elkaar.")),
				),
				P(Class("section-lead"),
					g.Text("Van Gmail tot LinkedIn, van Shopify tot Notion: Aivanta verbindt uw bestaande tools en laat ze samenwerken. U hoeft niets te vervangen, enkel te versterken."),
				),
			),
			Ul(Class("tool-cloud"),
				g.Group(g.Map(tools, func(tool catalog.Tool) g.Node {
					name := tool.Name
					if name == "" {
						name = tool.Slug
					}
					return Li(Class("tool"), g.Attr("title", name),
						Img(Src(simpleIconsCDN+tool.Slug), Alt(name), g.Attr("loading", "lazy"), g.Attr("width", "40"), g.Attr("height", "40")),
					)
				})),
			),
		),
	)
	return node, nil
}
