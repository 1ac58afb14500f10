package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// RegisterHero registers the home hero and the quote that follows it.
func RegisterHero(reg *Registry) {
	if reg == nil {
		return
	}
	reg.RegisterWithMetadata(&SectionDescriptor{
		Renderer: renderHero,
		Metadata: SectionMetadata{
			Type:        "hero",
			Name:        "Hero",
			Description: "Opening statement with the two calls to action.",
			Page:        "home",
		},
	})
	reg.RegisterWithMetadata(&SectionDescriptor{
		Renderer: renderQuote,
		Metadata: SectionMetadata{
			Type:        "quote",
			Name:        "Quote",
			Description: "Attributed quote below the hero.",
			Page:        "home",
		},
	})
}

func renderHero(ctx *RenderContext, p Placement) (g.Node, []string) {
	node := Section(ID(anchorOr(p, "top")), Class("hero band-dark"),
		Div(Class("container hero-inner"),
			Span(Class("hero-tag"), g.Text("AI Automation Agency")),
			H1(Class("hero-title"),
				g.Text("We helpen u een productievere, "),
				Span(Class("accent-drama"), g.Text("winstgevendere")),
				g.Text(" onderneming te bouwen, met AI & Automatisering."),
			),
			Div(Class("hero-actions"),
				ctaButton("#werkwijze", "Ontdek wat mogelijk is"),
				A(Class("link-lift"), Href("#werkwijze"),
					g.Text("Bekijk de werkwijze"),
					icon("lucide:chevron-right", ""),
				),
			),
		),
	)
	return node, nil
}

func renderQuote(ctx *RenderContext, p Placement) (g.Node, []string) {
	node := Section(Class("quote band-dark"),
		Div(Class("container"),
			BlockQuote(
				P(Class("quote-line"), g.Text(`"AI will not replace people.`)),
				P(Class("quote-line quote-accent"), g.Text(`But people who use AI will replace those who don't."`)),
				Footer(Class("quote-source"),
					g.El("cite", g.Text("Sundar Pichai")),
					Span(Class("quote-role"), g.Text("CEO Google")),
				),
			),
		),
	)
	return node, nil
}
