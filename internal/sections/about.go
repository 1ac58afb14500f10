package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// RegisterAbout registers the about page and the not-found view.
func RegisterAbout(reg *Registry) {
	if reg == nil {
		return
	}
	reg.RegisterWithMetadata(&SectionDescriptor{
		Renderer: renderAboutHero,
		Metadata: SectionMetadata{Type: "about_hero", Name: "Over ons", Page: "about", Description: "Name banner of the about page."},
	})
	reg.RegisterWithMetadata(&SectionDescriptor{
		Renderer: renderAboutBody,
		Metadata: SectionMetadata{Type: "about_body", Name: "Over Tristan", Page: "about", Description: "Portrait and personal introduction."},
	})
	reg.RegisterWithMetadata(&SectionDescriptor{
		Renderer: renderNotFound,
		Metadata: SectionMetadata{Type: "not_found", Name: "Niet gevonden", Page: "not_found", Description: "Message with a link back home."},
	})
}

func renderAboutHero(ctx *RenderContext, p Placement) (g.Node, []string) {
	node := Section(ID(anchorOr(p, "top")), Class("about-hero band-dark"), Style("background: "+DarkBackground),
		Div(Class("container"),
			A(Class("back-link"), Href("/"), icon("lucide:arrow-left", ""), g.Text("Terug naar overzicht")),
			eyebrow("Over ons"),
			H1(Class("about-name"), g.Text("Tristan Distelmans")),
		),
	)
	return node, nil
}

func renderAboutBody(ctx *RenderContext, p Placement) (g.Node, []string) {
	node := Section(ID(anchorOr(p, "over")), Class("about band-light"),
		Div(Class("container about-grid"),
			Div(Class("about-photo"),
				Img(Src("/static/images/tristan.svg"), Alt("Tristan Distelmans, "+ctx.siteName())),
			),
			Div(Class("about-text"),
				H2(Class("section-title"), g.Text("Aangenaam: ik ben Tristan.")),
				P(
					g.Text("Ik doe dit omdat ik er oprecht in geloof dat AI een enorme impact kan hebben voor de gewone ondernemer, niet alleen voor grote bedrijven met grote IT-afdelingen. Mijn uitgangspunt is altijd hetzelfde: hoe kunt u AI inzetten om uw werk makkelijker te maken, uw bedrijf efficiënter te laten draaien en uw tijd te besteden aan "),
					Em(g.Text("wat er echt toe doet")),
					g.Text("?"),
				),
				P(g.Text("Ik heb geen grote technische achtergrond, en dat is precies mijn sterkste troef. Ik denk niet in systemen, ik denk in problemen en oplossingen. Ik stel de vragen die er echt toe doen: waar verliest u tijd, wat blokkeert u dagelijks, en wat verandert er als dat wegvalt?")),
				P(
					g.Text("Vandaaruit bouw ik iets dat werkt. Geen leuk idee op papier, maar een "),
					Em(g.Text("concrete oplossing die morgen al impact maakt")),
					g.Text(" op uw dagelijkse werk."),
				),
				ctaButton("/#contact", "Neem contact op"),
			),
		),
	)
	return node, nil
}

func renderNotFound(ctx *RenderContext, p Placement) (g.Node, []string) {
	node := Section(ID(anchorOr(p, "niet-gevonden")), Class("not-found band-light"),
		Div(Class("container centered"),
			H1(Class("not-found-title"), g.Text("Pagina niet gevonden")),
			A(Class("btn btn-primary"), Href("/"), g.Text("Terug naar de homepage")),
		),
	)
	return node, nil
}
