package sections

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"aivanta-site/internal/catalog"
	"aivanta-site/internal/widgets"
)

// CardsPerView is how many use-case cards the carousel viewport shows.
const CardsPerView = 3

// RegisterUseCases registers the use-case carousel with its detail modal.
func RegisterUseCases(reg *Registry) {
	if reg == nil {
		return
	}
	reg.RegisterWithMetadata(&SectionDescriptor{
		Renderer: renderUseCases,
		Metadata: SectionMetadata{
			Type:        "usecases",
			Name:        "Toepassingen",
			Description: "Horizontal carousel of use cases; a card opens a detail modal.",
			Page:        "home",
			Scripts:     []string{ScriptCarousel},
		},
	})
}

func useCaseIsRenderable(uc catalog.UseCase) bool {
	return strings.TrimSpace(uc.ID) != "" &&
		strings.TrimSpace(uc.Title) != "" &&
		strings.TrimSpace(uc.Summary) != ""
}

func renderUseCases(ctx *RenderContext, p Placement) (g.Node, []string) {
	anchor := anchorOr(p, "toepassingen")
	useCases := ctx.Catalog.UseCases()

	carousel := widgets.NewCarousel(CardsPerView, float64(len(useCases)))

	var dialog g.Node
	if id, ok := ctx.param(ParamUseCase); ok && id != "" {
		if uc, err := ctx.Catalog.FindUseCase(id); err == nil && useCaseIsRenderable(uc) {
			modal := widgets.NewModal(ctx.Lock)
			modal.Open(uc.ID)
			dialog = useCaseModal(ctx, uc, ctx.LinkWithout(ParamUseCase, anchor))
		}
	}

	node := Section(ID(anchor), Class("usecases band-light"),
		Div(Class("container"),
			Div(Class("section-header split"),
				Div(
					eyebrow("Toepassingen"),
					H2(Class("section-title"), g.Text("Zo ziet het eruit "), Span(Class("accent"), g.Text("in de praktijk."))),
				),
				Div(Class("carousel-controls"),
					carouselButton("prev", "Vorige", "lucide:chevron-left", carousel.CanScrollPrev()),
					carouselButton("next", "Volgende", "lucide:chevron-right", carousel.CanScrollNext()),
				),
			),
			Div(Class("carousel"),
				g.Attr("data-carousel", ""),
				g.Attr("data-carousel-tolerance", strconv.FormatFloat(widgets.ScrollTolerance, 'f', -1, 64)),
				Ul(Class("carousel-track"),
					g.Group(g.Map(useCases, func(uc catalog.UseCase) g.Node {
						return Li(Class("carousel-slide"), useCaseCard(ctx, uc, anchor))
					})),
				),
			),
		),
		dialog,
	)
	return node, []string{ScriptCarousel}
}

func carouselButton(direction, label, iconName string, enabled bool) g.Node {
	return Button(Type("button"), Class("carousel-button"),
		g.Attr("data-carousel-"+direction, ""),
		g.Attr("aria-label", label),
		g.If(!enabled, g.Attr("disabled", "")),
		icon(iconName, ""),
	)
}

func useCaseCard(ctx *RenderContext, uc catalog.UseCase, anchor string) g.Node {
	if !useCaseIsRenderable(uc) {
		return Div(Class("usecase-card usecase-placeholder"),
			icon(fallbackIcon, "usecase-icon"),
			P(g.Text("Deze toepassing wordt binnenkort toegevoegd.")),
		)
	}

	return A(Class("usecase-card"),
		Href(ctx.LinkWith(ParamUseCase, uc.ID, anchor)),
		g.Attr("data-usecase-id", uc.ID),
		g.If(uc.ImageURL != "", Img(Class("usecase-image"), Src(uc.ImageURL), Alt(uc.Title), g.Attr("loading", "lazy"))),
		Div(Class("usecase-body"),
			icon(IconName(uc.Icon), "usecase-icon"),
			H3(Class("usecase-title"), g.Text(uc.Title)),
			P(Class("usecase-summary"), g.Text(uc.Summary)),
		),
	)
}

func useCaseModal(ctx *RenderContext, uc catalog.UseCase, closeHref string) g.Node {
	categoryTitle := ""
	if category, err := ctx.Catalog.FindCategory(uc.Category); err == nil {
		categoryTitle = category.Title
	}

	titleID := "toepassing-" + uc.ID + "-titel"
	details := []struct {
		label string
		text  string
	}{
		{"Het probleem", uc.Problem},
		{"Hoe AI helpt", uc.How},
		{"Wat het oplevert", uc.Value},
		{"Impact", uc.Impact},
	}

	return Div(Class("modal"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		g.Attr("aria-labelledby", titleID),
		g.Attr("data-modal", uc.ID),
		A(Class("modal-backdrop"), Href(closeHref), g.Attr("data-close", string(widgets.CloseBackdrop)), g.Attr("aria-label", "Sluiten")),
		Div(Class("modal-card"),
			A(Class("modal-close"), Href(closeHref), g.Attr("data-close", string(widgets.CloseButton)), g.Attr("aria-label", "Sluiten"),
				icon("lucide:x", ""),
			),
			g.If(uc.ImageURL != "", Img(Class("modal-image"), Src(uc.ImageURL), Alt(uc.Title))),
			g.If(categoryTitle != "", eyebrow(categoryTitle)),
			H3(ID(titleID), Class("modal-title"), g.Text(uc.Title)),
			P(Class("modal-summary"), g.Text(uc.Summary)),
			Dl(Class("modal-details"),
				g.Group(g.Map(details, func(d struct {
					label string
					text  string
				}) g.Node {
					if strings.TrimSpace(d.text) == "" {
						return nil
					}
					return g.Group([]g.Node{Dt(g.Text(d.label)), Dd(g.Text(d.text))})
				})),
			),
			g.If(uc.Category != "" && categoryTitle != "",
				A(Class("modal-link"), Href("/diensten/"+uc.Category), g.Text("Meer over "+categoryTitle)),
			),
		),
	)
}
