package sections

import (
	"encoding/json"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"aivanta-site/internal/catalog"
	"aivanta-site/internal/widgets"
)

// RegisterCategory registers the sections of a category detail page.
func RegisterCategory(reg *Registry) {
	if reg == nil {
		return
	}
	descriptors := []*SectionDescriptor{
		{Renderer: renderCategoryHero, Metadata: SectionMetadata{
			Type: "category_hero", Name: "Categorie", Page: "category",
			Description: "Category title with the problem it solves and the possible results.",
		}},
		{Renderer: renderSubServices, Metadata: SectionMetadata{
			Type: "subservices", Name: "Specifieke toepassingen", Page: "category",
			Description: "Numbered sub-service cards that expand one at a time.",
			Scripts:     []string{ScriptAccordion},
		}},
		{Renderer: renderApproach, Metadata: SectionMetadata{
			Type: "approach", Name: "Aanpak", Page: "category",
			Description: "Approach steps beside a sticky panel that follows the scroll position.",
			Scripts:     []string{ScriptStickyScroll},
		}},
		{Renderer: renderScope, Metadata: SectionMetadata{
			Type: "scope", Name: "Scope", Page: "category",
			Description: "What is and is not included.",
		}},
		{Renderer: renderCategoryCTA, Metadata: SectionMetadata{
			Type: "category_cta", Name: "Interesse", Page: "category",
			Description: "Closing call to action linking to the contact form.",
		}},
	}
	for _, desc := range descriptors {
		reg.RegisterWithMetadata(desc)
	}
}

func renderCategoryHero(ctx *RenderContext, p Placement) (g.Node, []string) {
	category := ctx.Category
	if category == nil {
		return nil, nil
	}

	node := Section(ID(anchorOr(p, "top")), Class("category-hero band-dark"), Style("background: "+DarkBackground),
		Div(Class("container"),
			A(Class("back-link"), Href("/"), icon("lucide:arrow-left", ""), g.Text("Terug naar overzicht")),
			Div(Class("category-heading"),
				icon(IconName(category.Icon), "category-icon"),
				eyebrow("AI Automatisering"),
			),
			H1(Class("category-title"), g.Text(category.Title)),
			P(Class("category-description"), g.Text(category.Description)),
			Div(Class("category-columns"),
				g.If(strings.TrimSpace(category.HeroProblem) != "",
					Div(Class("category-problem"),
						H2(Class("column-title"), g.Text("Herkent u dit?")),
						P(g.Text(category.HeroProblem)),
					),
				),
				g.If(len(nonEmpty(category.HeroResults)) > 0,
					Div(Class("category-results"),
						H2(Class("column-title"), g.Text("Mogelijke resultaten")),
						bulletList("check-list", category.HeroResults),
					),
				),
			),
		),
	)
	return node, nil
}

func renderSubServices(ctx *RenderContext, p Placement) (g.Node, []string) {
	category := ctx.Category
	if category == nil || len(category.SubServices) == 0 {
		return nil, nil
	}
	anchor := anchorOr(p, "toepassingen")

	ids := make([]string, 0, len(category.SubServices))
	items := make([]disclosureItem, 0, len(category.SubServices))
	for i, sub := range category.SubServices {
		ids = append(ids, sub.ID)
		items = append(items, subServiceItem(i, sub))
	}
	acc := accordionFromQuery(ctx, ParamSubService, ids, "")

	node := Section(ID(anchor), Class("subservices band-light"),
		Div(Class("container"),
			Div(Class("section-header"),
				eyebrow("Specifieke toepassingen"),
				H2(Class("section-title"), g.Text("Wat zit er precies in?")),
				P(Class("section-lead"), g.Text("Klik op een toepassing voor alle details, inclusief scope, aanpak en integraties.")),
			),
			disclosureList(ctx, acc, ParamSubService, anchor, "subservice-list", items),
		),
	)
	return node, []string{ScriptAccordion}
}

func subServiceItem(i int, sub catalog.SubService) disclosureItem {
	title := sub.Title
	if strings.TrimSpace(title) == "" {
		title = "Toepassing " + stepNumber(i)
	}

	return disclosureItem{
		id: sub.ID,
		header: g.Group([]g.Node{
			Span(Class("step-number"), g.Text(stepNumber(i))),
			Span(Class("subservice-heading"),
				Span(Class("subservice-title"), g.Text(title)),
				g.If(sub.Summary != "", Span(Class("subservice-summary"), g.Text(sub.Summary))),
			),
		}),
		body: Div(Class("subservice-detail"),
			detailText("Voor wie", sub.TargetAudience),
			detailText("Wanneer inzetten", sub.WhenToUse),
			detailList("Wat levert het op", "check-list", sub.Benefits),
			detailText("Hoe werkt AI hier?", sub.HowAIWorks),
			Div(Class("detail-columns"),
				detailList("Inbegrepen", "check-list", sub.Included),
				detailList("Niet inbegrepen", "dash-list", sub.Excluded),
			),
			integrationChips(sub.Integrations),
		),
	}
}

func detailText(label, text string) g.Node {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return Div(Class("detail"),
		Span(Class("detail-label"), g.Text(label)),
		P(Class("detail-text"), g.Text(text)),
	)
}

func detailList(label, class string, items []string) g.Node {
	list := bulletList(class, items)
	if list == nil {
		return nil
	}
	return Div(Class("detail"),
		Span(Class("detail-label"), g.Text(label)),
		list,
	)
}

func integrationChips(integrations []string) g.Node {
	integrations = nonEmpty(integrations)
	if len(integrations) == 0 {
		return nil
	}
	return Div(Class("detail"),
		Span(Class("detail-label"), g.Text("Werkt samen met")),
		Ul(Class("chips"),
			g.Group(g.Map(integrations, func(name string) g.Node {
				return Li(Class("chip"), g.Text(name))
			})),
		),
	)
}

func renderApproach(ctx *RenderContext, p Placement) (g.Node, []string) {
	category := ctx.Category
	if category == nil || len(category.ApproachSteps) == 0 {
		return nil, nil
	}
	steps := category.ApproachSteps

	panel := widgets.NewScrollPanel(len(steps))
	panel.Update(0)
	active := steps[panel.Active()]

	breakpoints, _ := json.Marshal(panel.Breakpoints())
	gradients, _ := json.Marshal(widgets.PanelGradients)

	node := Section(ID(anchorOr(p, "aanpak")), Class("approach band-dark"), Style("background: "+DarkBackground),
		Div(Class("container"),
			eyebrow("Aanpak"),
			H2(Class("section-title"), g.Text("Zo werken we samen.")),
			Div(Class("sticky-scroll"),
				g.Attr("data-sticky-scroll", ""),
				g.Attr("data-breakpoints", string(breakpoints)),
				g.Attr("data-gradients", string(gradients)),
				Ol(Class("sticky-steps"),
					g.Group(g.Map(indexed(steps), func(s indexedStep) g.Node {
						class := "sticky-step"
						if s.index == panel.Active() {
							class += " is-active"
						}
						return Li(Class(class), g.Attr("data-step", stepNumber(s.index)),
							Span(Class("step-number"), g.Text(stepNumber(s.index))),
							H3(Class("step-title"), g.Text(s.step.Step)),
							P(Class("step-content"), g.Text(s.step.Description)),
						)
					})),
				),
				Div(Class("sticky-panel"), Style("background: "+panel.Background()),
					g.Attr("aria-hidden", "true"),
					Span(Class("sticky-panel-number"), g.Text(stepNumber(panel.Active()))),
					Span(Class("sticky-panel-title"), g.Text(active.Step)),
				),
			),
		),
	)
	return node, []string{ScriptStickyScroll}
}

type indexedStep struct {
	index int
	step  catalog.ApproachStep
}

func indexed(steps []catalog.ApproachStep) []indexedStep {
	result := make([]indexedStep, len(steps))
	for i, step := range steps {
		result[i] = indexedStep{index: i, step: step}
	}
	return result
}

func renderScope(ctx *RenderContext, p Placement) (g.Node, []string) {
	category := ctx.Category
	if category == nil {
		return nil, nil
	}
	included := bulletList("check-list", category.Scope.Included)
	excluded := bulletList("dash-list", category.Scope.Excluded)
	if included == nil && excluded == nil {
		return nil, nil
	}

	node := Section(ID(anchorOr(p, "scope")), Class("scope band-light"),
		Div(Class("container"),
			eyebrow("Scope"),
			H2(Class("section-title"), g.Text("Wat is inbegrepen?")),
			Div(Class("scope-columns"),
				g.If(included != nil, Div(Class("scope-column"), Span(Class("detail-label"), g.Text("Wel inbegrepen")), included)),
				g.If(excluded != nil, Div(Class("scope-column muted"), Span(Class("detail-label"), g.Text("Niet inbegrepen")), excluded)),
			),
		),
	)
	return node, nil
}

func renderCategoryCTA(ctx *RenderContext, p Placement) (g.Node, []string) {
	category := ctx.Category
	if category == nil {
		return nil, nil
	}

	node := Section(ID(anchorOr(p, "interesse")), Class("category-cta band-light"),
		Div(Class("container centered"),
			eyebrow("Interesse?"),
			H2(Class("section-title"), g.Text("Ontdek wat "+category.Title+" voor uw bedrijf kan betekenen.")),
			ctaButton("/#contact", "Neem contact op"),
		),
	)
	return node, nil
}
