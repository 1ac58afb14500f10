package sections

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"aivanta-site/internal/catalog"
	"aivanta-site/internal/widgets"
)

// RegisterFeatures registers the "werkwijze" process accordion.
func RegisterFeatures(reg *Registry) {
	if reg == nil {
		return
	}
	reg.RegisterWithMetadata(&SectionDescriptor{
		Renderer: renderProcess,
		Metadata: SectionMetadata{
			Type:        "process",
			Name:        "Werkwijze",
			Description: "Process steps as a single-open accordion along a scroll timeline.",
			Page:        "home",
			Scripts:     []string{ScriptAccordion, ScriptTimeline},
		},
	})
}

func renderProcess(ctx *RenderContext, p Placement) (g.Node, []string) {
	steps := ctx.Catalog.ProcessSteps()
	anchor := anchorOr(p, "werkwijze")

	ids := make([]string, 0, len(steps))
	for _, step := range steps {
		ids = append(ids, step.ID)
	}
	defaultOpen := ""
	if len(ids) > 0 {
		defaultOpen = ids[0]
	}
	acc := accordionFromQuery(ctx, ParamProcessStep, ids, defaultOpen)

	items := make([]disclosureItem, 0, len(steps))
	for _, step := range steps {
		items = append(items, processItem(step))
	}

	node := Section(ID(anchor), Class("process band-light"),
		Div(Class("container"),
			Div(Class("section-header"),
				eyebrow("Geen technische kennis nodig"),
				H2(Class("section-title"),
					g.Text("Zo simpel "),
					Span(Class("accent"), g.Text("werkt het.")),
				),
				P(Class("section-lead"),
					g.Text("U vertelt hoe uw bedrijf werkt. Aivanta doet de rest: van analyse tot bouw, lancering en doorlopend onderhoud. U heeft er geen omkijken naar."),
				),
			),
			Div(Class("timeline"),
				g.Attr("data-timeline", ""),
				g.Attr("data-timeline-fade", strconv.FormatFloat(widgets.TimelineFadeIn, 'f', -1, 64)),
				Div(Class("timeline-track"), Div(Class("timeline-fill"))),
				disclosureList(ctx, acc, ParamProcessStep, anchor, "process-steps", items),
			),
		),
	)
	return node, []string{ScriptAccordion, ScriptTimeline}
}

func processItem(step catalog.ProcessStep) disclosureItem {
	title := step.Title
	if title == "" {
		title = "Stap " + step.Number
	}
	return disclosureItem{
		id: step.ID,
		header: g.Group([]g.Node{
			Span(Class("step-number"), g.Text(step.Number)),
			Span(Class("step-title"), g.Text(title)),
		}),
		body: P(Class("step-content"), g.Text(step.Content)),
	}
}
