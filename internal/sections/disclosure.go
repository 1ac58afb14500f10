package sections

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"aivanta-site/internal/widgets"
)

// accordionFromQuery restores a disclosure list from the page query. A
// missing parameter falls back to defaultOpen; an empty one closes all.
func accordionFromQuery(ctx *RenderContext, param string, ids []string, defaultOpen string) *widgets.Accordion {
	open, present := ctx.param(param)
	if !present {
		open = defaultOpen
	}

	var opts []widgets.AccordionOption
	if open != "" {
		opts = append(opts, widgets.WithInitiallyOpen(open))
	}
	return widgets.NewAccordion(ids, opts...)
}

type disclosureItem struct {
	id     string
	header g.Node
	body   g.Node
}

// disclosureList renders a single-open list whose headers link to the state
// toggling them would produce.
func disclosureList(ctx *RenderContext, acc *widgets.Accordion, param, anchor, class string, items []disclosureItem) g.Node {
	return Div(Class("accordion "+class),
		g.Attr("data-accordion", param),
		g.Attr("data-accordion-open", acc.Open()),
		g.Group(g.Map(items, func(item disclosureItem) g.Node {
			open := acc.IsOpen(item.id)
			panelID := param + "-" + item.id
			itemClass := "accordion-item"
			if open {
				itemClass += " is-open"
			}
			return Div(Class(itemClass),
				g.Attr("data-accordion-id", item.id),
				g.Attr("data-presence", acc.Presence(item.id).String()),
				A(Class("accordion-trigger"),
					Href(ctx.LinkWith(param, acc.Next(item.id), anchor)),
					g.Attr("aria-expanded", strconv.FormatBool(open)),
					g.Attr("aria-controls", panelID),
					item.header,
					icon("lucide:plus", "accordion-toggle"),
				),
				Div(Class("accordion-panel"), ID(panelID),
					g.If(!open, g.Attr("hidden", "")),
					item.body,
				),
			)
		})),
	)
}
