package sections

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// RegisterFAQ registers the frequently asked questions accordion.
func RegisterFAQ(reg *Registry) {
	if reg == nil {
		return
	}
	reg.RegisterWithMetadata(&SectionDescriptor{
		Renderer: renderFAQ,
		Metadata: SectionMetadata{
			Type:        "faq",
			Name:        "FAQ",
			Description: "Questions and answers, all closed initially.",
			Page:        "home",
			Scripts:     []string{ScriptAccordion},
		},
	})
}

func renderFAQ(ctx *RenderContext, p Placement) (g.Node, []string) {
	anchor := anchorOr(p, "faq")

	var items []disclosureItem
	var ids []string
	for i, item := range ctx.Catalog.FAQ() {
		if strings.TrimSpace(item.Question) == "" {
			continue
		}
		id := strconv.Itoa(i + 1)
		ids = append(ids, id)
		items = append(items, disclosureItem{
			id:     id,
			header: Span(Class("faq-question"), g.Text(item.Question)),
			body:   P(Class("faq-answer"), g.Text(item.Answer)),
		})
	}
	acc := accordionFromQuery(ctx, ParamFAQ, ids, "")

	node := Section(ID(anchor), Class("faq band-light"),
		Div(Class("container narrow"),
			sectionHeading("Veelgestelde vragen", "Uw vragen,", "beantwoord."),
			disclosureList(ctx, acc, ParamFAQ, anchor, "faq-list", items),
		),
	)
	return node, []string{ScriptAccordion}
}
