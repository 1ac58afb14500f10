package sections

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"aivanta-site/internal/catalog"
)

// DarkBackground is the fill of the dark page bands.
const DarkBackground = "linear-gradient(135deg, #1e2b24 0%, #1A1A1A 100%)"

const fallbackIcon = "lucide:sparkles"

var lucideIcons = map[catalog.Icon]string{
	catalog.IconUserPlus:      "lucide:user-plus",
	catalog.IconSparkles:      "lucide:sparkles",
	catalog.IconMessageSquare: "lucide:message-square",
	catalog.IconFileText:      "lucide:file-text",
	catalog.IconWorkflow:      "lucide:workflow",
	catalog.IconMail:          "lucide:mail",
	catalog.IconCalendar:      "lucide:calendar",
	catalog.IconClipboard:     "lucide:clipboard-list",
	catalog.IconPhone:         "lucide:phone",
}

// IconName maps a catalog icon to its iconify name. Unknown icons fall back
// to a neutral glyph.
func IconName(icon catalog.Icon) string {
	if name, ok := lucideIcons[icon]; ok {
		return name
	}
	return fallbackIcon
}

func icon(name, class string) g.Node {
	return Span(
		Class(strings.TrimSpace("iconify "+class)),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

func eyebrow(text string) g.Node {
	return Span(Class("eyebrow"), g.Text(text))
}

func sectionHeading(label, title, accent string) g.Node {
	return Div(Class("section-header"),
		eyebrow(label),
		H2(Class("section-title"),
			g.Text(title+" "),
			Span(Class("accent"), g.Text(accent)),
		),
	)
}

func anchorOr(p Placement, fallback string) string {
	if anchor := strings.TrimSpace(p.Anchor); anchor != "" {
		return anchor
	}
	return fallback
}

func stepNumber(i int) string {
	return fmt.Sprintf("%02d", i+1)
}

func nonEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			result = append(result, v)
		}
	}
	return result
}

func bulletList(class string, items []string) g.Node {
	items = nonEmpty(items)
	if len(items) == 0 {
		return nil
	}
	return Ul(Class(class),
		g.Group(g.Map(items, func(item string) g.Node {
			return Li(g.Text(item))
		})),
	)
}

func ctaButton(href, label string) g.Node {
	return A(Class("btn btn-primary"), Href(href),
		Span(Class("btn-label"), g.Text(label), icon("lucide:arrow-right", "btn-icon")),
	)
}

// Client scripts enhancing the server-rendered widgets.
const (
	ScriptAccordion    = "/static/js/accordion.js"
	ScriptHoverList    = "/static/js/hover-list.js"
	ScriptStickyScroll = "/static/js/sticky-scroll.js"
	ScriptTimeline     = "/static/js/timeline.js"
	ScriptCarousel     = "/static/js/carousel.js"
	ScriptContactForm  = "/static/js/contact-form.js"
)
