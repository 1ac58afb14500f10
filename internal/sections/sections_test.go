package sections

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"aivanta-site/internal/catalog"
	"aivanta-site/internal/contact"
	"aivanta-site/internal/widgets"
)

func newContext(path string, query url.Values) *RenderContext {
	return &RenderContext{
		Catalog:      catalog.Default(),
		Path:         path,
		Query:        query,
		SiteName:     "Aivanta",
		ContactEmail: "hallo@aivanta.be",
		Lock:         &widgets.ScrollLock{},
	}
}

func render(t *testing.T, ctx *RenderContext, sectionType string) (*goquery.Document, []string) {
	t.Helper()

	renderer, ok := DefaultRegistry().Get(sectionType)
	require.True(t, ok, "section %q is not registered", sectionType)

	node, scripts := renderer(ctx, Placement{Type: sectionType})
	var b strings.Builder
	if node != nil {
		require.NoError(t, node.Render(&b))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err)
	return doc, scripts
}

func TestRegistryRegisterValidation(t *testing.T) {
	reg := NewRegistry()
	noop := func(*RenderContext, Placement) (g.Node, []string) { return nil, nil }

	assert.Error(t, reg.Register("  ", noop))
	assert.Error(t, reg.Register("hero", nil))
	require.NoError(t, reg.Register(" Hero ", noop))

	_, ok := reg.Get("HERO")
	assert.True(t, ok)

	var nilRegistry *Registry
	assert.Error(t, nilRegistry.Register("hero", noop))
	_, ok = nilRegistry.Get("hero")
	assert.False(t, ok)
}

func TestRegistryCloneIsIndependent(t *testing.T) {
	reg := DefaultRegistry()
	cloned := reg.Clone()
	cloned.MustRegister("extra", func(*RenderContext, Placement) (g.Node, []string) { return nil, nil })

	_, ok := reg.Get("extra")
	assert.False(t, ok)
	_, ok = cloned.Get("extra")
	assert.True(t, ok)
}

func TestDefaultRegistryMetadata(t *testing.T) {
	list := DefaultRegistry().ListMetadata()

	types := make([]string, 0, len(list))
	for _, meta := range list {
		types = append(types, meta.Type)
	}
	assert.ElementsMatch(t, []string{
		"hero", "quote", "services_tiles", "services_list", "process", "usecases", "tools", "faq", "contact",
		"category_hero", "subservices", "approach", "scope", "category_cta",
		"about_hero", "about_body", "not_found",
	}, types)
	assert.IsIncreasing(t, types)

	meta, ok := DefaultRegistry().GetMetadata("approach")
	require.True(t, ok)
	assert.Equal(t, []string{ScriptStickyScroll}, meta.Scripts)
}

func TestLinkWithKeepsOtherParams(t *testing.T) {
	ctx := newContext("/diensten/leadgeneratie", url.Values{"dienst": {"a"}, "utm_source": {"x"}})

	assert.Equal(t, "/diensten/leadgeneratie?dienst=b&utm_source=x#toepassingen", ctx.LinkWith("dienst", "b", "toepassingen"))
	assert.Equal(t, "/diensten/leadgeneratie?utm_source=x", ctx.LinkWithout("dienst", ""))
	assert.Equal(t, []string{"a"}, ctx.Query["dienst"], "links must not mutate the request query")
}

func TestProcessFirstStepOpenByDefault(t *testing.T) {
	doc, scripts := render(t, newContext("/", nil), "process")

	assert.Equal(t, 1, doc.Find("section#werkwijze").Length())
	assert.ElementsMatch(t, []string{ScriptAccordion, ScriptTimeline}, scripts)

	open := doc.Find(".accordion-item.is-open")
	require.Equal(t, 1, open.Length())
	id, _ := open.Attr("data-accordion-id")
	assert.Equal(t, "gesprek", id)

	href, _ := open.Find(".accordion-trigger").Attr("href")
	assert.Equal(t, "/?stap=#werkwijze", href, "the open step links to the closed state")

	other := doc.Find(`.accordion-item[data-accordion-id="analyse"] .accordion-trigger`)
	href, _ = other.Attr("href")
	assert.Equal(t, "/?stap=analyse#werkwijze", href)

	_, hidden := doc.Find(`.accordion-item[data-accordion-id="analyse"] .accordion-panel`).Attr("hidden")
	assert.True(t, hidden)
}

func TestProcessOpenStepFromQuery(t *testing.T) {
	doc, _ := render(t, newContext("/", url.Values{"stap": {"bouwen"}}), "process")

	open := doc.Find(".accordion-item.is-open")
	require.Equal(t, 1, open.Length())
	id, _ := open.Attr("data-accordion-id")
	assert.Equal(t, "bouwen", id)

	doc, _ = render(t, newContext("/", url.Values{"stap": {""}}), "process")
	assert.Equal(t, 0, doc.Find(".accordion-item.is-open").Length())

	doc, _ = render(t, newContext("/", url.Values{"stap": {"bestaat-niet"}}), "process")
	assert.Equal(t, 0, doc.Find(".accordion-item.is-open").Length())
}

func TestFAQClosedByDefault(t *testing.T) {
	doc, _ := render(t, newContext("/", nil), "faq")
	assert.Equal(t, 6, doc.Find(".accordion-item").Length())
	assert.Equal(t, 0, doc.Find(".accordion-item.is-open").Length())

	doc, _ = render(t, newContext("/", url.Values{"vraag": {"2"}}), "faq")
	open := doc.Find(".accordion-item.is-open")
	require.Equal(t, 1, open.Length())
	assert.Equal(t, catalog.Default().FAQ()[1].Question, strings.TrimSpace(open.Find(".faq-question").Text()))
}

func TestServiceTilesLinkToCategories(t *testing.T) {
	doc, _ := render(t, newContext("/", nil), "services_tiles")

	tiles := doc.Find("a.tile")
	assert.Equal(t, 5, tiles.Length())
	href, _ := tiles.First().Attr("href")
	assert.Equal(t, "/diensten/"+catalog.Default().Categories()[0].Slug, href)
	assert.Contains(t, doc.Text(), "Geen van deze toepassingen vereist technische kennis van uw kant.")
}

func TestUseCasesModalClosedByDefault(t *testing.T) {
	ctx := newContext("/", nil)
	doc, _ := render(t, ctx, "usecases")

	assert.Equal(t, len(catalog.Default().UseCases()), doc.Find("a.usecase-card").Length())
	assert.Equal(t, 0, doc.Find(".modal").Length())
	assert.False(t, ctx.ScrollLocked())

	_, disabled := doc.Find("[data-carousel-prev]").Attr("disabled")
	assert.True(t, disabled, "cannot scroll back from the start")
	_, disabled = doc.Find("[data-carousel-next]").Attr("disabled")
	assert.False(t, disabled)
}

func TestUseCasesModalFromQuery(t *testing.T) {
	ctx := newContext("/", url.Values{"toepassing": {"facturen-verwerken"}})
	doc, _ := render(t, ctx, "usecases")

	modal := doc.Find(".modal")
	require.Equal(t, 1, modal.Length())
	assert.Contains(t, modal.Find(".modal-title").Text(), "acturen")
	assert.True(t, ctx.ScrollLocked())

	modal.Find("[data-close]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		assert.Equal(t, "/#toepassingen", href)
	})

	ctx = newContext("/", url.Values{"toepassing": {"onbekend"}})
	doc, _ = render(t, ctx, "usecases")
	assert.Equal(t, 0, doc.Find(".modal").Length())
	assert.False(t, ctx.ScrollLocked())
}

func TestMalformedUseCaseRendersPlaceholder(t *testing.T) {
	ctx := newContext("/", url.Values{"toepassing": {"zonder-samenvatting"}})
	ctx.Catalog = catalog.New(catalog.Content{
		UseCases: []catalog.UseCase{
			{ID: "goed", Title: "Goed", Summary: "Volledig"},
			{ID: "zonder-samenvatting", Title: "Half"},
		},
	})

	doc, _ := render(t, ctx, "usecases")
	assert.Equal(t, 1, doc.Find("a.usecase-card").Length())
	assert.Equal(t, 1, doc.Find(".usecase-placeholder").Length())
	assert.Equal(t, 0, doc.Find(".modal").Length())
}

func TestContactFormStates(t *testing.T) {
	ctx := newContext("/", nil)
	ctx.Contact = ContactView{Token: "tok-1", Status: contact.StatusIdle}

	doc, scripts := render(t, ctx, "contact")
	assert.Equal(t, []string{ScriptContactForm}, scripts)
	token, _ := doc.Find(`input[name="token"]`).Attr("value")
	assert.Equal(t, "tok-1", token)
	_, required := doc.Find(`input[name="naam"]`).Attr("required")
	assert.True(t, required)
	_, required = doc.Find(`input[name="bedrijf"]`).Attr("required")
	assert.False(t, required)
	assert.Equal(t, 0, doc.Find(".form-error").Length())

	ctx.Contact.Status = contact.StatusError
	ctx.Contact.Values = contact.Submission{Naam: "Jan", Email: "jan@bedrijf.be", Bericht: "Hallo"}
	doc, _ = render(t, ctx, "contact")
	mailto, _ := doc.Find(".form-error a").Attr("href")
	assert.Equal(t, "mailto:hallo@aivanta.be", mailto)
	naam, _ := doc.Find(`input[name="naam"]`).Attr("value")
	assert.Equal(t, "Jan", naam, "the form stays filled in after an error")

	ctx.Contact.Status = contact.StatusSent
	doc, _ = render(t, ctx, "contact")
	assert.Equal(t, 0, doc.Find("form").Length())
	assert.Contains(t, doc.Find(".contact-sent").Text(), "Uw bericht is verzonden.")
}

func TestContactFieldErrors(t *testing.T) {
	ctx := newContext("/", nil)
	ctx.Contact = ContactView{Errors: map[string]string{"email": "email", "naam": "required"}}

	doc, _ := render(t, ctx, "contact")
	assert.Equal(t, 2, doc.Find(".field-error").Length())
	assert.Contains(t, doc.Text(), "Vul een geldig e-mailadres in.")
}

func TestCategorySections(t *testing.T) {
	category, err := catalog.Default().FindCategory("leadgeneratie")
	require.NoError(t, err)

	ctx := newContext("/diensten/leadgeneratie", nil)
	ctx.Category = &category

	doc, _ := render(t, ctx, "category_hero")
	assert.Equal(t, category.Title, strings.TrimSpace(doc.Find("h1").Text()))
	assert.Contains(t, doc.Text(), "Terug naar overzicht")

	doc, _ = render(t, ctx, "subservices")
	items := doc.Find(".accordion-item")
	assert.Equal(t, len(category.SubServices), items.Length())
	assert.Equal(t, "01", strings.TrimSpace(items.First().Find(".step-number").Text()))
	assert.Equal(t, 0, doc.Find(".accordion-item.is-open").Length())

	doc, _ = render(t, ctx, "approach")
	raw, ok := doc.Find("[data-sticky-scroll]").Attr("data-breakpoints")
	require.True(t, ok)
	var breakpoints []float64
	require.NoError(t, json.Unmarshal([]byte(raw), &breakpoints))
	assert.Equal(t, widgets.Breakpoints(len(category.ApproachSteps)), breakpoints)
	assert.Equal(t, 1, doc.Find(".sticky-step.is-active").Length())

	doc, _ = render(t, ctx, "category_cta")
	href, _ := doc.Find("a.btn").Attr("href")
	assert.Equal(t, "/#contact", href)
}

func TestSubServiceOpenFromQuery(t *testing.T) {
	category, err := catalog.Default().FindCategory("leadgeneratie")
	require.NoError(t, err)
	second := category.SubServices[1]

	ctx := newContext("/diensten/leadgeneratie", url.Values{"dienst": {second.ID}})
	ctx.Category = &category

	doc, _ := render(t, ctx, "subservices")
	open := doc.Find(".accordion-item.is-open")
	require.Equal(t, 1, open.Length())
	assert.Contains(t, open.Text(), "Voor wie")
}

func TestCategorySectionsWithoutCategory(t *testing.T) {
	for _, sectionType := range []string{"category_hero", "subservices", "approach", "scope", "category_cta"} {
		renderer, ok := DefaultRegistry().Get(sectionType)
		require.True(t, ok)
		node, _ := renderer(newContext("/", nil), Placement{Type: sectionType})
		assert.Nil(t, node, sectionType)
	}
}

func TestIconNameFallback(t *testing.T) {
	assert.Equal(t, "lucide:mail", IconName(catalog.IconMail))
	assert.Equal(t, fallbackIcon, IconName(catalog.Icon("onbekend")))
}
