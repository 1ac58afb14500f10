package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"aivanta-site/internal/contact"
)

const (
	contactSubmitLabel  = "Verstuur bericht"
	contactSendingLabel = "Verzenden…"
)

// RegisterContact registers the contact intake section.
func RegisterContact(reg *Registry) {
	if reg == nil {
		return
	}
	reg.RegisterWithMetadata(&SectionDescriptor{
		Renderer: renderContact,
		Metadata: SectionMetadata{
			Type:        "contact",
			Name:        "Intake",
			Description: "Contact form relayed by e-mail, with confirmation and fallback address.",
			Page:        "home",
			Scripts:     []string{ScriptContactForm},
		},
	})
}

func renderContact(ctx *RenderContext, p Placement) (g.Node, []string) {
	anchor := anchorOr(p, "contact")
	view := ctx.Contact

	var body g.Node
	if view.Status == contact.StatusSent {
		body = contactConfirmation(ctx)
	} else {
		body = contactForm(ctx, anchor, view)
	}

	node := Section(ID(anchor), Class("contact band-dark"), Style("background: "+DarkBackground),
		Div(Class("container narrow"),
			Div(Class("section-header"),
				eyebrow("Intake"),
				H2(Class("section-title display"),
					g.Text("Begin er gewoon "),
					Span(Class("accent"), g.Text("aan.")),
				),
				P(Class("section-lead"),
					g.Text("Vul het intakeformulier in en vertel ons waar u tegenaan loopt of wat u wilt automatiseren. Ook als u nog geen concreet plan heeft, kunnen we samen de mogelijkheden verkennen."),
				),
			),
			body,
		),
	)
	return node, []string{ScriptContactForm}
}

func contactConfirmation(ctx *RenderContext) g.Node {
	return Div(Class("contact-sent"), g.Attr("role", "status"),
		icon("lucide:check", "contact-sent-icon"),
		P(Class("contact-sent-title"), g.Text("Uw bericht is verzonden.")),
		P(Class("contact-sent-text"), g.Text("Ik neem zo snel mogelijk contact met u op, doorgaans binnen één werkdag.")),
		P(Class("contact-sent-meta"), g.Text(ctx.siteName()+" · "+ctx.contactEmail())),
	)
}

func contactForm(ctx *RenderContext, anchor string, view ContactView) g.Node {
	values := view.Values

	return g.El("form", Class("contact-form"),
		g.Attr("method", "post"),
		g.Attr("action", "/contact#"+anchor),
		g.Attr("data-contact-form", ""),
		g.Attr("data-endpoint", "/api/v1/contact"),
		g.Attr("data-sending-label", contactSendingLabel),
		g.Attr("data-fallback-email", ctx.contactEmail()),
		Input(Type("hidden"), Name("token"), Value(view.Token)),
		Div(Class("form-row"),
			contactField(view, "naam", "Naam *", Input(Type("text"), Name("naam"), ID("contact-naam"),
				g.Attr("placeholder", "Jan Janssen"), g.Attr("required", ""), g.Attr("autocomplete", "name"), Value(values.Naam))),
			contactField(view, "bedrijf", "Bedrijf", Input(Type("text"), Name("bedrijf"), ID("contact-bedrijf"),
				g.Attr("placeholder", "Naam van uw bedrijf"), g.Attr("autocomplete", "organization"), Value(values.Bedrijf))),
		),
		contactField(view, "email", "E-mail *", Input(Type("email"), Name("email"), ID("contact-email"),
			g.Attr("placeholder", "jan@bedrijf.be"), g.Attr("required", ""), g.Attr("autocomplete", "email"), Value(values.Email))),
		contactField(view, "bericht", "Bericht *", Textarea(Name("bericht"), ID("contact-bericht"), g.Attr("rows", "5"),
			g.Attr("placeholder", "Vertel kort wat u bezighoudt, of wat u wilt automatiseren."), g.Attr("required", ""),
			g.Text(values.Bericht))),
		Div(Class("form-actions"),
			Button(Type("submit"), Class("btn btn-primary"),
				g.If(view.Status == contact.StatusSending, g.Attr("disabled", "")),
				Span(Class("btn-label"), g.Text(submitLabel(view.Status))),
			),
			P(Class("form-note"), g.Text("Uw gegevens worden enkel gebruikt om u te contacteren, nooit voor reclame of mailinglijsten.")),
		),
		g.If(view.Status == contact.StatusError, contactError(ctx)),
	)
}

func submitLabel(status contact.Status) string {
	if status == contact.StatusSending {
		return contactSendingLabel
	}
	return contactSubmitLabel
}

func contactField(view ContactView, name, label string, control g.Node) g.Node {
	message, invalid := view.Errors[name]
	return Div(Class("form-field"),
		Label(For("contact-"+name), g.Text(label)),
		control,
		g.If(invalid, P(Class("field-error"), g.Text(fieldErrorText(name, message)))),
	)
}

func fieldErrorText(name, tag string) string {
	switch {
	case tag == "email":
		return "Vul een geldig e-mailadres in."
	case tag == "max":
		return "Dit veld is te lang."
	case name == "naam":
		return "Vul uw naam in."
	case name == "email":
		return "Vul uw e-mailadres in."
	case name == "bericht":
		return "Vul een bericht in."
	default:
		return "Controleer dit veld."
	}
}

func contactError(ctx *RenderContext) g.Node {
	email := ctx.contactEmail()
	return P(Class("form-error"), g.Attr("role", "alert"),
		g.Text("Er ging iets mis. Mail ons direct op "),
		A(Href("mailto:"+email), g.Text(email)),
	)
}
