package contact

import (
	"strings"

	"aivanta-site/pkg/validator"
)

// Submission is what a visitor fills in on the intake form.
type Submission struct {
	Naam    string `json:"naam" form:"naam" binding:"required,max=200" validate:"required,max=200"`
	Bedrijf string `json:"bedrijf" form:"bedrijf" binding:"max=200" validate:"max=200"`
	Email   string `json:"email" form:"email" binding:"required,email,max=254" validate:"required,email,max=254"`
	Bericht string `json:"bericht" form:"bericht" binding:"required,max=5000" validate:"required,max=5000"`
	Token   string `json:"token,omitempty" form:"token"`
}

// Normalized returns a copy with surrounding whitespace trimmed and runs of
// spaces collapsed in the one-line fields. The text itself is kept as typed.
func (s Submission) Normalized() Submission {
	line := func(v string) string {
		return strings.TrimSpace(validator.NormalizeSpaces(v))
	}
	return Submission{
		Naam:    line(s.Naam),
		Bedrijf: line(s.Bedrijf),
		Email:   strings.TrimSpace(s.Email),
		Bericht: strings.TrimSpace(s.Bericht),
		Token:   strings.TrimSpace(s.Token),
	}
}

// Subject is the mail subject the relay forwards.
func Subject(siteName, naam string) string {
	return "Nieuwe intake via " + siteName + " — " + naam
}

// Payload is the JSON body posted to the form relay.
type Payload struct {
	Naam    string `json:"naam"`
	Email   string `json:"email"`
	Bedrijf string `json:"bedrijf"`
	Bericht string `json:"bericht"`
	Subject string `json:"_subject"`
	Captcha string `json:"_captcha"`
}

func NewPayload(siteName string, s Submission) Payload {
	return Payload{
		Naam:    s.Naam,
		Email:   s.Email,
		Bedrijf: s.Bedrijf,
		Bericht: s.Bericht,
		Subject: Subject(siteName, s.Naam),
		Captcha: "false",
	}
}
