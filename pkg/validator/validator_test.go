package validator

import "testing"

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Janssens & Co", want: "Janssens & Co"},
		{in: "<b>Els</b>", want: "Els"},
		{in: `<script>alert("x")</script>Hallo`, want: "Hallo"},
		{in: "1 < 2", want: "1 < 2"},
	}

	for _, tt := range tests {
		if got := SanitizeString(tt.in); got != tt.want {
			t.Fatalf("SanitizeString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSpacesKeepsLineBreaks(t *testing.T) {
	got := NormalizeSpaces("Els \t  Janssens\nregel twee")
	if got != "Els Janssens\nregel twee" {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestValidateSlug(t *testing.T) {
	for _, slug := range []string{"leadgeneratie", "onboarding-backoffice", "a1"} {
		if !ValidateSlug(slug) {
			t.Fatalf("expected %q to be valid", slug)
		}
	}
	for _, slug := range []string{"", "Lead", "met spatie", "a_b"} {
		if ValidateSlug(slug) {
			t.Fatalf("expected %q to be invalid", slug)
		}
	}
}

func TestFieldErrors(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
		Slug  string `validate:"slug"`
	}

	fields := FieldErrors(Validate(form{Slug: "Niet Geldig"}))
	if fields["email"] != "required" || fields["slug"] != "slug" {
		t.Fatalf("unexpected field errors %v", fields)
	}

	if FieldErrors(nil) != nil {
		t.Fatalf("expected nil for a nil error")
	}
}

func TestHasMarkup(t *testing.T) {
	for _, s := range []string{"Leadgeneratie & Outreach", "KMO's", `"Quote"`, "1 < 2"} {
		if HasMarkup(s) {
			t.Fatalf("expected %q to be plain text", s)
		}
	}
	for _, s := range []string{"<b>vet</b>", "<piet@x.nl>", `<img src=x>`} {
		if !HasMarkup(s) {
			t.Fatalf("expected %q to carry markup", s)
		}
	}
}
