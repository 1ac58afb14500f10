package catalog

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("expected compiled-in catalog to validate, got: %v", err)
	}
}

func TestDefaultCatalogKeysAreUnique(t *testing.T) {
	slugs := make(map[string]struct{})
	for _, category := range Default().Categories() {
		if _, dup := slugs[category.Slug]; dup {
			t.Fatalf("duplicate category slug %q", category.Slug)
		}
		slugs[category.Slug] = struct{}{}

		ids := make(map[string]struct{})
		for _, sub := range category.SubServices {
			if _, dup := ids[sub.ID]; dup {
				t.Fatalf("duplicate sub-service id %q in %q", sub.ID, category.Slug)
			}
			ids[sub.ID] = struct{}{}
		}
	}

	if len(slugs) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(slugs))
	}
}

func TestFindCategoryReturnsEveryCategory(t *testing.T) {
	c := Default()
	for _, category := range c.Categories() {
		found, err := c.FindCategory(category.Slug)
		if err != nil {
			t.Fatalf("FindCategory(%q) returned error: %v", category.Slug, err)
		}
		if found.Slug != category.Slug || found.Title != category.Title {
			t.Fatalf("FindCategory(%q) returned %q", category.Slug, found.Slug)
		}
	}
}

func TestFindCategoryUnknownSlug(t *testing.T) {
	_, err := Default().FindCategory("bestaat-niet")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindSubService(t *testing.T) {
	c := Default()

	sub, err := c.FindSubService("leadgeneratie", "ai-leadkwalificatie-scoring")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.ID != "ai-leadkwalificatie-scoring" {
		t.Fatalf("unexpected sub-service %q", sub.ID)
	}

	if _, err := c.FindSubService("leadgeneratie", "onbekend"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
	if _, err := c.FindSubService("onbekend", "ai-leadkwalificatie-scoring"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown category, got %v", err)
	}
}

func TestFindUseCasesPreservesOrderAndDropsUnknown(t *testing.T) {
	c := New(Content{
		UseCases: []UseCase{
			{ID: "a", Title: "A"},
			{ID: "b", Title: "B"},
			{ID: "c", Title: "C"},
		},
	})

	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{name: "reversed", ids: []string{"c", "a"}, want: []string{"c", "a"}},
		{name: "unknown dropped", ids: []string{"b", "zz", "a"}, want: []string{"b", "a"}},
		{name: "repeated kept", ids: []string{"a", "a"}, want: []string{"a", "a"}},
		{name: "empty", ids: nil, want: []string{}},
		{name: "all unknown", ids: []string{"x", "y"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.FindUseCases(tt.ids)
			ids := make([]string, 0, len(got))
			for _, uc := range got {
				ids = append(ids, uc.ID)
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Fatalf("FindUseCases(%v) = %v, want %v", tt.ids, ids, tt.want)
			}
		})
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()

	category, err := c.FindCategory("leadgeneratie")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	original := category.SubServices[0].Title
	category.SubServices[0].Title = "gewijzigd"
	category.HeroResults[0] = "gewijzigd"

	again, _ := c.FindCategory("leadgeneratie")
	if again.SubServices[0].Title != original {
		t.Fatalf("mutating a returned category leaked into the catalog")
	}
	if again.HeroResults[0] == "gewijzigd" {
		t.Fatalf("mutating returned hero results leaked into the catalog")
	}

	faq := c.FAQ()
	faq[0].Question = "gewijzigd"
	if c.FAQ()[0].Question == "gewijzigd" {
		t.Fatalf("mutating returned FAQ leaked into the catalog")
	}
}

func TestTwoCategoryCatalog(t *testing.T) {
	c := New(Content{
		Categories: []ServiceCategory{
			{Slug: "a", Title: "A", SubServices: []SubService{{ID: "x", Title: "X"}, {ID: "y", Title: "Y"}}},
			{Slug: "b", Title: "B", SubServices: []SubService{}},
		},
	})

	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	a, err := c.FindCategory("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.SubServices) != 2 || a.SubServices[0].ID != "x" || a.SubServices[1].ID != "y" {
		t.Fatalf("unexpected sub-services for a: %+v", a.SubServices)
	}

	if _, err := c.FindCategory("c"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for c, got %v", err)
	}

	b, err := c.FindCategory("b")
	if err != nil || len(b.SubServices) != 0 {
		t.Fatalf("expected b without sub-services, got %+v, %v", b, err)
	}
}

func TestSubServiceIDsAreScopedToCategory(t *testing.T) {
	c := New(Content{
		Categories: []ServiceCategory{
			{Slug: "a", Title: "A", SubServices: []SubService{{ID: "x", Title: "X"}}},
			{Slug: "b", Title: "B", SubServices: []SubService{{ID: "x", Title: "X in B"}}},
		},
	})

	if err := c.Validate(); err != nil {
		t.Fatalf("sub-service ids only need to be unique per category: %v", err)
	}

	sub, err := c.FindSubService("b", "x")
	if err != nil || sub.Title != "X in B" {
		t.Fatalf("expected b/x to resolve within b, got %+v, %v", sub, err)
	}
}

func TestValidateReportsDuplicates(t *testing.T) {
	c := New(Content{
		Categories: []ServiceCategory{
			{Slug: "a", Title: "first"},
			{Slug: "a", Title: "second"},
			{Slug: "b", Title: "B", SubServices: []SubService{{ID: "x", Title: "X"}, {ID: "x", Title: "X2"}}},
		},
		UseCases: []UseCase{
			{ID: "u", Category: "a"},
			{ID: "u", Category: "zz"},
		},
	})

	err := c.Validate()
	if err == nil {
		t.Fatalf("expected validation errors")
	}

	msg := err.Error()
	for _, want := range []string{`duplicate slug "a"`, `duplicate id "x" in "b"`, `duplicate id "u"`, `unknown category "zz"`} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in validation error:\n%s", want, msg)
		}
	}

	first, _ := c.FindCategory("a")
	if first.Title != "first" {
		t.Fatalf("expected first occurrence to win, got %q", first.Title)
	}
}

func TestUseCasesForCategory(t *testing.T) {
	got := Default().UseCasesFor("onboarding-backoffice")
	if len(got) < 1 {
		t.Fatalf("expected use cases for onboarding-backoffice")
	}
	for _, uc := range got {
		if uc.Category != "onboarding-backoffice" {
			t.Fatalf("unexpected category %q", uc.Category)
		}
	}
}

func TestStats(t *testing.T) {
	stats := Default().Stats()
	if stats.Categories != 5 || stats.SubServices != 20 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.FAQ != 6 || stats.ProcessSteps != 4 || stats.Tools != 30 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestValidateRejectsMalformedSlug(t *testing.T) {
	c := New(Content{
		Categories: []ServiceCategory{{Slug: "Met Spaties", Title: "A"}},
	})

	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), `invalid slug "Met Spaties"`) {
		t.Fatalf("expected invalid slug error, got %v", err)
	}
}

func TestValidateRejectsMarkup(t *testing.T) {
	c := New(Content{
		Categories: []ServiceCategory{{Slug: "a", Title: "A", Tagline: "<em>snel</em>"}},
		FAQ:        []FaqItem{{Question: "Kost het veel?", Answer: "Minder dan 5 uur & < 1 dag"}},
	})

	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), `markup in "<em>snel</em>"`) {
		t.Fatalf("expected markup error, got %v", err)
	}
	if strings.Contains(err.Error(), "faq[0]") {
		t.Fatalf("plain text with < and & must pass, got %v", err)
	}
}
