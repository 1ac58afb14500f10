package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"aivanta-site/pkg/validator"
)

var ErrNotFound = errors.New("catalog: not found")

// Catalog is the immutable content set of the site. It is safe for concurrent
// use; accessors hand out copies so callers cannot mutate shared state.
type Catalog struct {
	categories []ServiceCategory
	useCases   []UseCase
	faq        []FaqItem
	steps      []ProcessStep
	tools      []Tool

	categoryIndex map[string]int
	useCaseIndex  map[string]int
	subIndex      map[string]map[string]int
}

// Content groups the raw collections a Catalog is built from.
type Content struct {
	Categories   []ServiceCategory `json:"categories" yaml:"categories"`
	UseCases     []UseCase         `json:"useCases" yaml:"use_cases"`
	FAQ          []FaqItem         `json:"faq" yaml:"faq"`
	ProcessSteps []ProcessStep     `json:"processSteps" yaml:"process_steps"`
	Tools        []Tool            `json:"tools" yaml:"tools"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the compiled-in site catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New(Content{
			Categories:   serviceCategories,
			UseCases:     useCases,
			FAQ:          faqItems,
			ProcessSteps: processSteps,
			Tools:        tools,
		})
	})
	return defaultCatalog
}

// New builds a catalog from content. Duplicate keys do not fail construction;
// the first occurrence wins and Validate reports the rest.
func New(content Content) *Catalog {
	c := &Catalog{
		categories:    make([]ServiceCategory, len(content.Categories)),
		useCases:      append([]UseCase(nil), content.UseCases...),
		faq:           append([]FaqItem(nil), content.FAQ...),
		steps:         append([]ProcessStep(nil), content.ProcessSteps...),
		tools:         append([]Tool(nil), content.Tools...),
		categoryIndex: make(map[string]int, len(content.Categories)),
		useCaseIndex:  make(map[string]int, len(content.UseCases)),
		subIndex:      make(map[string]map[string]int, len(content.Categories)),
	}

	for i, category := range content.Categories {
		c.categories[i] = category.clone()
		if _, exists := c.categoryIndex[category.Slug]; exists {
			continue
		}
		c.categoryIndex[category.Slug] = i

		subs := make(map[string]int, len(category.SubServices))
		for j, sub := range category.SubServices {
			if _, exists := subs[sub.ID]; !exists {
				subs[sub.ID] = j
			}
		}
		c.subIndex[category.Slug] = subs
	}

	for i, uc := range content.UseCases {
		if _, exists := c.useCaseIndex[uc.ID]; !exists {
			c.useCaseIndex[uc.ID] = i
		}
	}

	return c
}

func (c *Catalog) Categories() []ServiceCategory {
	out := make([]ServiceCategory, len(c.categories))
	for i, category := range c.categories {
		out[i] = category.clone()
	}
	return out
}

// FindCategory returns the category with the given slug or ErrNotFound.
func (c *Catalog) FindCategory(slug string) (ServiceCategory, error) {
	idx, ok := c.categoryIndex[slug]
	if !ok {
		return ServiceCategory{}, fmt.Errorf("category %q: %w", slug, ErrNotFound)
	}
	return c.categories[idx].clone(), nil
}

func (c *Catalog) FindSubService(categorySlug, id string) (SubService, error) {
	subs, ok := c.subIndex[categorySlug]
	if !ok {
		return SubService{}, fmt.Errorf("category %q: %w", categorySlug, ErrNotFound)
	}
	idx, ok := subs[id]
	if !ok {
		return SubService{}, fmt.Errorf("sub-service %q in %q: %w", id, categorySlug, ErrNotFound)
	}
	return c.categories[c.categoryIndex[categorySlug]].SubServices[idx].clone(), nil
}

func (c *Catalog) UseCases() []UseCase {
	return append([]UseCase(nil), c.useCases...)
}

func (c *Catalog) FindUseCase(id string) (UseCase, error) {
	idx, ok := c.useCaseIndex[id]
	if !ok {
		return UseCase{}, fmt.Errorf("use case %q: %w", id, ErrNotFound)
	}
	return c.useCases[idx], nil
}

// FindUseCases resolves ids in the order given. Unknown ids are skipped and
// repeated ids are returned as often as they appear.
func (c *Catalog) FindUseCases(ids []string) []UseCase {
	out := make([]UseCase, 0, len(ids))
	for _, id := range ids {
		if idx, ok := c.useCaseIndex[id]; ok {
			out = append(out, c.useCases[idx])
		}
	}
	return out
}

// UseCasesFor returns the use cases attached to a category, in catalog order.
func (c *Catalog) UseCasesFor(categorySlug string) []UseCase {
	var out []UseCase
	for _, uc := range c.useCases {
		if uc.Category == categorySlug {
			out = append(out, uc)
		}
	}
	return out
}

func (c *Catalog) FAQ() []FaqItem {
	return append([]FaqItem(nil), c.faq...)
}

func (c *Catalog) ProcessSteps() []ProcessStep {
	return append([]ProcessStep(nil), c.steps...)
}

func (c *Catalog) Tools() []Tool {
	return append([]Tool(nil), c.tools...)
}

// Validate reports every structural problem in the catalog at once.
func (c *Catalog) Validate() error {
	var errs []error

	seen := make(map[string]struct{}, len(c.categories))
	for i, category := range c.categories {
		where := fmt.Sprintf("categories[%d]", i)
		if strings.TrimSpace(category.Slug) == "" {
			errs = append(errs, fmt.Errorf("%s: empty slug", where))
		} else if !validator.ValidateSlug(category.Slug) {
			errs = append(errs, fmt.Errorf("%s: invalid slug %q", where, category.Slug))
		} else if _, dup := seen[category.Slug]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate slug %q", where, category.Slug))
		}
		seen[category.Slug] = struct{}{}

		if strings.TrimSpace(category.Title) == "" {
			errs = append(errs, fmt.Errorf("%s (%s): empty title", where, category.Slug))
		}
		errs = append(errs, markupErrors(where, category.Title, category.Tagline, category.Description, category.HeroProblem)...)

		subSeen := make(map[string]struct{}, len(category.SubServices))
		for j, sub := range category.SubServices {
			subWhere := fmt.Sprintf("%s.subServices[%d]", where, j)
			if strings.TrimSpace(sub.ID) == "" {
				errs = append(errs, fmt.Errorf("%s: empty id", subWhere))
			} else if _, dup := subSeen[sub.ID]; dup {
				errs = append(errs, fmt.Errorf("%s: duplicate id %q in %q", subWhere, sub.ID, category.Slug))
			}
			subSeen[sub.ID] = struct{}{}
			if strings.TrimSpace(sub.Title) == "" {
				errs = append(errs, fmt.Errorf("%s (%s): empty title", subWhere, sub.ID))
			}
			errs = append(errs, markupErrors(subWhere, sub.Title, sub.Summary, sub.WhenToUse, sub.HowAIWorks)...)
		}
	}

	ucSeen := make(map[string]struct{}, len(c.useCases))
	for i, uc := range c.useCases {
		where := fmt.Sprintf("useCases[%d]", i)
		if strings.TrimSpace(uc.ID) == "" {
			errs = append(errs, fmt.Errorf("%s: empty id", where))
		} else if _, dup := ucSeen[uc.ID]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", where, uc.ID))
		}
		ucSeen[uc.ID] = struct{}{}
		errs = append(errs, markupErrors(where, uc.Title, uc.Summary, uc.Problem, uc.How, uc.Value, uc.Impact)...)
		if uc.Category != "" {
			if _, ok := c.categoryIndex[uc.Category]; !ok {
				errs = append(errs, fmt.Errorf("%s (%s): unknown category %q", where, uc.ID, uc.Category))
			}
		}
	}

	stepSeen := make(map[string]struct{}, len(c.steps))
	for i, step := range c.steps {
		if _, dup := stepSeen[step.ID]; dup || step.ID == "" {
			errs = append(errs, fmt.Errorf("processSteps[%d]: missing or duplicate id %q", i, step.ID))
		}
		stepSeen[step.ID] = struct{}{}
	}

	for i, item := range c.faq {
		if strings.TrimSpace(item.Question) == "" {
			errs = append(errs, fmt.Errorf("faq[%d]: empty question", i))
		}
		errs = append(errs, markupErrors(fmt.Sprintf("faq[%d]", i), item.Question, item.Answer)...)
	}

	return errors.Join(errs...)
}

// markupErrors flags text fields carrying HTML. Catalog text is rendered
// escaped, so markup would show up literally.
func markupErrors(where string, fields ...string) []error {
	var errs []error
	for _, field := range fields {
		if validator.HasMarkup(field) {
			errs = append(errs, fmt.Errorf("%s: markup in %q", where, field))
		}
	}
	return errs
}

// Stats summarizes the catalog size.
type Stats struct {
	Categories   int `json:"categories" yaml:"categories"`
	SubServices  int `json:"subServices" yaml:"sub_services"`
	UseCases     int `json:"useCases" yaml:"use_cases"`
	FAQ          int `json:"faq" yaml:"faq"`
	ProcessSteps int `json:"processSteps" yaml:"process_steps"`
	Tools        int `json:"tools" yaml:"tools"`
}

func (c *Catalog) Stats() Stats {
	s := Stats{
		Categories:   len(c.categories),
		UseCases:     len(c.useCases),
		FAQ:          len(c.faq),
		ProcessSteps: len(c.steps),
		Tools:        len(c.tools),
	}
	for _, category := range c.categories {
		s.SubServices += len(category.SubServices)
	}
	return s
}

// Snapshot returns every collection, for exports.
func (c *Catalog) Snapshot() Content {
	return Content{
		Categories:   c.Categories(),
		UseCases:     c.UseCases(),
		FAQ:          c.FAQ(),
		ProcessSteps: c.ProcessSteps(),
		Tools:        c.Tools(),
	}
}
