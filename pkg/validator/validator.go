package validator

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	initOnce sync.Once
	validate *validator.Validate
	strict   *bluemonday.Policy

	slugRegex  = regexp.MustCompile(`^[a-z0-9-]+$`)
	spaceRegex = regexp.MustCompile(`[ \t]+`)
)

// Init prepares the shared validator and sanitizers and registers the custom
// validations with gin's binding engine. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		validate = validator.New()
		strict = bluemonday.StrictPolicy()

		registerCustomValidations(validate)

		if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
			registerCustomValidations(engine)
		}
	})
}

func registerCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation("slug", validateSlug)
}

func Validate(s interface{}) error {
	Init()
	return validate.Struct(s)
}

// SanitizeString strips all markup. Entities produced by the policy are
// decoded again so plain text survives unchanged.
func SanitizeString(s string) string {
	Init()
	cleaned := strict.Sanitize(s)
	return htmlUnescaper.Replace(cleaned)
}

// HasMarkup reports whether s contains anything the strict policy would
// strip.
func HasMarkup(s string) bool {
	return SanitizeString(s) != s
}

var htmlUnescaper = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&#34;", `"`,
	"&#39;", "'",
	"&quot;", `"`,
)

func ValidateSlug(slug string) bool {
	return slugRegex.MatchString(slug)
}

func validateSlug(fl validator.FieldLevel) bool {
	return ValidateSlug(fl.Field().String())
}

// NormalizeSpaces collapses runs of spaces and tabs; line breaks are kept.
func NormalizeSpaces(s string) string {
	return spaceRegex.ReplaceAllString(s, " ")
}

// FieldErrors maps the failing fields of a validation error to their tags,
// keyed by the field's json name when validation ran through gin binding.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return out
}
