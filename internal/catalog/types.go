package catalog

// Icon is a symbolic icon key. The presentation layer resolves it to a
// renderable icon, so catalog entries never carry markup.
type Icon string

const (
	IconUserPlus      Icon = "user-plus"
	IconSparkles      Icon = "sparkles"
	IconMessageSquare Icon = "message-square"
	IconFileText      Icon = "file-text"
	IconWorkflow      Icon = "workflow"
	IconMail          Icon = "mail"
	IconCalendar      Icon = "calendar"
	IconClipboard     Icon = "clipboard-list"
	IconPhone         Icon = "phone"
)

// ServiceCategory is one service domain shown as a tile on the home page and
// as its own detail page under /diensten/:slug.
type ServiceCategory struct {
	Slug          string         `json:"slug" yaml:"slug"`
	Icon          Icon           `json:"icon" yaml:"icon"`
	Title         string         `json:"title" yaml:"title"`
	Tagline       string         `json:"tagline" yaml:"tagline"`
	Description   string         `json:"description" yaml:"description"`
	HeroProblem   string         `json:"heroProblem" yaml:"hero_problem"`
	HeroResults   []string       `json:"heroResults" yaml:"hero_results"`
	ApproachSteps []ApproachStep `json:"approachSteps" yaml:"approach_steps"`
	Scope         Scope          `json:"scope" yaml:"scope"`
	SubServices   []SubService   `json:"subServices" yaml:"sub_services"`
}

type ApproachStep struct {
	Step        string `json:"step" yaml:"step"`
	Description string `json:"description" yaml:"description"`
}

type Scope struct {
	Included []string `json:"included" yaml:"included"`
	Excluded []string `json:"excluded" yaml:"excluded"`
}

// SubService is a concrete application inside a category. Its ID is unique
// within the parent category only.
type SubService struct {
	ID             string   `json:"id" yaml:"id"`
	Title          string   `json:"title" yaml:"title"`
	Summary        string   `json:"summary" yaml:"summary"`
	TargetAudience string   `json:"targetAudience" yaml:"target_audience"`
	WhenToUse      string   `json:"whenToUse" yaml:"when_to_use"`
	Benefits       []string `json:"benefits" yaml:"benefits"`
	HowAIWorks     string   `json:"howAiWorks" yaml:"how_ai_works"`
	Included       []string `json:"included" yaml:"included"`
	Excluded       []string `json:"excluded" yaml:"excluded"`
	Integrations   []string `json:"integrations" yaml:"integrations"`
}

// UseCase is a carousel card with a detail modal.
type UseCase struct {
	ID       string `json:"id" yaml:"id"`
	Category string `json:"category" yaml:"category"`
	Title    string `json:"title" yaml:"title"`
	Summary  string `json:"summary" yaml:"summary"`
	Problem  string `json:"problem" yaml:"problem"`
	How      string `json:"how" yaml:"how"`
	Value    string `json:"value" yaml:"value"`
	Impact   string `json:"impact" yaml:"impact"`
	ImageURL string `json:"imageUrl" yaml:"image_url"`
	Icon     Icon   `json:"icon" yaml:"icon"`
}

type FaqItem struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// ProcessStep is one step of the "how it works" accordion on the home page.
type ProcessStep struct {
	ID      string `json:"id" yaml:"id"`
	Number  string `json:"number" yaml:"number"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Tool is an external product shown in the integrations cloud. Display only.
type Tool struct {
	Slug string `json:"slug" yaml:"slug"`
	Name string `json:"name" yaml:"name"`
}

func (c ServiceCategory) clone() ServiceCategory {
	out := c
	out.HeroResults = cloneStrings(c.HeroResults)
	out.ApproachSteps = append([]ApproachStep(nil), c.ApproachSteps...)
	out.Scope = Scope{
		Included: cloneStrings(c.Scope.Included),
		Excluded: cloneStrings(c.Scope.Excluded),
	}
	out.SubServices = make([]SubService, len(c.SubServices))
	for i, sub := range c.SubServices {
		out.SubServices[i] = sub.clone()
	}
	return out
}

func (s SubService) clone() SubService {
	out := s
	out.Benefits = cloneStrings(s.Benefits)
	out.Included = cloneStrings(s.Included)
	out.Excluded = cloneStrings(s.Excluded)
	out.Integrations = cloneStrings(s.Integrations)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
