package widgets

// Presence is the visibility phase of a collapsible panel.
type Presence int

const (
	Hidden Presence = iota
	Entering
	Visible
	Exiting
)

func (p Presence) String() string {
	switch p {
	case Entering:
		return "entering"
	case Visible:
		return "visible"
	case Exiting:
		return "exiting"
	default:
		return "hidden"
	}
}

// Expanded reports whether the panel is open or heading there.
func (p Presence) Expanded() bool {
	return p == Entering || p == Visible
}

// Accordion is a single-open disclosure list. At most one item is open; hover
// is tracked separately and never changes the open item.
type Accordion struct {
	ids      []string
	known    map[string]struct{}
	open     string
	hovered  string
	presence map[string]Presence
}

type AccordionOption func(*Accordion)

// WithInitiallyOpen opens id on construction, without a transition.
func WithInitiallyOpen(id string) AccordionOption {
	return func(a *Accordion) {
		if _, ok := a.known[id]; ok {
			a.open = id
			a.presence[id] = Visible
		}
	}
}

func NewAccordion(ids []string, opts ...AccordionOption) *Accordion {
	a := &Accordion{
		ids:      make([]string, 0, len(ids)),
		known:    make(map[string]struct{}, len(ids)),
		presence: make(map[string]Presence, len(ids)),
	}
	for _, id := range ids {
		if _, dup := a.known[id]; dup {
			continue
		}
		a.known[id] = struct{}{}
		a.ids = append(a.ids, id)
		a.presence[id] = Hidden
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Accordion) IDs() []string {
	return append([]string(nil), a.ids...)
}

// Open returns the id of the open item, or "" when all are closed.
func (a *Accordion) Open() string {
	return a.open
}

func (a *Accordion) IsOpen(id string) bool {
	return id != "" && a.open == id
}

// Next returns the open id that SetOpen(id) would produce, without applying it.
func (a *Accordion) Next(id string) string {
	if id == "" {
		return ""
	}
	if _, ok := a.known[id]; !ok {
		return a.open
	}
	if a.open == id {
		return ""
	}
	return id
}

// SetOpen toggles id: the open item closes, any other item opens and the
// previous one closes. An empty id closes everything and unknown ids are
// ignored. It returns the resulting open id.
func (a *Accordion) SetOpen(id string) string {
	next := a.Next(id)
	if next == a.open {
		return a.open
	}
	if a.open != "" {
		a.transition(a.open, false)
	}
	if next != "" {
		a.transition(next, true)
	}
	a.open = next
	return a.open
}

func (a *Accordion) transition(id string, show bool) {
	current := a.presence[id]
	if show {
		if current != Visible {
			a.presence[id] = Entering
		}
		return
	}
	if current != Hidden {
		a.presence[id] = Exiting
	}
}

// Presence returns the visibility phase of id.
func (a *Accordion) Presence(id string) Presence {
	return a.presence[id]
}

// Settle completes a pending transition of id.
func (a *Accordion) Settle(id string) {
	switch a.presence[id] {
	case Entering:
		a.presence[id] = Visible
	case Exiting:
		a.presence[id] = Hidden
	}
}

// SettleAll completes every pending transition.
func (a *Accordion) SettleAll() {
	for _, id := range a.ids {
		a.Settle(id)
	}
}

func (a *Accordion) Hover(id string) {
	if _, ok := a.known[id]; ok {
		a.hovered = id
	}
}

func (a *Accordion) Leave() {
	a.hovered = ""
}

func (a *Accordion) Hovered() string {
	return a.hovered
}
