package sections

import (
	"fmt"
	"strings"
	"sync"

	g "maragu.dev/gomponents"
)

// Placement is one entry of a composed page: the registered section type to
// render and an optional anchor id overriding the renderer's default.
type Placement struct {
	Type   string
	Anchor string
}

// Renderer turns a placed section into markup plus the client scripts it needs.
type Renderer func(ctx *RenderContext, p Placement) (g.Node, []string)

// Registry stores the mapping between section types and their renderers.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[string]*SectionDescriptor
}

// NewRegistry creates an empty section renderer registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[string]*SectionDescriptor)}
}

// Register associates a renderer with a normalised section type. It returns an error when the input is invalid.
func (r *Registry) Register(sectionType string, renderer Renderer) error {
	return r.RegisterWithMetadata(&SectionDescriptor{
		Renderer: renderer,
		Metadata: SectionMetadata{Type: sectionType},
	})
}

// MustRegister registers the renderer and panics if registration fails.
func (r *Registry) MustRegister(sectionType string, renderer Renderer) {
	if err := r.Register(sectionType, renderer); err != nil {
		panic(err)
	}
}

// RegisterWithMetadata registers a section with its descriptive metadata.
func (r *Registry) RegisterWithMetadata(desc *SectionDescriptor) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}
	if desc == nil {
		return fmt.Errorf("descriptor is nil")
	}

	sectionType := normalizeType(desc.Metadata.Type)
	if sectionType == "" {
		return fmt.Errorf("section type is empty")
	}
	if desc.Renderer == nil {
		return fmt.Errorf("renderer is nil for type %s", sectionType)
	}

	stored := *desc
	stored.Metadata.Type = sectionType

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.descriptors == nil {
		r.descriptors = make(map[string]*SectionDescriptor)
	}
	r.descriptors[sectionType] = &stored
	return nil
}

// Get retrieves a renderer for the provided section type if it exists.
func (r *Registry) Get(sectionType string) (Renderer, bool) {
	if r == nil {
		return nil, false
	}

	sectionType = normalizeType(sectionType)
	if sectionType == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.descriptors[sectionType]
	if !ok {
		return nil, false
	}
	return desc.Renderer, true
}

// Clone creates a copy of the registry with the same renderer mappings.
func (r *Registry) Clone() *Registry {
	if r == nil {
		return NewRegistry()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for key, desc := range r.descriptors {
		copied := *desc
		cloned.descriptors[key] = &copied
	}
	return cloned
}

func normalizeType(sectionType string) string {
	return strings.TrimSpace(strings.ToLower(sectionType))
}
