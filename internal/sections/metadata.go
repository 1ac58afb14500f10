package sections

import (
	"encoding/json"
	"sort"
)

// SectionMetadata describes a section type for listings and tooling.
type SectionMetadata struct {
	Type        string   `json:"type" yaml:"type"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Page        string   `json:"page" yaml:"page"`
	Scripts     []string `json:"scripts,omitempty" yaml:"scripts,omitempty"`
}

// SectionDescriptor wraps a renderer with its metadata.
type SectionDescriptor struct {
	Renderer Renderer
	Metadata SectionMetadata
}

// GetMetadata retrieves metadata for a section type.
func (r *Registry) GetMetadata(sectionType string) (SectionMetadata, bool) {
	if r == nil {
		return SectionMetadata{}, false
	}

	sectionType = normalizeType(sectionType)
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, ok := r.descriptors[sectionType]
	if !ok {
		return SectionMetadata{}, false
	}
	return desc.Metadata, true
}

// ListMetadata returns metadata for all registered sections sorted by type.
func (r *Registry) ListMetadata() []SectionMetadata {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	result := make([]SectionMetadata, 0, len(r.descriptors))
	for _, desc := range r.descriptors {
		result = append(result, desc.Metadata)
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool { return result[i].Type < result[j].Type })
	return result
}

// MarshalMetadataJSON returns JSON representation of all section metadata.
func (r *Registry) MarshalMetadataJSON() ([]byte, error) {
	return json.Marshal(r.ListMetadata())
}
