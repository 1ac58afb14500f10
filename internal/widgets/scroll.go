package widgets

import "math"

// PanelGradients are the background fills of the sticky scroll panel,
// cycled by active step.
var PanelGradients = []string{
	"linear-gradient(135deg, #2E4036 0%, #1A1A1A 100%)",
	"linear-gradient(135deg, #CC5833 0%, #2E4036 100%)",
	"linear-gradient(135deg, #1e2b24 0%, #3d5449 100%)",
	"linear-gradient(135deg, #a8461f 0%, #CC5833 100%)",
	"linear-gradient(135deg, #2E4036 0%, #CC5833 100%)",
}

// TimelineFadeIn is the progress range over which the timeline line fades in.
const TimelineFadeIn = 0.05

// Breakpoints returns n evenly spaced progress values i/n.
func Breakpoints(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / float64(n)
	}
	return out
}

// NearestBreakpoint returns the index of the breakpoint closest to progress.
// Ties go to the lower index. It returns -1 when there are no breakpoints.
func NearestBreakpoint(progress float64, breakpoints []float64) int {
	if len(breakpoints) == 0 {
		return -1
	}
	if math.IsNaN(progress) {
		progress = 0
	}
	progress = math.Max(0, math.Min(1, progress))
	best := 0
	bestDistance := math.Abs(progress - breakpoints[0])
	for i := 1; i < len(breakpoints); i++ {
		d := math.Abs(progress - breakpoints[i])
		if d < bestDistance {
			best = i
			bestDistance = d
		}
	}
	return best
}

// ScrollPanel tracks which step of a scroll-driven list is active.
// Observations are coalesced: only the latest progress value is applied on
// Flush, so bursts of scroll events cost one recomputation.
type ScrollPanel struct {
	breakpoints []float64
	active      int
	pending     float64
	dirty       bool
}

func NewScrollPanel(steps int) *ScrollPanel {
	if steps < 1 {
		steps = 1
	}
	return &ScrollPanel{
		breakpoints: Breakpoints(steps),
	}
}

func (p *ScrollPanel) Steps() int {
	return len(p.breakpoints)
}

func (p *ScrollPanel) Breakpoints() []float64 {
	return append([]float64(nil), p.breakpoints...)
}

// Observe records a progress value without recomputing.
func (p *ScrollPanel) Observe(progress float64) {
	p.pending = progress
	p.dirty = true
}

// Flush applies the latest observed progress and returns the active index.
func (p *ScrollPanel) Flush() int {
	if !p.dirty {
		return p.active
	}
	p.dirty = false
	if idx := NearestBreakpoint(p.pending, p.breakpoints); idx >= 0 {
		p.active = idx
	}
	return p.active
}

func (p *ScrollPanel) Update(progress float64) int {
	p.Observe(progress)
	return p.Flush()
}

func (p *ScrollPanel) Active() int {
	return p.active
}

func (p *ScrollPanel) Background() string {
	return GradientFor(p.active)
}

// GradientFor returns the panel gradient for a step index.
func GradientFor(index int) string {
	n := len(PanelGradients)
	return PanelGradients[((index%n)+n)%n]
}

// TimelineFill maps scroll progress to the drawn line height and its opacity.
// Both are clamped to their ranges.
func TimelineFill(progress, height float64) (fill, opacity float64) {
	if math.IsNaN(progress) {
		progress = 0
	}
	p := clamp(progress, 0, 1)
	fill = p * math.Max(height, 0)
	opacity = clamp(progress/TimelineFadeIn, 0, 1)
	return fill, opacity
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
