package widgets

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakpoints(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, Breakpoints(4))
	assert.Nil(t, Breakpoints(0))
}

func TestNearestBreakpoint(t *testing.T) {
	tests := []struct {
		name        string
		progress    float64
		breakpoints []float64
		want        int
	}{
		{name: "start", progress: 0, breakpoints: Breakpoints(4), want: 0},
		{name: "end", progress: 1, breakpoints: Breakpoints(4), want: 3},
		{name: "middle", progress: 0.5, breakpoints: Breakpoints(4), want: 2},
		{name: "near second", progress: 0.3, breakpoints: Breakpoints(4), want: 1},
		{name: "tie goes to lower index", progress: 0.25, breakpoints: []float64{0, 0.5}, want: 0},
		{name: "below range", progress: -0.5, breakpoints: Breakpoints(3), want: 0},
		{name: "above range", progress: 4, breakpoints: Breakpoints(3), want: 2},
		{name: "positive infinity", progress: math.Inf(1), breakpoints: Breakpoints(3), want: 2},
		{name: "negative infinity", progress: math.Inf(-1), breakpoints: Breakpoints(3), want: 0},
		{name: "nan treated as zero", progress: math.NaN(), breakpoints: Breakpoints(3), want: 0},
		{name: "single", progress: 0.9, breakpoints: []float64{0}, want: 0},
		{name: "empty", progress: 0.5, breakpoints: nil, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NearestBreakpoint(tt.progress, tt.breakpoints))
		})
	}
}

func TestScrollPanelActiveStaysInRange(t *testing.T) {
	p := NewScrollPanel(5)
	require.Equal(t, 5, p.Steps())
	for _, progress := range []float64{-1, 0, 0.1, 0.33, 0.5, 0.99, 1, 2, math.Inf(1), math.Inf(-1)} {
		active := p.Update(progress)
		require.GreaterOrEqual(t, active, 0, "progress %v", progress)
		require.Less(t, active, 5, "progress %v", progress)
	}
}

func TestScrollPanelNeedsOneStep(t *testing.T) {
	p := NewScrollPanel(0)
	assert.Equal(t, 1, p.Steps())
	assert.Equal(t, 0, p.Update(0.7))
}

func TestScrollPanelCoalesces(t *testing.T) {
	p := NewScrollPanel(4)

	p.Observe(0.8)
	p.Observe(0.1)
	p.Observe(0.5)
	assert.Equal(t, 0, p.Active(), "nothing applied before flush")

	assert.Equal(t, 2, p.Flush())
	assert.Equal(t, 2, p.Flush(), "flush without new observations keeps state")
}

func TestScrollPanelBackgroundFollowsActive(t *testing.T) {
	p := NewScrollPanel(7)
	for i := 0; i < 7; i++ {
		p.Update(float64(i) / 7)
		assert.Equal(t, PanelGradients[i%len(PanelGradients)], p.Background())
	}
	assert.Equal(t, GradientFor(0), GradientFor(len(PanelGradients)))
}

func TestTimelineFill(t *testing.T) {
	tests := []struct {
		progress    float64
		wantFill    float64
		wantOpacity float64
	}{
		{progress: 0, wantFill: 0, wantOpacity: 0},
		{progress: 0.025, wantFill: 25, wantOpacity: 0.5},
		{progress: 0.05, wantFill: 50, wantOpacity: 1},
		{progress: 0.5, wantFill: 500, wantOpacity: 1},
		{progress: 1, wantFill: 1000, wantOpacity: 1},
		{progress: 1.5, wantFill: 1000, wantOpacity: 1},
		{progress: -0.2, wantFill: 0, wantOpacity: 0},
	}

	for _, tt := range tests {
		fill, opacity := TimelineFill(tt.progress, 1000)
		assert.InDelta(t, tt.wantFill, fill, 1e-9, "fill at %v", tt.progress)
		assert.InDelta(t, tt.wantOpacity, opacity, 1e-9, "opacity at %v", tt.progress)
	}
}
