package widgets

import "math"

// ScrollTolerance absorbs sub-pixel rounding when comparing scroll offsets.
const ScrollTolerance = 1.0

// Carousel tracks a horizontally scrolling strip of cards and whether the
// previous/next controls are usable.
type Carousel struct {
	viewport float64
	content  float64
	offset   float64

	canPrev bool
	canNext bool
}

// NewCarousel measures a carousel on mount.
func NewCarousel(viewport, content float64) *Carousel {
	c := &Carousel{}
	c.Reinit(viewport, content)
	return c
}

// Reinit re-measures after mount or resize. The offset is clamped to the new
// scroll range.
func (c *Carousel) Reinit(viewport, content float64) {
	c.viewport = math.Max(viewport, 0)
	c.content = math.Max(content, 0)
	c.offset = c.clampOffset(c.offset)
	c.recompute()
}

// Settle records the offset the strip came to rest at.
func (c *Carousel) Settle(offset float64) {
	c.offset = c.clampOffset(offset)
	c.recompute()
}

func (c *Carousel) Offset() float64 {
	return c.offset
}

func (c *Carousel) CanScrollPrev() bool {
	return c.canPrev
}

func (c *Carousel) CanScrollNext() bool {
	return c.canNext
}

// Next returns the target offset one viewport forward.
func (c *Carousel) Next() float64 {
	return c.clampOffset(c.offset + c.viewport)
}

// Prev returns the target offset one viewport back.
func (c *Carousel) Prev() float64 {
	return c.clampOffset(c.offset - c.viewport)
}

func (c *Carousel) maxOffset() float64 {
	return math.Max(c.content-c.viewport, 0)
}

func (c *Carousel) clampOffset(offset float64) float64 {
	if math.IsNaN(offset) {
		return 0
	}
	return clamp(offset, 0, c.maxOffset())
}

func (c *Carousel) recompute() {
	c.canPrev = c.offset > ScrollTolerance
	c.canNext = c.offset < c.maxOffset()-ScrollTolerance
}

// CloseReason names the way a modal was dismissed.
type CloseReason string

const (
	CloseButton   CloseReason = "button"
	CloseEscape   CloseReason = "escape"
	CloseBackdrop CloseReason = "backdrop"
	CloseNavigate CloseReason = "navigate"
)

// Modal shows the detail of one card at a time. While open it holds the page
// scroll lock; every close path gives it back.
type Modal struct {
	lock    *ScrollLock
	release func()
	cardID  string
	closed  CloseReason
}

func NewModal(lock *ScrollLock) *Modal {
	if lock == nil {
		lock = &ScrollLock{}
	}
	return &Modal{lock: lock}
}

// Open shows cardID. The scroll lock is acquired on the first open only;
// switching to another card swaps content. It reports whether anything
// changed.
func (m *Modal) Open(cardID string) bool {
	if cardID == "" || cardID == m.cardID {
		return false
	}
	if m.release == nil {
		m.release = m.lock.Acquire()
	}
	m.cardID = cardID
	return true
}

// Close hides the modal and releases the scroll lock. Closing a closed modal
// is a no-op.
func (m *Modal) Close(reason CloseReason) bool {
	if m.release == nil {
		return false
	}
	m.release()
	m.release = nil
	m.cardID = ""
	m.closed = reason
	return true
}

func (m *Modal) IsOpen() bool {
	return m.release != nil
}

func (m *Modal) CardID() string {
	return m.cardID
}

// LastCloseReason returns how the modal was last dismissed.
func (m *Modal) LastCloseReason() CloseReason {
	return m.closed
}
