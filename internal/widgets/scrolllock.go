package widgets

import "sync"

// ScrollLock is a counted page scroll lock. The page is locked while at least
// one holder has not released.
type ScrollLock struct {
	mu      sync.Mutex
	holders int
}

// Acquire takes the lock and returns its release function. Calling release
// more than once has no further effect.
func (l *ScrollLock) Acquire() (release func()) {
	l.mu.Lock()
	l.holders++
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.holders--
			l.mu.Unlock()
		})
	}
}

func (l *ScrollLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holders > 0
}

func (l *ScrollLock) Holders() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holders
}
