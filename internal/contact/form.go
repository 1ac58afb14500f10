package contact

import (
	"errors"
	"sync"
)

// Status is the submission phase of a contact form.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSending Status = "sending"
	StatusSent    Status = "sent"
	StatusError   Status = "error"
)

var (
	ErrSubmissionInFlight = errors.New("contact: submission already in flight")
	ErrAlreadySent        = errors.New("contact: form already sent")
	ErrFormDiscarded      = errors.New("contact: form discarded")
	ErrInvalidSubmission  = errors.New("contact: invalid submission")
)

// Ticket identifies one submission attempt. Completing with a stale ticket
// has no effect.
type Ticket struct {
	attempt int
}

// Form is the submission state machine of one contact form instance:
// idle -> sending -> sent | error, and error -> sending on retry.
type Form struct {
	mu        sync.Mutex
	status    Status
	attempt   int
	discarded bool
	lastErr   error
}

func NewForm() *Form {
	return &Form{status: StatusIdle}
}

// Begin moves the form into sending. A form that is already sending or was
// sent refuses, so a double submit cannot produce two deliveries.
func (f *Form) Begin() (Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case f.discarded:
		return Ticket{}, ErrFormDiscarded
	case f.status == StatusSending:
		return Ticket{}, ErrSubmissionInFlight
	case f.status == StatusSent:
		return Ticket{}, ErrAlreadySent
	}

	f.attempt++
	f.status = StatusSending
	f.lastErr = nil
	return Ticket{attempt: f.attempt}, nil
}

// Complete records the outcome of the attempt identified by t. It reports
// whether the outcome was applied.
func (f *Form) Complete(t Ticket, err error) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.discarded || f.status != StatusSending || t.attempt != f.attempt {
		return false
	}
	if err != nil {
		f.status = StatusError
		f.lastErr = err
		return true
	}
	f.status = StatusSent
	return true
}

// Discard marks the form as gone. Pending outcomes are dropped.
func (f *Form) Discard() {
	f.mu.Lock()
	f.discarded = true
	f.mu.Unlock()
}

func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *Form) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

func (f *Form) Discarded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.discarded
}
