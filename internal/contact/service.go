package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"aivanta-site/pkg/logger"
	"aivanta-site/pkg/validator"
)

// SentMemo remembers which form tokens were delivered, across restarts when
// backed by a shared cache.
type SentMemo interface {
	Exists(ctx context.Context, key string) (bool, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type Config struct {
	SiteName string
	// FormTTL bounds how long an issued form token is tracked.
	FormTTL time.Duration
	// SentTTL is how long a delivered token is remembered in the memo.
	SentTTL time.Duration
}

type formEntry struct {
	form   *Form
	issued time.Time
}

// Service owns the contact forms handed out to visitors and delivers their
// submissions through a Relay.
type Service struct {
	relay Relay
	memo  SentMemo
	cfg   Config
	now   func() time.Time

	mu    sync.Mutex
	forms map[string]*formEntry
}

func NewService(relay Relay, memo SentMemo, cfg Config) *Service {
	initMetrics()

	if cfg.SiteName == "" {
		cfg.SiteName = "Aivanta"
	}
	if cfg.FormTTL <= 0 {
		cfg.FormTTL = 2 * time.Hour
	}
	if cfg.SentTTL <= 0 {
		cfg.SentTTL = 24 * time.Hour
	}

	return &Service{
		relay: relay,
		memo:  memo,
		cfg:   cfg,
		now:   time.Now,
		forms: make(map[string]*formEntry),
	}
}

// NewToken issues a fresh form and returns its token.
func (s *Service) NewToken() string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	s.forms[token] = &formEntry{form: NewForm(), issued: s.now()}
	openForms.Set(float64(len(s.forms)))
	return token
}

// Status returns the state of the form behind token, or idle when the token
// is unknown.
func (s *Service) Status(token string) Status {
	s.mu.Lock()
	entry, ok := s.forms[token]
	s.mu.Unlock()
	if !ok {
		return StatusIdle
	}
	return entry.form.Status()
}

// Discard drops the form behind token. An in-flight delivery still runs to
// completion but its outcome is ignored.
func (s *Service) Discard(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.forms[token]; ok {
		entry.form.Discard()
		delete(s.forms, token)
		openForms.Set(float64(len(s.forms)))
	}
}

// Submit normalizes, validates and delivers a submission. The returned status
// is the form's state after the attempt.
func (s *Service) Submit(ctx context.Context, sub Submission) (Status, error) {
	sub = sub.Normalized()
	if err := validator.Validate(sub); err != nil {
		submissionsTotal.WithLabelValues("invalid").Inc()
		return StatusIdle, fmt.Errorf("%w: %w", ErrInvalidSubmission, err)
	}
	if sub.Token == "" {
		sub.Token = s.NewToken()
	}

	fields := map[string]interface{}{"token": sub.Token}
	log := logger.FromContext(ctx).WithFields(fields)

	if s.alreadySent(ctx, sub.Token) {
		submissionsTotal.WithLabelValues("duplicate").Inc()
		return StatusSent, ErrAlreadySent
	}

	form := s.formFor(sub.Token)
	ticket, err := form.Begin()
	if err != nil {
		switch {
		case errors.Is(err, ErrSubmissionInFlight):
			submissionsTotal.WithLabelValues("in_flight").Inc()
		case errors.Is(err, ErrAlreadySent):
			submissionsTotal.WithLabelValues("duplicate").Inc()
		}
		return form.Status(), err
	}

	start := s.now()
	deliverErr := s.relay.Deliver(ctx, NewPayload(s.cfg.SiteName, sub))
	relayDurationSeconds.Observe(s.now().Sub(start).Seconds())

	if !form.Complete(ticket, deliverErr) {
		log.Debug("Contact outcome dropped for discarded form")
		return form.Status(), ErrFormDiscarded
	}

	if deliverErr != nil {
		submissionsTotal.WithLabelValues("error").Inc()
		log.WithError(deliverErr).Warn("Contact submission failed")
		return StatusError, fmt.Errorf("deliver contact submission: %w", deliverErr)
	}

	submissionsTotal.WithLabelValues("sent").Inc()
	log.WithField("bedrijf", sub.Bedrijf).Info("Contact submission delivered")

	if s.memo != nil {
		if err := s.memo.Set(ctx, sentKey(sub.Token), true, s.cfg.SentTTL); err != nil {
			log.WithError(err).Warn("Failed to remember sent contact form")
		}
	}
	return StatusSent, nil
}

func (s *Service) formFor(token string) *Form {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.forms[token]
	if !ok {
		s.sweepLocked()
		entry = &formEntry{form: NewForm(), issued: s.now()}
		s.forms[token] = entry
		openForms.Set(float64(len(s.forms)))
	}
	return entry.form
}

func (s *Service) alreadySent(ctx context.Context, token string) bool {
	if s.memo == nil {
		return false
	}
	sent, err := s.memo.Exists(ctx, sentKey(token))
	if err != nil {
		logger.FromContext(ctx).WithError(err).Debug("Contact memo lookup failed")
		return false
	}
	return sent
}

// sweepLocked drops forms older than FormTTL that are not mid-delivery.
func (s *Service) sweepLocked() {
	cutoff := s.now().Add(-s.cfg.FormTTL)
	for token, entry := range s.forms {
		if entry.issued.Before(cutoff) && entry.form.Status() != StatusSending {
			entry.form.Discard()
			delete(s.forms, token)
		}
	}
}

func sentKey(token string) string {
	return "contact:sent:" + strings.ToLower(token)
}
