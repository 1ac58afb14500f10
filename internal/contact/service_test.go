package contact

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aivanta-site/pkg/validator"
)

type stubRelay struct {
	mu       sync.Mutex
	payloads []Payload
	err      error
	block    chan struct{}
}

func (r *stubRelay) Deliver(ctx context.Context, payload Payload) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, payload)
	return r.err
}

func (r *stubRelay) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.payloads)
}

type memoryMemo struct {
	mu   sync.Mutex
	keys map[string]bool
}

func (m *memoryMemo) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keys[key], nil
}

func (m *memoryMemo) Set(_ context.Context, key string, _ interface{}, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.keys == nil {
		m.keys = make(map[string]bool)
	}
	m.keys[key] = true
	return nil
}

func validSubmission(token string) Submission {
	return Submission{
		Naam:    "  Els \t Janssens ",
		Bedrijf: "Janssens & Co",
		Email:   "els@example.be",
		Bericht: "Mail mijn collega op <piet@x.nl> over chatbots.\n",
		Token:   token,
	}
}

func TestServiceSubmitDelivers(t *testing.T) {
	relay := &stubRelay{}
	memo := &memoryMemo{}
	svc := NewService(relay, memo, Config{SiteName: "Aivanta"})

	token := svc.NewToken()
	status, err := svc.Submit(context.Background(), validSubmission(token))
	require.NoError(t, err)
	assert.Equal(t, StatusSent, status)
	assert.Equal(t, StatusSent, svc.Status(token))

	require.Equal(t, 1, relay.count())
	payload := relay.payloads[0]
	assert.Equal(t, "Els Janssens", payload.Naam)
	assert.Equal(t, "Janssens & Co", payload.Bedrijf)
	assert.Equal(t, "Mail mijn collega op <piet@x.nl> over chatbots.", payload.Bericht)
	assert.Equal(t, "Nieuwe intake via Aivanta — Els Janssens", payload.Subject)

	exists, _ := memo.Exists(context.Background(), sentKey(token))
	assert.True(t, exists)
}

func TestServiceReplayAfterSent(t *testing.T) {
	relay := &stubRelay{}
	svc := NewService(relay, &memoryMemo{}, Config{})

	token := svc.NewToken()
	_, err := svc.Submit(context.Background(), validSubmission(token))
	require.NoError(t, err)

	status, err := svc.Submit(context.Background(), validSubmission(token))
	assert.True(t, errors.Is(err, ErrAlreadySent))
	assert.Equal(t, StatusSent, status)
	assert.Equal(t, 1, relay.count())
}

func TestServiceMemoSurvivesRestart(t *testing.T) {
	memo := &memoryMemo{}
	first := NewService(&stubRelay{}, memo, Config{})
	token := first.NewToken()
	_, err := first.Submit(context.Background(), validSubmission(token))
	require.NoError(t, err)

	relay := &stubRelay{}
	second := NewService(relay, memo, Config{})
	_, err = second.Submit(context.Background(), validSubmission(token))
	assert.True(t, errors.Is(err, ErrAlreadySent))
	assert.Equal(t, 0, relay.count())
}

func TestServiceErrorThenRetry(t *testing.T) {
	relay := &stubRelay{err: ErrRelayRejected}
	svc := NewService(relay, nil, Config{})

	token := svc.NewToken()
	status, err := svc.Submit(context.Background(), validSubmission(token))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRelayRejected))
	assert.Equal(t, StatusError, status)

	relay.mu.Lock()
	relay.err = nil
	relay.mu.Unlock()

	status, err = svc.Submit(context.Background(), validSubmission(token))
	require.NoError(t, err)
	assert.Equal(t, StatusSent, status)
	assert.Equal(t, 2, relay.count())
}

func TestServiceConcurrentSubmitDeliversOnce(t *testing.T) {
	relay := &stubRelay{block: make(chan struct{})}
	svc := NewService(relay, nil, Config{})
	token := svc.NewToken()

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), validSubmission(token))
		done <- err
	}()

	require.Eventually(t, func() bool {
		return svc.Status(token) == StatusSending
	}, time.Second, 5*time.Millisecond)

	_, err := svc.Submit(context.Background(), validSubmission(token))
	assert.True(t, errors.Is(err, ErrSubmissionInFlight))

	close(relay.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, relay.count())
}

func TestServiceDiscardDropsOutcome(t *testing.T) {
	relay := &stubRelay{block: make(chan struct{})}
	svc := NewService(relay, nil, Config{})
	token := svc.NewToken()

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), validSubmission(token))
		done <- err
	}()

	require.Eventually(t, func() bool {
		return svc.Status(token) == StatusSending
	}, time.Second, 5*time.Millisecond)

	svc.Discard(token)
	close(relay.block)

	assert.True(t, errors.Is(<-done, ErrFormDiscarded))
	assert.Equal(t, StatusIdle, svc.Status(token))
}

func TestServiceSweepsExpiredForms(t *testing.T) {
	svc := NewService(&stubRelay{}, nil, Config{FormTTL: time.Minute})
	now := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	old := svc.NewToken()
	now = now.Add(2 * time.Minute)
	fresh := svc.NewToken()

	svc.mu.Lock()
	_, oldKept := svc.forms[old]
	_, freshKept := svc.forms[fresh]
	svc.mu.Unlock()

	assert.False(t, oldKept)
	assert.True(t, freshKept)
}

func TestServiceSubmitWithoutToken(t *testing.T) {
	relay := &stubRelay{}
	svc := NewService(relay, nil, Config{})

	status, err := svc.Submit(context.Background(), validSubmission(""))
	require.NoError(t, err)
	assert.Equal(t, StatusSent, status)
	assert.Equal(t, 1, relay.count())
}

func TestServiceKeepsTypedText(t *testing.T) {
	relay := &stubRelay{}
	svc := NewService(relay, nil, Config{SiteName: "Aivanta"})

	sub := validSubmission(svc.NewToken())
	sub.Naam = "Els <Janssens>"
	sub.Bericht = "Regel een\n\n  <b>Regel twee</b> & meer"

	_, err := svc.Submit(context.Background(), sub)
	require.NoError(t, err)
	require.Equal(t, 1, relay.count())
	assert.Equal(t, "Els <Janssens>", relay.payloads[0].Naam)
	assert.Equal(t, "Regel een\n\n  <b>Regel twee</b> & meer", relay.payloads[0].Bericht)
}

func TestServiceRejectsBlankFields(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Submission)
		field string
	}{
		{name: "blank name", edit: func(s *Submission) { s.Naam = " \t " }, field: "naam"},
		{name: "blank message", edit: func(s *Submission) { s.Bericht = "\n  \n" }, field: "bericht"},
		{name: "padded bad email", edit: func(s *Submission) { s.Email = "  geen-adres " }, field: "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relay := &stubRelay{}
			svc := NewService(relay, nil, Config{})

			sub := validSubmission(svc.NewToken())
			tt.edit(&sub)

			status, err := svc.Submit(context.Background(), sub)
			require.ErrorIs(t, err, ErrInvalidSubmission)
			assert.Equal(t, StatusIdle, status)
			assert.Contains(t, validator.FieldErrors(err), tt.field)
			assert.Zero(t, relay.count())
		})
	}
}
