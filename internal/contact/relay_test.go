package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRelayPostsJSON(t *testing.T) {
	var (
		got     map[string]string
		headers http.Header
		method  string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		headers = r.Header.Clone()
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	relay := NewHTTPRelay(RelayConfig{URL: server.URL, Timeout: time.Second})
	defer relay.Close()

	payload := NewPayload("Aivanta", Submission{
		Naam:    "Jan Peeters",
		Bedrijf: "Peeters BV",
		Email:   "jan@example.be",
		Bericht: "Wij willen onze offertes automatiseren.",
	})

	require.NoError(t, relay.Deliver(context.Background(), payload))

	assert.Equal(t, http.MethodPost, method)
	assert.Contains(t, headers.Get("Content-Type"), "application/json")
	assert.Equal(t, "application/json", headers.Get("Accept"))

	assert.Equal(t, "Jan Peeters", got["naam"])
	assert.Equal(t, "jan@example.be", got["email"])
	assert.Equal(t, "Peeters BV", got["bedrijf"])
	assert.Equal(t, "Wij willen onze offertes automatiseren.", got["bericht"])
	assert.Equal(t, "Nieuwe intake via Aivanta — Jan Peeters", got["_subject"])
	assert.Equal(t, "false", got["_captcha"])
}

func TestHTTPRelayNon2xxIsError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	relay := NewHTTPRelay(RelayConfig{URL: server.URL, Timeout: time.Second})
	defer relay.Close()

	err := relay.Deliver(context.Background(), Payload{Naam: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRelayRejected))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "no retry")
}

func TestHTTPRelayTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	relay := NewHTTPRelay(RelayConfig{URL: url, Timeout: time.Second})
	defer relay.Close()

	err := relay.Deliver(context.Background(), Payload{Naam: "x"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRelayRejected))
}

func TestHTTPRelayRequiresURL(t *testing.T) {
	relay := NewHTTPRelay(RelayConfig{})
	defer relay.Close()

	assert.Error(t, relay.Deliver(context.Background(), Payload{}))
}
