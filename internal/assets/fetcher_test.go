package assets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_FetchJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"v":"5.7.4","layers":[1,2]}`))
	}))
	defer server.Close()

	f := NewFetcher(server.Client())
	v, err := f.FetchJSON(context.Background(), server.URL)
	require.NoError(t, err)

	doc, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "5.7.4", doc["v"])
	assert.Len(t, doc["layers"], 2)
}

func TestFetcher_DefaultTimeout(t *testing.T) {
	assert.Equal(t, 8*time.Second, NewFetcher(nil).Timeout())
	assert.Equal(t, time.Second, NewFetcher(nil, WithTimeout(time.Second)).Timeout())
}

func TestFetcher_HTTPStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewFetcher(server.Client()).FetchBytes(context.Background(), server.URL)
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, KindHTTPStatus, fe.Kind)
	assert.Equal(t, http.StatusInternalServerError, fe.StatusCode)
	assert.Contains(t, fe.Error(), "500")
}

func TestFetcher_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	f := NewFetcher(server.Client(), WithTimeout(50*time.Millisecond))
	_, err := f.FetchBytes(context.Background(), server.URL)
	require.Error(t, err)
	assert.True(t, IsFetchKind(err, KindTimeout), "got %v", err)
}

func TestFetcher_ConnectionFailed(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewFetcher(nil).FetchBytes(context.Background(), url)
	require.Error(t, err)
	assert.True(t, IsFetchKind(err, KindConnectionFailed), "got %v", err)
}

func TestFetcher_BodyTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, 1024))
	}))
	defer server.Close()

	_, err := NewFetcher(server.Client(), WithMaxBodySize(1023)).FetchBytes(context.Background(), server.URL)
	var de *DecodeError
	require.True(t, errors.As(err, &de), "got %v", err)
	assert.Equal(t, "body", de.What)
	assert.ErrorIs(t, err, ErrBodyTooLarge)

	body, err := NewFetcher(server.Client(), WithMaxBodySize(1024)).FetchBytes(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Len(t, body, 1024)
}

func TestFetcher_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"broken":`))
	}))
	defer server.Close()

	_, err := NewFetcher(server.Client()).FetchJSON(context.Background(), server.URL)
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "json", de.What)
}

func TestFetcher_RateLimitWaitPastDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	// One token per minute: the second call cannot get a token within 50ms.
	f := NewFetcher(server.Client(), WithTimeout(50*time.Millisecond), WithRateLimit(1.0/60, 1))

	_, err := f.FetchBytes(context.Background(), server.URL)
	require.NoError(t, err)

	_, err = f.FetchBytes(context.Background(), server.URL)
	require.Error(t, err)
	assert.True(t, IsFetchKind(err, KindTimeout), "got %v", err)
}
