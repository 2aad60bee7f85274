package brapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GetPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quote/PETR4", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("token"))
		_, _ = w.Write([]byte(`{"results":[{"symbol":"PETR4","regularMarketPrice":35.27}]}`))
	}))
	defer srv.Close()

	svc := NewService("secret", WithBaseURL(srv.URL))
	q, ok, err := svc.GetPrice(context.Background(), "PETR4")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "PETR4", q.Symbol)
	assert.Equal(t, "35.27", q.Price.String())
}

func TestService_GetPrice_MissingPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	svc := NewService("", WithBaseURL(srv.URL))
	_, ok, err := svc.GetPrice(context.Background(), "PETR4")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_GetPrice_RetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"results":[{"symbol":"PETR4","regularMarketPrice":22.59}]}`))
	}))
	defer srv.Close()

	svc := NewService("", WithBaseURL(srv.URL), WithBackoff(time.Millisecond, 5*time.Millisecond))
	q, ok, err := svc.GetPrice(context.Background(), "PETR4")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "22.59", q.Price.String())
	assert.Equal(t, int32(3), calls.Load())
}

func TestService_GetPrice_FailsAfterMaxAttempts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewService("", WithBaseURL(srv.URL), WithBackoff(time.Millisecond, 5*time.Millisecond))
	_, _, err := svc.GetPrice(context.Background(), "PETR4")
	assert.Error(t, err)
}

func TestService_GetPrice_DoesNotRetryClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := NewService("", WithBaseURL(srv.URL))
	_, _, err := svc.GetPrice(context.Background(), "NOPE3")
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
