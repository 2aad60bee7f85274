package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/b3watch/stock-alert/internal/service/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Send(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	svc := NewService(srv.URL)
	err := svc.Send(context.Background(), notification.Message{
		Title: "[SELL] Alert for PETR4",
		Body:  "Current price: 35.00",
	})
	require.NoError(t, err)
	assert.Contains(t, got["content"], "[SELL] Alert for PETR4")
	assert.Contains(t, got["content"], "Current price: 35.00")
}

func TestService_Send_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	svc := NewService(srv.URL)
	err := svc.Send(context.Background(), notification.Message{Title: "t", Body: "b"})
	assert.Error(t, err)
}
