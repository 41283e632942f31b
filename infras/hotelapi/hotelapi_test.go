package hotelapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/hotelapi"
	"frontdesk/infras/otel/mocks"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newClient(t *testing.T, handler http.HandlerFunc) hotelapi.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL + "/api/"
	cfg.Backend.MaxRetry = 3
	cfg.Backend.RetryWaitMillis = 1
	cfg.Backend.StaticBearerToken = "static-token"

	return hotelapi.NewWithHTTPClient(cfg, mocks.NewOtel(), server.Client())
}

func TestClient_GetDecodesEnvelope(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/guests", r.URL.Path)
		assert.Equal(t, "Jo", r.URL.Query().Get("query"))
		assert.Equal(t, "Bearer static-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]any{"data": []guest{{ID: "U1", Name: "Jo"}}})
	})

	var got []guest
	err := client.Get(context.Background(), "/guests", url.Values{"query": {"Jo"}}, &got)

	require.NoError(t, err)
	assert.Equal(t, []guest{{ID: "U1", Name: "Jo"}}, got)
}

func TestClient_ForwardsContextToken(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer operator", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	})

	ctx := hotelapi.WithBearerToken(context.Background(), "operator")

	require.NoError(t, client.Delete(ctx, "/guests/U1", nil))
}

func TestClient_GetRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32

	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"data": guest{ID: "U1"}})
	})

	var got guest
	require.NoError(t, client.Get(context.Background(), "/guests/U1", nil, &got))
	assert.Equal(t, "U1", got.ID)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_GetDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32

	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "Guest not found"})
	})

	err := client.Get(context.Background(), "/guests/U9", nil, &guest{})

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Contains(t, err.Error(), "Guest not found")
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_MutationsAreSentOnce(t *testing.T) {
	var calls atomic.Int32

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := client.Post(context.Background(), "/sessions", map[string]any{"roomNumber": "204"}, nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	assert.Contains(t, err.Error(), hotelapi.MessageFallback)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_ErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     any
		out      any
		wantCode int
		wantMsg  string
	}{
		{
			name:     "title is used when message is missing",
			status:   http.StatusBadRequest,
			body:     map[string]any{"title": "One or more validation errors occurred."},
			wantCode: http.StatusBadRequest,
			wantMsg:  "One or more validation errors occurred.",
		},
		{
			name:     "not modified",
			status:   http.StatusNotModified,
			wantCode: http.StatusNotModified,
			wantMsg:  hotelapi.MessageNotModified,
		},
		{
			name:     "no content when a body was expected",
			status:   http.StatusNoContent,
			out:      &guest{},
			wantCode: http.StatusNotFound,
			wantMsg:  hotelapi.MessageNoContent,
		},
		{
			name:     "conflict falls back to generic message",
			status:   http.StatusConflict,
			wantCode: http.StatusConflict,
			wantMsg:  hotelapi.MessageFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != nil {
					_ = json.NewEncoder(w).Encode(tt.body)
				}
			})

			err := client.Put(context.Background(), "/rooms/204", map[string]any{}, tt.out)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestClient_UnauthorizedIsSessionExpired(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "token expired"})
	})

	err := client.Patch(context.Background(), "/sessions/S1", map[string]any{}, nil)

	require.Error(t, err)
	assert.True(t, failure.IsSessionExpired(err))
	assert.ErrorIs(t, err, failure.SessionExpired)
}

func TestClient_NoContentWithoutBodyIsSuccess(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.Delete(context.Background(), "/sessions/S1", nil))
}

func TestClient_UnreachableBackend(t *testing.T) {
	cfg := &config.Config{}
	cfg.Backend.BaseURL = "http://127.0.0.1:1"
	cfg.Backend.MaxRetry = 1

	client := hotelapi.NewWithHTTPClient(cfg, mocks.NewOtel(), http.DefaultClient)

	err := client.Get(context.Background(), "/room-types", nil, &[]guest{})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
}
