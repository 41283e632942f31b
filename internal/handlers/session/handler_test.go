package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"frontdesk/infras/otel/mocks"
	sessionMocks "frontdesk/internal/domains/session/mocks"
	"frontdesk/internal/domains/session/model"
	"frontdesk/internal/domains/session/model/dto"
	"frontdesk/internal/handlers/session"
	"frontdesk/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type sessionEnvelope struct {
	Data model.Session `json:"data"`
}

func newRouter(t *testing.T) (*sessionMocks.MockSessionService, http.Handler) {
	t.Helper()

	svc := sessionMocks.NewMockSessionService(gomock.NewController(t))
	handler := session.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_EndSession(t *testing.T) {
	svc, router := newRouter(t)

	checkOut := time.Date(2026, 10, 20, 10, 0, 0, 0, time.UTC)

	svc.EXPECT().
		End(gomock.Any(), 9, dto.EndSessionRequest{ActualCheckOut: checkOut}).
		Return(model.Session{ID: 9, RoomNumber: "204", ActualCheckOut: &checkOut}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/sessions/9", strings.NewReader(`{"actualCheckOut":"2026-10-20T10:00:00Z"}`)))

	require.Equal(t, http.StatusOK, rec.Code)

	var body sessionEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 9, body.Data.ID)
	require.NotNil(t, body.Data.ActualCheckOut)
	assert.True(t, checkOut.Equal(*body.Data.ActualCheckOut))
	assert.False(t, body.Data.IsActive)
}

func TestHandler_EndSessionRequiresCheckOut(t *testing.T) {
	_, router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/sessions/9", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_EndSessionNotFound(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().End(gomock.Any(), 404, gomock.Any()).Return(model.Session{}, failure.NotFound("Session not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/sessions/404", strings.NewReader(`{"actualCheckOut":"2026-10-20T10:00:00Z"}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Session not found"}`, rec.Body.String())
}

func TestHandler_NonNumericIDIsNotFound(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Delete(gomock.Any(), 0).Return(failure.NotFound("session not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/sessions/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_CreateSession(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.CreateSessionRequest) (model.Session, error) {
			assert.Equal(t, "204", req.RoomNumber)
			assert.Equal(t, []string{"U1"}, req.GuestIDs)

			return model.Session{ID: 7, RoomNumber: req.RoomNumber, IsActive: true}, nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(
		`{"roomNumber":"204","guestIds":["U1"],"numberOfExtraBeds":0,"actualCheckIn":"2026-10-18T14:00:00Z","isBreakfastIncluded":true}`,
	)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var body sessionEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 7, body.Data.ID)
}

func TestHandler_CreateSessionWithoutGuests(t *testing.T) {
	_, router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(
		`{"roomNumber":"204","guestIds":[],"actualCheckIn":"2026-10-18T14:00:00Z"}`,
	)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"At least one guest is required"}`, rec.Body.String())
}
