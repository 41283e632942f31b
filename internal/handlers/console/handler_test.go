package console_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"frontdesk/infras/otel/mocks"
	consoleMocks "frontdesk/internal/domains/console/mocks"
	"frontdesk/internal/domains/console/model"
	"frontdesk/internal/domains/console/model/dto"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/internal/handlers/console"
	"frontdesk/shared"
	"frontdesk/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*consoleMocks.MockConsole, http.Handler) {
	t.Helper()

	svc := consoleMocks.NewMockConsole(gomock.NewController(t))
	handler := console.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_OpenConsole(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Open(gomock.Any()).Return(model.New("c1", time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/consoles", nil))

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "c1", body.Data.ID)
}

func TestHandler_SetDialog(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		SetDialog(gomock.Any(), "c1", model.ResourceRooms, dto.DialogRequest{Kind: "editing", Key: "101"}).
		Return(model.New("c1", time.Now()), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/consoles/c1/rooms/dialog", strings.NewReader(`{"kind":"editing","key":"101"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_SetDialogRejects(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		body     string
		wantCode int
	}{
		{name: "unknown resource", target: "/consoles/c1/bookings/dialog", body: `{"kind":"adding"}`, wantCode: http.StatusNotFound},
		{name: "unknown kind", target: "/consoles/c1/rooms/dialog", body: `{"kind":"opened"}`, wantCode: http.StatusBadRequest},
		{name: "editing without key", target: "/consoles/c1/guests/dialog", body: `{"kind":"editing"}`, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := newRouter(t)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_UpdateRoomFiltersAndView(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		UpdateRoomFilters(gomock.Any(), "c1", dto.UpdateRoomFiltersRequest{Status: shared.Ptr("available")}).
		Return(model.New("c1", time.Now()), nil)
	svc.EXPECT().Rooms(gomock.Any(), "c1").Return([]roomModel.Room{{RoomNumber: "101"}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/consoles/c1/rooms/filters", strings.NewReader(`{"status":"available"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/consoles/c1/rooms", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"roomNumber":"101"`)
}

func TestHandler_UnknownConsole(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), "gone").Return(model.Console{}, failure.ConsoleNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/consoles/gone", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"console not found"}`, rec.Body.String())
}
