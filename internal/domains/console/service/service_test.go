package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/console/model"
	"frontdesk/internal/domains/console/model/dto"
	"frontdesk/internal/domains/console/service"
	guestMocks "frontdesk/internal/domains/guest/mocks"
	guestModel "frontdesk/internal/domains/guest/model"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	roomDto "frontdesk/internal/domains/room/model/dto"
	roomTypeModel "frontdesk/internal/domains/roomtype/model"
	sessionMocks "frontdesk/internal/domains/session/mocks"
	sessionModel "frontdesk/internal/domains/session/model"
	"frontdesk/shared"
	"frontdesk/shared/dialog"
	"frontdesk/shared/failure"
	"frontdesk/shared/roomfilter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc     service.Console
	room    *roomMocks.MockRoomService
	guest   *guestMocks.MockGuestService
	session *sessionMocks.MockSessionService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	return newFixtureWithConfig(t, &config.Config{})
}

func newFixtureWithConfig(t *testing.T, cfg *config.Config) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		room:    roomMocks.NewMockRoomService(ctrl),
		guest:   guestMocks.NewMockGuestService(ctrl),
		session: sessionMocks.NewMockSessionService(ctrl),
	}
	f.svc = service.New(cfg, mocks.NewOtel(), f.room, f.guest, f.session)

	return f
}

func room(number string, typeName string, statusID int) roomModel.Room {
	return roomModel.Room{
		RoomNumber: number,
		RoomType:   roomTypeModel.RoomType{Name: typeName},
		Status:     roomModel.Status{ID: statusID, Label: roomModel.StatusLabel(statusID)},
	}
}

func TestConsole_OpenDefaults(t *testing.T) {
	f := newFixture(t)

	c := f.svc.Open(context.Background())

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, roomfilter.StatusAll, c.Rooms.Status)
	assert.Equal(t, roomfilter.OrderNone, c.Rooms.Order)
	assert.False(t, c.Rooms.Dialog.IsOpen())
	assert.False(t, c.Guests.Dialog.IsOpen())
	assert.False(t, c.Sessions.Dialog.IsOpen())
}

func TestConsole_RoomsView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.svc.Open(ctx)

	all := []roomModel.Room{
		room("103", "Double", roomModel.StatusAvailable),
		room("101", "Single", roomModel.StatusAvailable),
		room("102", "Double", roomModel.StatusBooked),
	}

	f.room.EXPECT().GetAll(gomock.Any(), roomDto.GetRoomsRequest{}).Return(all, nil).Times(2)

	got, err := f.svc.Rooms(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, all, got)

	_, err = f.svc.UpdateRoomFilters(ctx, c.ID, dto.UpdateRoomFiltersRequest{
		Status: shared.Ptr("available"),
		Order:  shared.Ptr("ascending"),
	})
	require.NoError(t, err)

	got, err = f.svc.Rooms(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "101", got[0].RoomNumber)
	assert.Equal(t, "103", got[1].RoomNumber)

	// input untouched
	assert.Equal(t, "103", all[0].RoomNumber)
}

func TestConsole_UpdateRoomFiltersRejectsUnknownValues(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.svc.Open(ctx)

	_, err := f.svc.UpdateRoomFilters(ctx, c.ID, dto.UpdateRoomFiltersRequest{
		Search: shared.Ptr("double"),
		Status: shared.Ptr("vacant"),
	})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	after, err := f.svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "", after.Rooms.Search)
	assert.Equal(t, roomfilter.StatusAll, after.Rooms.Status)
}

func TestConsole_GuestsView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.svc.Open(ctx)

	f.guest.EXPECT().GetAll(gomock.Any()).Return([]guestModel.Guest{{ID: "U1"}, {ID: "U2"}}, nil)

	got, err := f.svc.Guests(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = f.svc.UpdateGuestFilters(ctx, c.ID, dto.UpdateGuestFiltersRequest{Search: "  jo "})
	require.NoError(t, err)

	f.guest.EXPECT().Search(gomock.Any(), "jo").Return([]guestModel.Guest{{ID: "U2"}}, nil)

	got, err = f.svc.Guests(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []guestModel.Guest{{ID: "U2"}}, got)
}

func TestConsole_SetDialog(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.svc.Open(ctx)

	c, err := f.svc.SetDialog(ctx, c.ID, model.ResourceRooms, dto.DialogRequest{Kind: "adding"})
	require.NoError(t, err)
	assert.Equal(t, dialog.KindAdding, c.Rooms.Dialog.Kind())

	_, hasEntity := c.Rooms.Dialog.Entity()
	assert.False(t, hasEntity)

	f.guest.EXPECT().Get(gomock.Any(), "U1").Return(guestModel.Guest{ID: "U1", Name: "Jo"}, nil)

	c, err = f.svc.SetDialog(ctx, c.ID, model.ResourceGuests, dto.DialogRequest{Kind: "editing", Key: "U1"})
	require.NoError(t, err)
	assert.Equal(t, dialog.KindEditing, c.Guests.Dialog.Kind())

	guest, _ := c.Guests.Dialog.Entity()
	assert.Equal(t, "Jo", guest.Name)

	f.session.EXPECT().Get(gomock.Any(), 7).Return(sessionModel.Session{ID: 7}, nil)

	c, err = f.svc.SetDialog(ctx, c.ID, model.ResourceSessions, dto.DialogRequest{Kind: "deleting", Key: "7"})
	require.NoError(t, err)
	assert.Equal(t, dialog.KindDeleting, c.Sessions.Dialog.Kind())

	c, err = f.svc.SetDialog(ctx, c.ID, model.ResourceGuests, dto.DialogRequest{Kind: "closed"})
	require.NoError(t, err)
	assert.False(t, c.Guests.Dialog.IsOpen())

	_, hasEntity = c.Guests.Dialog.Entity()
	assert.False(t, hasEntity)

	// other screens keep their dialogs
	assert.Equal(t, dialog.KindAdding, c.Rooms.Dialog.Kind())
}

func TestConsole_SetDialogErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.svc.Open(ctx)

	_, err := f.svc.SetDialog(ctx, c.ID, model.ResourceRooms, dto.DialogRequest{Kind: "editing"})
	assert.EqualError(t, err, "key is required")

	_, err = f.svc.SetDialog(ctx, c.ID, model.ResourceSessions, dto.DialogRequest{Kind: "deleting", Key: "abc"})
	assert.EqualError(t, err, "session id must be a number")

	f.room.EXPECT().Get(gomock.Any(), "404").Return(roomModel.Room{}, failure.NotFound("room"))

	_, err = f.svc.SetDialog(ctx, c.ID, model.ResourceRooms, dto.DialogRequest{Kind: "editing", Key: "404"})
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	after, err := f.svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, after.Rooms.Dialog.IsOpen())
}

func TestConsole_Close(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c := f.svc.Open(ctx)

	require.NoError(t, f.svc.Close(ctx, c.ID))

	_, err := f.svc.Get(ctx, c.ID)
	assert.ErrorIs(t, err, failure.ConsoleNotFound)

	_, err = f.svc.Sessions(ctx, c.ID)
	assert.ErrorIs(t, err, failure.ConsoleNotFound)
}

func TestConsole_IdleConsoleIsDiscarded(t *testing.T) {
	cfg := &config.Config{}
	cfg.Console.IdleTimeout = 200 * time.Millisecond

	f := newFixtureWithConfig(t, cfg)
	ctx := context.Background()

	idle := f.svc.Open(ctx)
	active := f.svc.Open(ctx)

	time.Sleep(120 * time.Millisecond)

	_, err := f.svc.Get(ctx, active.ID)
	require.NoError(t, err)

	time.Sleep(120 * time.Millisecond)

	_, err = f.svc.Get(ctx, idle.ID)
	assert.ErrorIs(t, err, failure.ConsoleNotFound)

	_, err = f.svc.Get(ctx, active.ID)
	assert.NoError(t, err)
}
