package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"frontdesk/internal/cli"
	guestMocks "frontdesk/internal/domains/guest/mocks"
	guestModel "frontdesk/internal/domains/guest/model"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	roomDto "frontdesk/internal/domains/room/model/dto"
	roomTypeMocks "frontdesk/internal/domains/roomtype/mocks"
	roomTypeModel "frontdesk/internal/domains/roomtype/model"
	sessionMocks "frontdesk/internal/domains/session/mocks"
	sessionModel "frontdesk/internal/domains/session/model"
	sessionDto "frontdesk/internal/domains/session/model/dto"
	wizardMocks "frontdesk/internal/domains/wizard/mocks"
	"frontdesk/internal/domains/wizard/model"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

type fixture struct {
	app      *cli.App
	roomType *roomTypeMocks.MockRoomTypeService
	room     *roomMocks.MockRoomService
	guest    *guestMocks.MockGuestService
	session  *sessionMocks.MockSessionService
	wizard   *wizardMocks.MockWizard
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		roomType: roomTypeMocks.NewMockRoomTypeService(ctrl),
		room:     roomMocks.NewMockRoomService(ctrl),
		guest:    guestMocks.NewMockGuestService(ctrl),
		session:  sessionMocks.NewMockSessionService(ctrl),
		wizard:   wizardMocks.NewMockWizard(ctrl),
	}

	f.app = &cli.App{RoomType: f.roomType, Room: f.room, Guest: f.guest, Session: f.session, Wizard: f.wizard}

	return f
}

func (f fixture) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := cli.NewRootCmd(f.app)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestRoomsList_FilteredJSON(t *testing.T) {
	f := newFixture(t)

	f.room.EXPECT().GetAll(gomock.Any(), roomDto.GetRoomsRequest{Floor: 1}).Return([]roomModel.Room{
		{RoomNumber: "103", FloorNumber: 1, Status: roomModel.Status{ID: roomModel.StatusAvailable}},
		{RoomNumber: "101", FloorNumber: 1, Status: roomModel.Status{ID: roomModel.StatusAvailable}},
		{RoomNumber: "102", FloorNumber: 1, Status: roomModel.Status{ID: roomModel.StatusInSession}},
	}, nil)

	out, err := f.run(t, "", "rooms", "list", "--floor", "1", "--status", "available", "--sort", "ascending", "-o", "json")
	require.NoError(t, err)

	var rooms []roomModel.Room
	require.NoError(t, json.Unmarshal([]byte(out), &rooms))

	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].RoomNumber)
	assert.Equal(t, "103", rooms[1].RoomNumber)
}

func TestRoomsList_Table(t *testing.T) {
	f := newFixture(t)

	f.room.EXPECT().GetAll(gomock.Any(), roomDto.GetRoomsRequest{}).Return([]roomModel.Room{
		{RoomNumber: "101", FloorNumber: 1, RoomType: roomTypeModel.RoomType{Name: "Single"}, Status: roomModel.Status{ID: 1, Label: "Available"}},
	}, nil)

	out, err := f.run(t, "", "rooms", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "ROOM")
	assert.Contains(t, out, "Single")
	assert.Contains(t, out, "Available")
}

func TestRoomTypesList_YAML(t *testing.T) {
	f := newFixture(t)

	f.roomType.EXPECT().GetAll(gomock.Any()).Return([]roomTypeModel.RoomType{
		{ID: 2, Name: "Double Bed Room", Pax: 2, PriceWithBreakfast: 50000, PriceWithoutBreakfast: 40000},
	}, nil)

	out, err := f.run(t, "", "room-types", "list", "-o", "yaml")
	require.NoError(t, err)

	var roomTypes []roomTypeModel.RoomType
	require.NoError(t, yaml.Unmarshal([]byte(out), &roomTypes))
	assert.Equal(t, "Double Bed Room", roomTypes[0].Name)
}

func TestInvalidOutputFormat(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, "", "room-types", "list", "-o", "xml")

	assert.ErrorContains(t, err, "invalid output format")
}

func TestGuestsNIC(t *testing.T) {
	f := newFixture(t)

	f.guest.EXPECT().GetByNIC(gomock.Any(), "991234567V").Return(guestModel.Guest{ID: "U1", Name: "Jo", NICCardNum: "991234567V"}, nil)

	out, err := f.run(t, "", "guests", "nic", "991234567V")
	require.NoError(t, err)

	assert.Contains(t, out, "Jo")
}

func TestSessionsEnd(t *testing.T) {
	f := newFixture(t)

	f.session.EXPECT().
		End(gomock.Any(), 7, gomock.Any()).
		DoAndReturn(func(_ context.Context, id int, req sessionDto.EndSessionRequest) (sessionModel.Session, error) {
			assert.Equal(t, 2026, req.ActualCheckOut.Year())

			return sessionModel.Session{ID: id, RoomNumber: "204", ActualCheckOut: &req.ActualCheckOut}, nil
		})

	out, err := f.run(t, "", "sessions", "end", "7", "--at", "2026-10-18T10:00:00Z")
	require.NoError(t, err)

	assert.Contains(t, out, "Ended session 7 for room 204")
}

func TestSessionsDeleteRejectsBadID(t *testing.T) {
	f := newFixture(t)

	_, err := f.run(t, "", "sessions", "delete", "seven")

	assert.EqualError(t, err, "invalid session id: seven")
}

func wizardAt(step model.Step) model.Wizard {
	return model.Wizard{
		ID:             "w1",
		Step:           step,
		RoomTypes:      []roomTypeModel.RoomType{{ID: 2, Name: "Double Bed Room", Pax: 2}},
		AvailableRooms: []roomModel.Room{{RoomNumber: "204"}},
		MaxOccupancy:   2,
	}
}

func TestCheckin_Flags(t *testing.T) {
	f := newFixture(t)

	withGuest := wizardAt(model.StepGuestSelection)
	withGuest.Draft.GuestIDs = []string{"U1"}

	gomock.InOrder(
		f.wizard.EXPECT().Open(gomock.Any()).Return(wizardAt(model.StepRoomSelection), nil),
		f.wizard.EXPECT().SelectRoomType(gomock.Any(), "w1", 2).Return(wizardAt(model.StepRoomSelection), nil),
		f.wizard.EXPECT().SelectFloor(gomock.Any(), "w1", 2).Return(wizardAt(model.StepRoomSelection), nil),
		f.wizard.EXPECT().SelectRoom(gomock.Any(), "w1", "204").Return(wizardAt(model.StepRoomSelection), nil),
		f.wizard.EXPECT().SetExtraBeds(gomock.Any(), "w1", 0).Return(wizardAt(model.StepRoomSelection), nil),
		f.wizard.EXPECT().SetBreakfast(gomock.Any(), "w1", true).Return(wizardAt(model.StepRoomSelection), nil),
		f.wizard.EXPECT().SetNote(gomock.Any(), "w1", "").Return(wizardAt(model.StepRoomSelection), nil),
		f.wizard.EXPECT().Next(gomock.Any(), "w1").Return(wizardAt(model.StepGuestSelection), nil),
		f.wizard.EXPECT().AddGuest(gomock.Any(), "w1", "U1").Return(withGuest, nil),
		f.wizard.EXPECT().Next(gomock.Any(), "w1").Return(wizardAt(model.StepConfirmation), nil),
		f.wizard.EXPECT().Confirmation(gomock.Any(), "w1").Return(model.Summary{RoomNumber: "204", GuestCount: 1, TotalPrice: 50000}, nil),
		f.wizard.EXPECT().Submit(gomock.Any(), "w1").Return(sessionModel.Session{ID: 7, RoomNumber: "204"}, nil),
	)

	out, err := f.run(t, "",
		"checkin", "--room-type", "2", "--floor", "2", "--room", "204",
		"--guest", "U1", "--extra-beds", "0", "--breakfast", "--note", "", "--yes")
	require.NoError(t, err)

	assert.Contains(t, out, "50000.00")
	assert.Contains(t, out, "Session 7 created for room 204")
}

func TestCheckin_InteractiveRetriesAndCancelsOnFailure(t *testing.T) {
	f := newFixture(t)

	withGuest := wizardAt(model.StepGuestSelection)
	withGuest.Draft.GuestIDs = []string{"U1"}

	gomock.InOrder(
		f.wizard.EXPECT().Open(gomock.Any()).Return(wizardAt(model.StepRoomSelection), nil),
		f.wizard.EXPECT().SelectRoomType(gomock.Any(), "w1", 2).Return(wizardAt(model.StepRoomSelection), nil),
		f.wizard.EXPECT().SelectFloor(gomock.Any(), "w1", 12).Return(model.Wizard{}, failure.BadRequestFromString("Floor number must be a one-digit number")),
		f.wizard.EXPECT().SelectFloor(gomock.Any(), "w1", 2).Return(wizardAt(model.StepRoomSelection), nil),
		f.wizard.EXPECT().SelectRoom(gomock.Any(), "w1", "204").Return(wizardAt(model.StepRoomSelection), nil),
		f.wizard.EXPECT().SetExtraBeds(gomock.Any(), "w1", 0).Return(wizardAt(model.StepRoomSelection), nil),
		f.wizard.EXPECT().SetBreakfast(gomock.Any(), "w1", false).Return(wizardAt(model.StepRoomSelection), nil),
		f.wizard.EXPECT().SetNote(gomock.Any(), "w1", "").Return(wizardAt(model.StepRoomSelection), nil),
		f.wizard.EXPECT().Next(gomock.Any(), "w1").Return(wizardAt(model.StepGuestSelection), nil),
		f.wizard.EXPECT().SearchGuests(gomock.Any(), "w1", "jo").Return(model.GuestSearch{Query: "jo", Results: []guestModel.Guest{{ID: "U1", Name: "Jo"}}}, nil),
		f.wizard.EXPECT().AddGuest(gomock.Any(), "w1", "U1").Return(withGuest, nil),
		f.wizard.EXPECT().Next(gomock.Any(), "w1").Return(wizardAt(model.StepConfirmation), nil),
		f.wizard.EXPECT().Confirmation(gomock.Any(), "w1").Return(model.Summary{RoomNumber: "204", GuestCount: 1}, nil),
		f.wizard.EXPECT().Submit(gomock.Any(), "w1").Return(sessionModel.Session{}, failure.Conflict("Room is not available")),
		f.wizard.EXPECT().Cancel(gomock.Any(), "w1").Return(nil),
	)

	// type, bad floor, floor, room, extra beds, breakfast, note, search, pick, done, confirm
	stdin := "2\n12\n2\n204\n\nn\n\njo\nU1\n\ny\n"

	out, err := f.run(t, stdin, "checkin")

	assert.ErrorContains(t, err, "Room is not available")
	assert.Contains(t, out, "Floor number must be a one-digit number")
	assert.Contains(t, out, "1 of 2 guests selected")
}
