package model

import (
	"fmt"
	"time"

	guestModel "frontdesk/internal/domains/guest/model"
	roomModel "frontdesk/internal/domains/room/model"
	sessionModel "frontdesk/internal/domains/session/model"
	"frontdesk/shared/dialog"
	"frontdesk/shared/roomfilter"
)

// Resource names one of the console screens.
type Resource string

const (
	ResourceRooms    Resource = "rooms"
	ResourceGuests   Resource = "guests"
	ResourceSessions Resource = "sessions"
)

func ParseResource(value string) (Resource, error) {
	switch resource := Resource(value); resource {
	case ResourceRooms, ResourceGuests, ResourceSessions:
		return resource, nil
	}

	return "", fmt.Errorf("unknown console resource %q", value)
}

type RoomsController struct {
	Dialog dialog.State[roomModel.Room] `json:"dialog"`
	Search string                       `json:"search"`
	Status roomfilter.Status            `json:"status"`
	Order  roomfilter.Order             `json:"order"`
}

type GuestsController struct {
	Dialog dialog.State[guestModel.Guest] `json:"dialog"`
	Search string                         `json:"search"`
}

type SessionsController struct {
	Dialog dialog.State[sessionModel.Session] `json:"dialog"`
}

// Console is the screen state of one operator: which dialog each screen shows and the
// filters applied to its list.
type Console struct {
	ID       string             `json:"id"`
	Rooms    RoomsController    `json:"rooms"`
	Guests   GuestsController   `json:"guests"`
	Sessions SessionsController `json:"sessions"`
	OpenedAt time.Time          `json:"openedAt"`
}

func New(id string, now time.Time) Console {
	return Console{
		ID: id,
		Rooms: RoomsController{
			Dialog: dialog.Closed[roomModel.Room](),
			Status: roomfilter.StatusAll,
			Order:  roomfilter.OrderNone,
		},
		Guests:   GuestsController{Dialog: dialog.Closed[guestModel.Guest]()},
		Sessions: SessionsController{Dialog: dialog.Closed[sessionModel.Session]()},
		OpenedAt: now,
	}
}
