// Package model holds the check-in wizard draft and the pure rules that gate it.
// Nothing here performs I/O; the service drives fetching and storage.
package model

import (
	"fmt"
	"slices"
	"time"

	guestModel "frontdesk/internal/domains/guest/model"
	roomModel "frontdesk/internal/domains/room/model"
	roomTypeModel "frontdesk/internal/domains/roomtype/model"
	sessionDto "frontdesk/internal/domains/session/model/dto"
)

const (
	MinExtraBeds = 0
	MaxExtraBeds = 10
)

type Step int

const (
	StepRoomSelection Step = iota + 1
	StepGuestSelection
	StepConfirmation
)

var stepNames = map[Step]string{
	StepRoomSelection:  "roomSelection",
	StepGuestSelection: "guestSelection",
	StepConfirmation:   "confirmation",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}

	return fmt.Sprintf("step(%d)", int(s))
}

func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Draft is the in-progress session built across the three steps.
type Draft struct {
	SelectedRoomTypeID  int                `json:"selectedRoomTypeId"`
	SelectedFloor       int                `json:"selectedFloor"`
	RoomNumber          string             `json:"roomNumber"`
	GuestIDs            []string           `json:"guestIds"`
	SelectedGuests      []guestModel.Guest `json:"selectedGuests"`
	NumberOfExtraBeds   int                `json:"numberOfExtraBeds"`
	IsBreakfastIncluded bool               `json:"isBreakfastIncluded"`
	Note                string             `json:"note"`
	ActualCheckIn       time.Time          `json:"actualCheckIn"`
}

func NewDraft(checkIn time.Time) Draft {
	return Draft{
		GuestIDs:       []string{},
		SelectedGuests: []guestModel.Guest{},
		ActualCheckIn:  checkIn,
	}
}

// SelectRoomType always clears the room number; it was only valid for the old pair.
func (d *Draft) SelectRoomType(roomTypeID int) {
	d.SelectedRoomTypeID = roomTypeID
	d.RoomNumber = ""
}

func (d *Draft) SelectFloor(floor int) {
	d.SelectedFloor = floor
	d.RoomNumber = ""
}

// SetExtraBeds clamps count into [MinExtraBeds, MaxExtraBeds] and returns the stored value.
func (d *Draft) SetExtraBeds(count int) int {
	d.NumberOfExtraBeds = min(max(count, MinExtraBeds), MaxExtraBeds)

	return d.NumberOfExtraBeds
}

// RoomQueryReady reports whether both inputs of the available-room query are chosen.
func (d *Draft) RoomQueryReady() bool {
	return d.SelectedRoomTypeID > 0 && d.SelectedFloor > 0
}

func (d *Draft) HasGuest(id string) bool {
	return slices.Contains(d.GuestIDs, id)
}

// AddGuest appends guest to both lists. Callers check CanAddGuest first.
func (d *Draft) AddGuest(guest guestModel.Guest) {
	d.GuestIDs = append(d.GuestIDs, guest.ID)
	d.SelectedGuests = append(d.SelectedGuests, guest)
}

// RemoveGuest drops id from both lists. Removing an absent id is a no-op.
func (d *Draft) RemoveGuest(id string) bool {
	index := slices.Index(d.GuestIDs, id)
	if index < 0 {
		return false
	}

	d.GuestIDs = slices.Delete(d.GuestIDs, index, index+1)
	d.SelectedGuests = slices.DeleteFunc(d.SelectedGuests, func(g guestModel.Guest) bool {
		return g.ID == id
	})

	return true
}

// Payload reduces the draft to what the backend persists. The room type and floor only
// drive the room query and are left out.
func (d Draft) Payload() sessionDto.CreateSessionRequest {
	return sessionDto.CreateSessionRequest{
		RoomNumber:          d.RoomNumber,
		GuestIDs:            slices.Clone(d.GuestIDs),
		NumberOfExtraBeds:   d.NumberOfExtraBeds,
		ActualCheckIn:       d.ActualCheckIn,
		IsBreakfastIncluded: d.IsBreakfastIncluded,
		Note:                d.Note,
	}
}

// MaxOccupancy is the room type's pax plus extra beds.
func MaxOccupancy(roomType roomTypeModel.RoomType, extraBeds int) int {
	return roomType.Pax + extraBeds
}

// TotalPrice scales the breakfast tier price by one plus the extra beds, not by guest count.
func TotalPrice(roomType roomTypeModel.RoomType, breakfastIncluded bool, extraBeds int) float64 {
	return roomType.Price(breakfastIncluded) * float64(1+extraBeds)
}

// GuestSearch is the last search shown in the guest step.
type GuestSearch struct {
	Query      string             `json:"query"`
	Results    []guestModel.Guest `json:"results"`
	Superseded bool               `json:"superseded"`
}

// Summary is the read-only confirmation step.
type Summary struct {
	RoomTypeName        string             `json:"roomTypeName"`
	RoomNumber          string             `json:"roomNumber"`
	Floor               int                `json:"floor"`
	ActualCheckIn       time.Time          `json:"actualCheckIn"`
	NumberOfExtraBeds   int                `json:"numberOfExtraBeds"`
	GuestCount          int                `json:"guestCount"`
	Guests              []guestModel.Guest `json:"guests"`
	IsBreakfastIncluded bool               `json:"isBreakfastIncluded"`
	TotalPrice          float64            `json:"totalPrice"`
	Note                string             `json:"note"`
}

func BuildSummary(d Draft, roomType roomTypeModel.RoomType) Summary {
	return Summary{
		RoomTypeName:        roomType.Name,
		RoomNumber:          d.RoomNumber,
		Floor:               d.SelectedFloor,
		ActualCheckIn:       d.ActualCheckIn,
		NumberOfExtraBeds:   d.NumberOfExtraBeds,
		GuestCount:          len(d.GuestIDs),
		Guests:              slices.Clone(d.SelectedGuests),
		IsBreakfastIncluded: d.IsBreakfastIncluded,
		TotalPrice:          TotalPrice(roomType, d.IsBreakfastIncluded, d.NumberOfExtraBeds),
		Note:                d.Note,
	}
}

// Wizard is the view of one open wizard returned to callers.
type Wizard struct {
	ID             string                   `json:"id"`
	Step           Step                     `json:"step"`
	Draft          Draft                    `json:"draft"`
	RoomTypes      []roomTypeModel.RoomType `json:"roomTypes"`
	AvailableRooms []roomModel.Room         `json:"availableRooms"`
	RoomsLoading   bool                     `json:"roomsLoading"`
	MaxOccupancy   int                      `json:"maxOccupancy"`
	GuestSearch    GuestSearch              `json:"guestSearch"`
	CanAdvance     bool                     `json:"canAdvance"`
	CanSubmit      bool                     `json:"canSubmit"`
	Reason         string                   `json:"reason,omitempty"`
}
