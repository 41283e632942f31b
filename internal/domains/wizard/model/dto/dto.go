package dto

import "time"

// UpdateDraftRequest carries any subset of the draft fields. Fields are applied in
// declaration order so a room number is checked against the rooms of the new type and floor.
type UpdateDraftRequest struct {
	RoomTypeID          *int       `json:"roomTypeId"          validate:"omitempty,min=1"`
	Floor               *int       `json:"floor"`
	RoomNumber          *string    `json:"roomNumber"`
	NumberOfExtraBeds   *int       `json:"numberOfExtraBeds"`
	IsBreakfastIncluded *bool      `json:"isBreakfastIncluded"`
	ActualCheckIn       *time.Time `json:"actualCheckIn"`
	Note                *string    `json:"note"                validate:"omitempty,max=500"`
}

type AddGuestRequest struct {
	GuestID string `json:"guestId" validate:"required"`
}

type SearchGuestsRequest struct {
	Query string `json:"query"`
}
