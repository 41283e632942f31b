package dto

import "time"

// CreateSessionRequest is the persistence payload a finished check-in is reduced to.
type CreateSessionRequest struct {
	RoomNumber          string    `json:"roomNumber"          validate:"roomnumber"`
	GuestIDs            []string  `json:"guestIds"            validate:"min=1,unique,dive,required"`
	NumberOfExtraBeds   int       `json:"numberOfExtraBeds"   validate:"min=0,max=10"`
	ActualCheckIn       time.Time `json:"actualCheckIn"       validate:"required"`
	IsBreakfastIncluded bool      `json:"isBreakfastIncluded"`
	Note                string    `json:"note,omitempty"      validate:"max=500"`
}

type EndSessionRequest struct {
	ActualCheckOut time.Time `json:"actualCheckOut" validate:"required"`
}
