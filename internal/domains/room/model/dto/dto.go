package dto

import (
	"net/url"
	"strconv"
	"strings"

	"frontdesk/shared/constant"
)

type CreateRoomRequest struct {
	RoomNumber  string `json:"roomNumber"  validate:"roomnumber"`
	FloorNumber int    `json:"floorNumber" validate:"min=1,max=9"`
	RoomTypeID  int    `json:"roomTypeId"  validate:"min=1"`
}

func (r *CreateRoomRequest) Normalize() {
	r.RoomNumber = strings.TrimSpace(r.RoomNumber)
}

type UpdateRoomRequest struct {
	FloorNumber int `json:"floorNumber" validate:"min=1,max=9"`
	RoomTypeID  int `json:"roomTypeId"  validate:"min=1"`
}

// GetRoomsRequest narrows the room list on the backend. Zero values are left out of the query.
type GetRoomsRequest struct {
	RoomTypeID   int `json:"roomTypeId"   validate:"min=0"`
	Floor        int `json:"floor"        validate:"min=0,max=9"`
	RoomStatusID int `json:"roomStatusId" validate:"min=0,max=4"`
}

func (r GetRoomsRequest) ToQuery() url.Values {
	query := url.Values{}

	if r.RoomTypeID > 0 {
		query.Set(constant.RequestParamRoomTypeID, strconv.Itoa(r.RoomTypeID))
	}

	if r.Floor > 0 {
		query.Set(constant.RequestParamFloor, strconv.Itoa(r.Floor))
	}

	if r.RoomStatusID > 0 {
		query.Set(constant.RequestParamRoomStatus, strconv.Itoa(r.RoomStatusID))
	}

	return query
}

// FromQuery reads the three filters, ignoring values that are not integers.
func (r *GetRoomsRequest) FromQuery(query url.Values) {
	r.RoomTypeID = atoi(query.Get(constant.RequestParamRoomTypeID))
	r.Floor = atoi(query.Get(constant.RequestParamFloor))
	r.RoomStatusID = atoi(query.Get(constant.RequestParamRoomStatus))
}

func atoi(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}

	return n
}
