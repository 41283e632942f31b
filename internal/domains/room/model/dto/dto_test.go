package dto_test

import (
	"net/url"
	"testing"

	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/shared/validator"

	"github.com/stretchr/testify/assert"
)

func TestCreateRoomRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateRoomRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  dto.CreateRoomRequest{RoomNumber: "204", FloorNumber: 2, RoomTypeID: 2},
		},
		{
			name:    "room number must be three digits",
			req:     dto.CreateRoomRequest{RoomNumber: "20A", FloorNumber: 2, RoomTypeID: 2},
			wantErr: "Room number must be a 3-digit number",
		},
		{
			name:    "floor above nine",
			req:     dto.CreateRoomRequest{RoomNumber: "204", FloorNumber: 10, RoomTypeID: 2},
			wantErr: "Floor number must be a one-digit number",
		},
		{
			name:    "floor zero",
			req:     dto.CreateRoomRequest{RoomNumber: "204", FloorNumber: 0, RoomTypeID: 2},
			wantErr: "Floor number must be a one-digit number",
		},
		{
			name:    "room type missing",
			req:     dto.CreateRoomRequest{RoomNumber: "204", FloorNumber: 2},
			wantErr: "Room type is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestGetRoomsRequest_Query(t *testing.T) {
	req := dto.GetRoomsRequest{RoomTypeID: 2, Floor: 2, RoomStatusID: 1}

	assert.Equal(t, "floor=2&roomStatusId=1&roomTypeId=2", req.ToQuery().Encode())
	assert.Empty(t, dto.GetRoomsRequest{}.ToQuery())

	var parsed dto.GetRoomsRequest
	parsed.FromQuery(url.Values{"roomTypeId": {"3"}, "floor": {"x"}})

	assert.Equal(t, dto.GetRoomsRequest{RoomTypeID: 3}, parsed)
}
