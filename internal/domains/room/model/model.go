package model

import (
	roomTypeModel "frontdesk/internal/domains/roomtype/model"
)

const (
	EntityName     = "room"
	CollectionPath = "/rooms"
)

// Room status ids as the backend enumerates them.
const (
	StatusAvailable    = 1
	StatusNotAvailable = 2
	StatusBooked       = 3
	StatusInSession    = 4
)

type Status struct {
	ID    int    `json:"id"    yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// Statuses is the order the status picker lists them in.
var Statuses = []Status{
	{ID: StatusAvailable, Label: "Available"},
	{ID: StatusInSession, Label: "In Session"},
	{ID: StatusNotAvailable, Label: "Not Available"},
	{ID: StatusBooked, Label: "Booked"},
}

func StatusLabel(id int) string {
	for _, status := range Statuses {
		if status.ID == id {
			return status.Label
		}
	}

	return "Unknown"
}

type Room struct {
	RoomNumber  string                 `json:"roomNumber"  yaml:"roomNumber"`
	FloorNumber int                    `json:"floorNumber" yaml:"floorNumber"`
	RoomType    roomTypeModel.RoomType `json:"roomType"    yaml:"roomType"`
	Status      Status                 `json:"status"      yaml:"status"`
}
