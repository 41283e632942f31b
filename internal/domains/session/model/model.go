package model

import "time"

const (
	EntityName     = "session"
	CollectionPath = "/sessions"
)

type Session struct {
	ID                int        `json:"id"                yaml:"id"`
	RoomNumber        string     `json:"roomNumber"        yaml:"roomNumber"`
	NumberOfExtraBeds int        `json:"numberOfExtraBeds" yaml:"numberOfExtraBeds"`
	ActualCheckIn     time.Time  `json:"actualCheckIn"     yaml:"actualCheckIn"`
	ActualCheckOut    *time.Time `json:"actualCheckOut"    yaml:"actualCheckOut"`
	IsActive          bool       `json:"isActive"          yaml:"isActive"`
	CreatedAt         time.Time  `json:"createdAt"         yaml:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"         yaml:"updatedAt"`
}
