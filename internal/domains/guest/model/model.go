package model

import "time"

const (
	EntityName     = "guest"
	CollectionPath = "/guests"
	NICCardSegment = "nic-card"
)

type Guest struct {
	ID         string    `json:"id"         yaml:"id"`
	Name       string    `json:"name"       yaml:"name"`
	Phone      string    `json:"phone"      yaml:"phone"`
	Email      string    `json:"email"      yaml:"email"`
	Address    string    `json:"address"    yaml:"address"`
	NICCardNum string    `json:"nicCardNum" yaml:"nicCardNum"`
	CreatedAt  time.Time `json:"createdAt"  yaml:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"  yaml:"updatedAt"`
}
