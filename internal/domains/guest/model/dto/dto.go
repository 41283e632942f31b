package dto

import "strings"

type UpsertGuestRequest struct {
	Name       string `json:"name"       validate:"required,max=100"`
	Phone      string `json:"phone"      validate:"required,max=30"`
	Email      string `json:"email"      validate:"required,email"`
	Address    string `json:"address"    validate:"required,max=255"`
	NICCardNum string `json:"nicCardNum" validate:"required,max=30"`
}

// Normalize trims surrounding whitespace so "  " fails the required check.
func (r *UpsertGuestRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.Address = strings.TrimSpace(r.Address)
	r.NICCardNum = strings.TrimSpace(r.NICCardNum)
}

type SearchGuestsRequest struct {
	Query string `json:"query" validate:"required,min=2"`
}
