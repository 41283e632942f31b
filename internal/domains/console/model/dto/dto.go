package dto

// UpdateRoomFiltersRequest changes only the fields that are present.
type UpdateRoomFiltersRequest struct {
	Search *string `json:"search" validate:"omitempty,max=100"`
	Status *string `json:"status"`
	Order  *string `json:"order"`
}

type UpdateGuestFiltersRequest struct {
	Search string `json:"search" validate:"max=100"`
}

// DialogRequest moves a screen's dialog. Key names the row for editing and deleting:
// a room number, a guest id or a session id.
type DialogRequest struct {
	Kind string `json:"kind" validate:"required,oneof=closed adding editing deleting"`
	Key  string `json:"key"  validate:"required_if=Kind editing,required_if=Kind deleting"`
}
