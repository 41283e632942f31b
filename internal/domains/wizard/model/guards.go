package model

import (
	"fmt"
	"slices"

	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
)

// GuardResult is the outcome of a precondition check.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts a rejected result into a bad request.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}

	return failure.BadRequestFromString(r.Reason)
}

func allowed() GuardResult {
	return GuardResult{Allowed: true}
}

func rejected(format string, args ...any) GuardResult {
	return GuardResult{Reason: fmt.Sprintf(format, args...)}
}

// AdvanceContext is what the Next transition is decided on.
type AdvanceContext struct {
	Step         Step
	Draft        Draft
	MaxOccupancy int
}

// CanAdvance gates Next for each step.
// Rules:
// - room selection needs room type, floor, a three digit room number and extra beds in bounds
// - guest selection needs at least one guest and no more than the occupancy
// - confirmation is the last step
func CanAdvance(ctx AdvanceContext) GuardResult {
	switch ctx.Step {
	case StepRoomSelection:
		return canLeaveRoomSelection(ctx.Draft)
	case StepGuestSelection:
		return checkGuestCount(len(ctx.Draft.GuestIDs), ctx.MaxOccupancy)
	case StepConfirmation:
		return rejected("already at confirmation")
	}

	return rejected("unknown step %d", int(ctx.Step))
}

func canLeaveRoomSelection(d Draft) GuardResult {
	if d.SelectedRoomTypeID <= 0 {
		return rejected("Please select a room type")
	}

	if d.SelectedFloor <= 0 {
		return rejected("Please select a floor")
	}

	if d.RoomNumber == "" {
		return rejected("Room number is required")
	}

	if !validator.IsRoomNumber(d.RoomNumber) {
		return rejected("Room number must be a 3-digit number")
	}

	if d.NumberOfExtraBeds < MinExtraBeds || d.NumberOfExtraBeds > MaxExtraBeds {
		return rejected("numberOfExtraBeds must be between %d and %d", MinExtraBeds, MaxExtraBeds)
	}

	return allowed()
}

func checkGuestCount(count, maxOccupancy int) GuardResult {
	if count < 1 {
		return rejected("At least one guest is required")
	}

	if count > maxOccupancy {
		return rejected("%d guests exceed the room occupancy of %d", count, maxOccupancy)
	}

	return allowed()
}

// AddGuestContext is what adding one guest is decided on.
type AddGuestContext struct {
	Draft        Draft
	GuestID      string
	MaxOccupancy int
}

// CanAddGuest rejects duplicates and guests beyond the occupancy.
func CanAddGuest(ctx AddGuestContext) GuardResult {
	if ctx.GuestID == "" {
		return rejected("guest id is required")
	}

	if ctx.Draft.HasGuest(ctx.GuestID) {
		return rejected("guest %s is already selected", ctx.GuestID)
	}

	if len(ctx.Draft.GuestIDs) >= ctx.MaxOccupancy {
		return rejected("room occupancy of %d reached", ctx.MaxOccupancy)
	}

	return allowed()
}

// CanSelectRoom accepts only a three digit number from the current candidates.
func CanSelectRoom(roomNumber string, candidates []string) GuardResult {
	if !validator.IsRoomNumber(roomNumber) {
		return rejected("Room number must be a 3-digit number")
	}

	if !slices.Contains(candidates, roomNumber) {
		return rejected("room %s is not available for the selected room type and floor", roomNumber)
	}

	return allowed()
}

func CanSelectFloor(floor, minFloor, maxFloor int) GuardResult {
	if floor < minFloor || floor > maxFloor {
		return rejected("Floor number must be a one-digit number")
	}

	return allowed()
}

// SubmitContext is what the final create is decided on.
type SubmitContext struct {
	Step         Step
	Draft        Draft
	MaxOccupancy int
}

// CanSubmit allows the create only from confirmation with 1..occupancy guests.
func CanSubmit(ctx SubmitContext) GuardResult {
	if ctx.Step != StepConfirmation {
		return rejected("can only submit from confirmation (current step: %s)", ctx.Step)
	}

	if res := canLeaveRoomSelection(ctx.Draft); !res.Allowed {
		return res
	}

	return checkGuestCount(len(ctx.Draft.GuestIDs), ctx.MaxOccupancy)
}
