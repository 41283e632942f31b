package model_test

import (
	"testing"
	"time"

	guestModel "frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/wizard/model"

	"github.com/stretchr/testify/assert"
)

func readyDraft(guests ...string) model.Draft {
	draft := model.NewDraft(time.Now())
	draft.SelectRoomType(2)
	draft.SelectFloor(2)
	draft.RoomNumber = "204"

	for _, id := range guests {
		draft.AddGuest(guestModel.Guest{ID: id})
	}

	return draft
}

func TestCanAdvance(t *testing.T) {
	tests := []struct {
		name        string
		ctx         model.AdvanceContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "room selection complete",
			ctx:         model.AdvanceContext{Step: model.StepRoomSelection, Draft: readyDraft()},
			wantAllowed: true,
		},
		{
			name:       "room selection without room type",
			ctx:        model.AdvanceContext{Step: model.StepRoomSelection, Draft: model.NewDraft(time.Now())},
			wantReason: "Please select a room type",
		},
		{
			name: "room selection without room number",
			ctx: model.AdvanceContext{Step: model.StepRoomSelection, Draft: func() model.Draft {
				d := readyDraft()
				d.SelectFloor(3)
				return d
			}()},
			wantReason: "Room number is required",
		},
		{
			name:       "guest selection without guests",
			ctx:        model.AdvanceContext{Step: model.StepGuestSelection, Draft: readyDraft(), MaxOccupancy: 2},
			wantReason: "At least one guest is required",
		},
		{
			name:        "guest selection with one guest",
			ctx:         model.AdvanceContext{Step: model.StepGuestSelection, Draft: readyDraft("U1"), MaxOccupancy: 2},
			wantAllowed: true,
		},
		{
			name:       "guest selection above occupancy",
			ctx:        model.AdvanceContext{Step: model.StepGuestSelection, Draft: readyDraft("U1", "U2", "U3"), MaxOccupancy: 2},
			wantReason: "3 guests exceed the room occupancy of 2",
		},
		{
			name:       "confirmation is last",
			ctx:        model.AdvanceContext{Step: model.StepConfirmation, Draft: readyDraft("U1"), MaxOccupancy: 2},
			wantReason: "already at confirmation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.CanAdvance(tt.ctx)

			assert.Equal(t, tt.wantAllowed, got.Allowed)
			assert.Equal(t, tt.wantReason, got.Reason)
		})
	}
}

func TestCanAddGuest(t *testing.T) {
	assert.True(t, model.CanAddGuest(model.AddGuestContext{Draft: readyDraft("U1"), GuestID: "U2", MaxOccupancy: 2}).Allowed)

	dup := model.CanAddGuest(model.AddGuestContext{Draft: readyDraft("U1"), GuestID: "U1", MaxOccupancy: 2})
	assert.False(t, dup.Allowed)
	assert.Error(t, dup.Error())

	full := model.CanAddGuest(model.AddGuestContext{Draft: readyDraft("U1", "U2"), GuestID: "U3", MaxOccupancy: 2})
	assert.Equal(t, "room occupancy of 2 reached", full.Reason)
}

func TestCanSubmit_OccupancyBounds(t *testing.T) {
	// pax 2 + 1 extra bed
	const maxOccupancy = 3

	for count, want := range map[int]bool{0: false, 1: true, 2: true, 3: true, 4: false} {
		guests := make([]string, count)
		for i := range guests {
			guests[i] = string(rune('A' + i))
		}

		got := model.CanSubmit(model.SubmitContext{
			Step:         model.StepConfirmation,
			Draft:        readyDraft(guests...),
			MaxOccupancy: maxOccupancy,
		})

		assert.Equal(t, want, got.Allowed, "guest count %d", count)
	}
}

func TestCanSubmit_OnlyFromConfirmation(t *testing.T) {
	got := model.CanSubmit(model.SubmitContext{Step: model.StepGuestSelection, Draft: readyDraft("U1"), MaxOccupancy: 2})

	assert.False(t, got.Allowed)
	assert.Equal(t, "can only submit from confirmation (current step: guestSelection)", got.Reason)
}

func TestCanSelectRoomAndFloor(t *testing.T) {
	candidates := []string{"201", "204"}

	assert.True(t, model.CanSelectRoom("204", candidates).Allowed)
	assert.False(t, model.CanSelectRoom("205", candidates).Allowed)
	assert.Equal(t, "Room number must be a 3-digit number", model.CanSelectRoom("20", candidates).Reason)

	assert.True(t, model.CanSelectFloor(9, 1, 9).Allowed)
	assert.False(t, model.CanSelectFloor(0, 1, 9).Allowed)
	assert.False(t, model.CanSelectFloor(10, 1, 9).Allowed)
}
