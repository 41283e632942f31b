// Package roomfilter composes the status, text and room-number ordering applied to room lists.
// Every function here is pure and leaves its input untouched.
package roomfilter

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"frontdesk/internal/domains/room/model"
	"frontdesk/shared/failure"
)

type Status string

const (
	StatusAll          Status = "all"
	StatusAvailable    Status = "available"
	StatusNotAvailable Status = "notAvailable"
	StatusBooked       Status = "booked"
	StatusInSession    Status = "inSession"
)

type Order string

const (
	OrderNone       Order = ""
	OrderAscending  Order = "ascending"
	OrderDescending Order = "descending"
)

var statusIDs = map[Status]int{
	StatusAvailable:    model.StatusAvailable,
	StatusNotAvailable: model.StatusNotAvailable,
	StatusBooked:       model.StatusBooked,
	StatusInSession:    model.StatusInSession,
}

// ParseStatus accepts the status filter names; an empty value means all.
func ParseStatus(value string) (Status, error) {
	status := Status(value)
	if status == "" || status == StatusAll {
		return StatusAll, nil
	}

	if _, ok := statusIDs[status]; ok {
		return status, nil
	}

	return StatusAll, failure.BadRequestFromString("status must be one of all available notAvailable booked inSession")
}

func ParseOrder(value string) (Order, error) {
	switch order := Order(value); order {
	case OrderNone, OrderAscending, OrderDescending:
		return order, nil
	}

	return OrderNone, failure.BadRequestFromString("sort must be one of ascending descending")
}

type Predicate func(room model.Room) bool

// StatusFilter matches rooms in status. StatusAll and unknown values let every room through.
func StatusFilter(status Status) Predicate {
	id, ok := statusIDs[status]
	if !ok {
		return func(model.Room) bool { return true }
	}

	return func(room model.Room) bool {
		return room.Status.ID == id
	}
}

// SearchFilter is a case-insensitive substring match on the room type name or the room number.
func SearchFilter(term string) Predicate {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return func(model.Room) bool { return true }
	}

	return func(room model.Room) bool {
		return strings.Contains(strings.ToLower(room.RoomType.Name), needle) ||
			strings.Contains(strings.ToLower(room.RoomNumber), needle)
	}
}

// Compare orders rooms by numeric room number. Non-numeric numbers sort after numeric ones.
func Compare(order Order) func(a, b model.Room) int {
	return func(a, b model.Room) int {
		result := compareRoomNumbers(a.RoomNumber, b.RoomNumber)
		if order == OrderDescending {
			return -result
		}

		return result
	}
}

func compareRoomNumbers(a, b string) int {
	numA, errA := strconv.Atoi(a)
	numB, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(numA, numB)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// Filter returns the rooms matching every predicate, in input order.
func Filter(rooms []model.Room, predicates ...Predicate) []model.Room {
	res := make([]model.Room, 0, len(rooms))

	for _, room := range rooms {
		if matchesAll(room, predicates) {
			res = append(res, room)
		}
	}

	return res
}

func matchesAll(room model.Room, predicates []Predicate) bool {
	for _, predicate := range predicates {
		if !predicate(room) {
			return false
		}
	}

	return true
}

// FilterAndSort applies status and search filters, then a stable sort when order is set.
func FilterAndSort(rooms []model.Room, term string, status Status, order Order) []model.Room {
	res := Filter(rooms, StatusFilter(status), SearchFilter(term))

	if order != OrderNone {
		slices.SortStableFunc(res, Compare(order))
	}

	return res
}
