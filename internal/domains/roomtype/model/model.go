package model

const (
	EntityName     = "room type"
	CollectionPath = "/room-types"
)

type RoomType struct {
	ID                    int     `json:"id"                    yaml:"id"`
	Name                  string  `json:"name"                  yaml:"name"`
	Pax                   int     `json:"pax"                   yaml:"pax"`
	PriceWithBreakfast    float64 `json:"priceWithBreakfast"    yaml:"priceWithBreakfast"`
	PriceWithoutBreakfast float64 `json:"priceWithoutBreakfast" yaml:"priceWithoutBreakfast"`
}

// Price returns the nightly base price for the chosen breakfast tier.
func (r RoomType) Price(breakfastIncluded bool) float64 {
	if breakfastIncluded {
		return r.PriceWithBreakfast
	}

	return r.PriceWithoutBreakfast
}

// FindByID returns the room type with id and whether it was present.
func FindByID(roomTypes []RoomType, id int) (RoomType, bool) {
	for _, roomType := range roomTypes {
		if roomType.ID == id {
			return roomType, true
		}
	}

	return RoomType{}, false
}
