// Package domain contains the core data types for the hotel reservation
// system. This package has no dependencies on other internal packages and is
// imported by every other internal package (repo, service, handler).
package domain

import "fmt"

// RoomType is the closed set of bookable room categories.
// The persistence format and the availability filter both assume this fixed
// vocabulary, so it is modeled as a tagged type rather than an open string.
type RoomType string

const (
	RoomStandard RoomType = "STANDARD"
	RoomDeluxe   RoomType = "DELUXE"
	RoomSuite    RoomType = "SUITE"
)

// ParseRoomType converts the textual enum token into a RoomType.
// Tokens are case-sensitive, matching the durable record format.
func ParseRoomType(s string) (RoomType, error) {
	switch RoomType(s) {
	case RoomStandard, RoomDeluxe, RoomSuite:
		return RoomType(s), nil
	}
	return "", fmt.Errorf("unknown room type %q", s)
}

// Room is a single bookable unit in the catalog.
// The catalog is seeded once at first run and read-only afterwards;
// PricePerNight changing later never affects already-created reservations.
type Room struct {
	ID            int      `json:"id"`
	Type          RoomType `json:"type"`
	PricePerNight float64  `json:"price_per_night"`
}
