package domain

import (
	"github.com/google/uuid"
)

// ExportRow is a single row in the full-data export: one row per reservation,
// denormalized with the catalog fields of the booked room so the export is
// useful without a second lookup.
type ExportRow struct {
	ReservationID uuid.UUID
	GuestName     string
	RoomID        int
	RoomType      RoomType
	PricePerNight float64
	CheckIn       string // "2006-01-02" formatted date
	CheckOut      string
	Nights        int
	Paid          bool
	TotalAmount   float64
}
