package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateFormat is the textual form of all calendar dates in the system.
const DateFormat = "2006-01-02"

// Reservation is a booked stay on a single room.
// The stay interval is half-open: [CheckIn, CheckOut). A check-out on day X
// and another guest's check-in on day X do not overlap.
//
// TotalAmount is fixed at booking time (price per night × nights) and never
// recomputed, even if the catalog price changes later. Paid is the only field
// that mutates after creation.
type Reservation struct {
	ID          uuid.UUID `json:"id"`
	GuestName   string    `json:"guest_name"`
	RoomID      int       `json:"room_id"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	Paid        bool      `json:"paid"`
	TotalAmount float64   `json:"total_amount"`
}

// Nights returns the length of the stay in nights.
func (r Reservation) Nights() int {
	return NightsBetween(r.CheckIn, r.CheckOut)
}

// NightsBetween returns the number of nights between two calendar dates.
// Both arguments are expected to be midnight-truncated dates.
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn) / (24 * time.Hour))
}

// Overlaps reports whether the reservation's stay intersects [from, to).
// Half-open intervals make back-to-back stays on the same room legal.
func (r Reservation) Overlaps(from, to time.Time) bool {
	return !(!to.After(r.CheckIn) || !from.Before(r.CheckOut))
}
