package service

import (
	"github.com/jmayer/hotelbook/internal/domain"
)

// Export returns one ExportRow per live reservation in insertion order,
// denormalized with the catalog fields of the booked room. Reservations whose
// room is missing from the catalog still export with zero room fields rather
// than being dropped.
func (h *Hotel) Export() []domain.ExportRow {
	h.mu.Lock()
	defer h.mu.Unlock()

	rows := make([]domain.ExportRow, 0, len(h.order))
	for _, id := range h.order {
		res := h.reservations[id]
		room := h.rooms[res.RoomID]
		rows = append(rows, domain.ExportRow{
			ReservationID: res.ID,
			GuestName:     res.GuestName,
			RoomID:        res.RoomID,
			RoomType:      room.Type,
			PricePerNight: room.PricePerNight,
			CheckIn:       res.CheckIn.Format(domain.DateFormat),
			CheckOut:      res.CheckOut.Format(domain.DateFormat),
			Nights:        res.Nights(),
			Paid:          res.Paid,
			TotalAmount:   res.TotalAmount,
		})
	}
	return rows
}
