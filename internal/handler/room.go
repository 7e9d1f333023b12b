package handler

import (
	"net/http"
	"time"

	"github.com/jmayer/hotelbook/internal/domain"
)

// RoomResponse is the JSON representation of a catalog room.
type RoomResponse struct {
	ID            int             `json:"id"`
	Type          domain.RoomType `json:"type"`
	PricePerNight float64         `json:"price_per_night"`
}

// ListRooms handles GET /rooms.
// It returns the full catalog ordered by ascending room id.
func (s *Server) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms := s.hotel.AllRooms()

	out := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, roomToResponse(room))
	}
	writeJSON(w, http.StatusOK, out)
}

// FindAvailableRooms handles GET /rooms/available?from=&to=[&type=].
// from and to are required calendar dates; type optionally narrows the
// search to one room category.
func (s *Server) FindAvailableRooms(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var roomType *domain.RoomType
	if raw := r.URL.Query().Get("type"); raw != "" {
		t, err := domain.ParseRoomType(raw)
		if err != nil {
			badRequest(w, err.Error())
			return
		}
		roomType = &t
	}

	rooms := s.hotel.FindAvailable(roomType, from, to)

	out := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, roomToResponse(room))
	}
	writeJSON(w, http.StatusOK, out)
}

// roomToResponse maps a domain.Room to its JSON representation.
func roomToResponse(room domain.Room) RoomResponse {
	return RoomResponse{ID: room.ID, Type: room.Type, PricePerNight: room.PricePerNight}
}

// parseDateRange parses and validates the required from/to query parameters.
// A range where to is not strictly after from would make the overlap scan
// vacuously report every room available, so it is rejected here before the
// search runs.
func parseDateRange(fromRaw, toRaw string) (from, to time.Time, err error) {
	if fromRaw == "" || toRaw == "" {
		return time.Time{}, time.Time{}, errDateRangeRequired
	}
	from, err = time.Parse(domain.DateFormat, fromRaw)
	if err != nil {
		return time.Time{}, time.Time{}, errBadDate(fromRaw)
	}
	to, err = time.Parse(domain.DateFormat, toRaw)
	if err != nil {
		return time.Time{}, time.Time{}, errBadDate(toRaw)
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, errReversedDateRange
	}
	return from, to, nil
}
