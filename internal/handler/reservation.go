package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/jmayer/hotelbook/internal/domain"
)

// CreateReservationRequest is the body of POST /reservations.
// Dates use the calendar-date codec (YYYY-MM-DD); the stay interval is
// half-open, so check_out is the morning the guest leaves.
type CreateReservationRequest struct {
	GuestName string             `json:"guest_name"`
	RoomID    int                `json:"room_id"`
	CheckIn   openapi_types.Date `json:"check_in"`
	CheckOut  openapi_types.Date `json:"check_out"`
}

// ReservationResponse is the JSON representation of a reservation.
type ReservationResponse struct {
	ID          uuid.UUID          `json:"id"`
	GuestName   string             `json:"guest_name"`
	RoomID      int                `json:"room_id"`
	CheckIn     openapi_types.Date `json:"check_in"`
	CheckOut    openapi_types.Date `json:"check_out"`
	Nights      int                `json:"nights"`
	Paid        bool               `json:"paid"`
	TotalAmount float64            `json:"total_amount"`
}

// Pagination echoes the effective paging parameters on list responses.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ListReservationsResponse is the body of GET /reservations.
type ListReservationsResponse struct {
	Data       []ReservationResponse `json:"data"`
	Pagination Pagination            `json:"pagination"`
}

// PayResponse is the body of POST /reservations/{id}/pay.
type PayResponse struct {
	Paid bool `json:"paid"`
}

// CreateReservation handles POST /reservations.
func (s *Server) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	if req.GuestName == "" {
		badRequest(w, "guest_name is required")
		return
	}

	res, err := s.hotel.Book(r.Context(), req.GuestName, req.RoomID, req.CheckIn.Time, req.CheckOut.Time)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRoom):
			writeError(w, http.StatusUnprocessableEntity, "invalid_room", unwrapMessage(err))
		case errors.Is(err, domain.ErrRoomUnavailable):
			writeError(w, http.StatusConflict, "room_unavailable", unwrapMessage(err))
		case errors.Is(err, domain.ErrInvalidDateRange):
			writeError(w, http.StatusUnprocessableEntity, "invalid_date_range", unwrapMessage(err))
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", "failed to persist reservation")
		}
		return
	}

	writeJSON(w, http.StatusCreated, reservationToResponse(res))
}

// ListReservations handles GET /reservations.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20,
// max=100). Reservations are listed first-booked-first.
func (s *Server) ListReservations(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(
		queryInt(r, "page"),
		queryInt(r, "limit"),
	)

	all := s.hotel.ListAll()
	total := len(all)

	// Offset can overflow negative on a huge but parseable page number;
	// clamp to [0, total] so the slice below is always in bounds.
	start := params.Offset()
	if start < 0 || start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	data := make([]ReservationResponse, 0, end-start)
	for _, res := range all[start:end] {
		data = append(data, reservationToResponse(res))
	}
	writeJSON(w, http.StatusOK, ListReservationsResponse{
		Data:       data,
		Pagination: Pagination{Page: params.Page, Limit: params.Limit, Total: total},
	})
}

// GetReservation handles GET /reservations/{id}.
func (s *Server) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := reservationID(w, r)
	if !ok {
		return
	}

	res, ok := s.hotel.Get(id)
	if !ok {
		notFound(w, "reservation not found")
		return
	}
	writeJSON(w, http.StatusOK, reservationToResponse(res))
}

// PayReservation handles POST /reservations/{id}/pay.
// Payment is simulated and idempotent: paying twice is not an error.
func (s *Server) PayReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := reservationID(w, r)
	if !ok {
		return
	}

	paid, err := s.hotel.Pay(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to persist payment")
		return
	}
	if !paid {
		notFound(w, "reservation not found")
		return
	}
	writeJSON(w, http.StatusOK, PayResponse{Paid: true})
}

// CancelReservation handles DELETE /reservations/{id}.
func (s *Server) CancelReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := reservationID(w, r)
	if !ok {
		return
	}

	removed, err := s.hotel.Cancel(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to persist cancellation")
		return
	}
	if !removed {
		notFound(w, "reservation not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// reservationID parses the {id} URL parameter, writing a 422 on failure.
func reservationID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, "invalid reservation id")
		return uuid.UUID{}, false
	}
	return id, true
}

// reservationToResponse maps a domain.Reservation to its JSON representation.
func reservationToResponse(res domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          res.ID,
		GuestName:   res.GuestName,
		RoomID:      res.RoomID,
		CheckIn:     openapi_types.Date{Time: res.CheckIn},
		CheckOut:    openapi_types.Date{Time: res.CheckOut},
		Nights:      res.Nights(),
		Paid:        res.Paid,
		TotalAmount: res.TotalAmount,
	}
}

// queryInt returns the named query parameter as *int, or nil when absent or
// not a number.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
