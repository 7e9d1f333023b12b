// Package handler implements the HTTP handlers for the hotel reservation API.
// All handlers are methods on Server. Methods are split into resource-specific
// files (room.go, reservation.go, export.go, health.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jmayer/hotelbook/internal/domain"
)

// HotelService defines the engine operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching storage or the service layer.
type HotelService interface {
	AllRooms() []domain.Room
	FindAvailable(roomType *domain.RoomType, from, to time.Time) []domain.Room
	Book(ctx context.Context, guestName string, roomID int, checkIn, checkOut time.Time) (domain.Reservation, error)
	Cancel(ctx context.Context, id uuid.UUID) (bool, error)
	Pay(ctx context.Context, id uuid.UUID) (bool, error)
	Get(id uuid.UUID) (domain.Reservation, bool)
	ListAll() []domain.Reservation
	Export() []domain.ExportRow
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	hotel HotelService
}

// NewServer constructs the Server with all its dependencies.
func NewServer(hotel HotelService) *Server {
	return &Server{hotel: hotel}
}

// Routes returns the router for the full API surface.
// Mount it at / in main.go.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Get("/rooms", s.ListRooms)
	r.Get("/rooms/available", s.FindAvailableRooms)

	r.Post("/reservations", s.CreateReservation)
	r.Get("/reservations", s.ListReservations)
	r.Get("/reservations/{id}", s.GetReservation)
	r.Post("/reservations/{id}/pay", s.PayReservation)
	r.Delete("/reservations/{id}", s.CancelReservation)

	r.Get("/export", s.GetExport)

	return r
}
