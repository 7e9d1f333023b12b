// Package service contains the reservation engine: the in-memory room catalog
// and reservation store, the availability algorithm, and the booking, cancel,
// and payment transitions. The engine owns no file handling — it depends on
// the repo.RecordStore interface and persists the full reservation set after
// every mutation.
package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jmayer/hotelbook/internal/domain"
	"github.com/jmayer/hotelbook/internal/repo"
)

// Hotel is the reservation engine. All operations serialize on one mutex:
// the no-overlap invariant requires that "check availability + insert" and
// "mutate + persist" each run as a single unit once multiple HTTP requests
// can hit the engine at once.
type Hotel struct {
	store repo.RecordStore

	mu           sync.Mutex
	rooms        map[int]domain.Room
	reservations map[uuid.UUID]*domain.Reservation
	order        []uuid.UUID // insertion order, first booked first

	newID func() uuid.UUID
}

// Option configures a Hotel at construction time.
type Option func(*Hotel)

// WithIDGenerator overrides the reservation ID generator.
// Tests inject a deterministic generator; production uses uuid.New.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(h *Hotel) { h.newID = gen }
}

// NewHotel constructs an engine backed by the given record store.
// Call Init before any other method.
func NewHotel(store repo.RecordStore, opts ...Option) *Hotel {
	h := &Hotel{
		store:        store,
		rooms:        make(map[int]domain.Room),
		reservations: make(map[uuid.UUID]*domain.Reservation),
		newID:        uuid.New,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Init prepares durable storage and loads the catalog and reservation set
// into memory. Any storage or decode error aborts the load whole — a
// partially-loaded engine is never returned to the caller.
func (h *Hotel) Init(ctx context.Context) error {
	if err := h.store.Init(ctx); err != nil {
		return fmt.Errorf("service.Hotel.Init: %w", err)
	}
	rooms, err := h.store.LoadRooms(ctx)
	if err != nil {
		return fmt.Errorf("service.Hotel.Init: %w", err)
	}
	reservations, err := h.store.LoadReservations(ctx)
	if err != nil {
		return fmt.Errorf("service.Hotel.Init: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.rooms = make(map[int]domain.Room, len(rooms))
	for _, room := range rooms {
		h.rooms[room.ID] = room
	}
	h.reservations = make(map[uuid.UUID]*domain.Reservation, len(reservations))
	h.order = h.order[:0]
	for _, res := range reservations {
		res := res
		h.reservations[res.ID] = &res
		h.order = append(h.order, res.ID)
	}
	return nil
}

// AllRooms returns the full catalog ordered by ascending room id.
func (h *Hotel) AllRooms() []domain.Room {
	h.mu.Lock()
	defer h.mu.Unlock()

	rooms := make([]domain.Room, 0, len(h.rooms))
	for _, room := range h.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms
}

// IsAvailable reports whether the room is free for the half-open interval
// [from, to). It is always evaluated against the current store state —
// never cached, since the store mutates between calls.
func (h *Hotel) IsAvailable(roomID int, from, to time.Time) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.isAvailableLocked(roomID, from, to)
}

// isAvailableLocked is the overlap scan. Callers must hold mu.
func (h *Hotel) isAvailableLocked(roomID int, from, to time.Time) bool {
	for _, res := range h.reservations {
		if res.RoomID != roomID {
			continue
		}
		if res.Overlaps(from, to) {
			return false
		}
	}
	return true
}

// FindAvailable returns the rooms free for [from, to), filtered by type when
// roomType is non-nil, ordered by ascending id. Always returns a non-nil
// slice so callers can safely range over it.
func (h *Hotel) FindAvailable(roomType *domain.RoomType, from, to time.Time) []domain.Room {
	h.mu.Lock()
	defer h.mu.Unlock()

	rooms := make([]domain.Room, 0, len(h.rooms))
	for _, room := range h.rooms {
		if roomType != nil && room.Type != *roomType {
			continue
		}
		if h.isAvailableLocked(room.ID, from, to) {
			rooms = append(rooms, room)
		}
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms
}

// Book creates a reservation for the guest on the given room and interval.
// Preconditions are checked in order and each failure is distinct:
// unknown room (domain.ErrInvalidRoom), interval overlap
// (domain.ErrRoomUnavailable), check-out not after check-in
// (domain.ErrInvalidDateRange). A rejected booking never mutates the store.
// On success the reservation is inserted unpaid and the full set persisted.
func (h *Hotel) Book(ctx context.Context, guestName string, roomID int, checkIn, checkOut time.Time) (domain.Reservation, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[roomID]
	if !ok {
		return domain.Reservation{}, fmt.Errorf("%w: no room with id %d", domain.ErrInvalidRoom, roomID)
	}
	if !h.isAvailableLocked(roomID, checkIn, checkOut) {
		return domain.Reservation{}, fmt.Errorf("%w: room %d is booked within %s to %s",
			domain.ErrRoomUnavailable, roomID,
			checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
	}
	nights := domain.NightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return domain.Reservation{}, fmt.Errorf("%w: check-out must be after check-in", domain.ErrInvalidDateRange)
	}

	res := domain.Reservation{
		ID:          h.newID(),
		GuestName:   guestName,
		RoomID:      roomID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Paid:        false,
		TotalAmount: room.PricePerNight * float64(nights),
	}
	h.reservations[res.ID] = &res
	h.order = append(h.order, res.ID)

	if err := h.persistLocked(ctx); err != nil {
		return res, fmt.Errorf("service.Hotel.Book: %w", err)
	}
	return res, nil
}

// Cancel removes the reservation and persists. A missing id is a normal
// outcome, reported as false — not an error.
func (h *Hotel) Cancel(ctx context.Context, id uuid.UUID) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.reservations[id]; !ok {
		return false, nil
	}
	delete(h.reservations, id)
	for i, oid := range h.order {
		if oid == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}

	if err := h.persistLocked(ctx); err != nil {
		return true, fmt.Errorf("service.Hotel.Cancel: %w", err)
	}
	return true, nil
}

// Pay marks the reservation paid and persists. Idempotent: paying an
// already-paid reservation returns true without rewriting storage.
// A missing id returns false, not an error.
func (h *Hotel) Pay(ctx context.Context, id uuid.UUID) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	res, ok := h.reservations[id]
	if !ok {
		return false, nil
	}
	if res.Paid {
		return true, nil
	}
	res.Paid = true

	if err := h.persistLocked(ctx); err != nil {
		return true, fmt.Errorf("service.Hotel.Pay: %w", err)
	}
	return true, nil
}

// Get returns the reservation with the given id, or false if absent.
func (h *Hotel) Get(id uuid.UUID) (domain.Reservation, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	res, ok := h.reservations[id]
	if !ok {
		return domain.Reservation{}, false
	}
	return *res, true
}

// ListAll returns every live reservation in insertion order
// (first booked, first listed). Always returns a non-nil slice.
func (h *Hotel) ListAll() []domain.Reservation {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked()
}

// persistLocked rewrites the full reservation set. Callers must hold mu.
// The in-memory mutation has already applied when this runs; on failure the
// durable state lags by exactly this one operation.
func (h *Hotel) persistLocked(ctx context.Context) error {
	return h.store.SaveReservations(ctx, h.snapshotLocked())
}

// snapshotLocked copies the reservation set in insertion order.
// Callers must hold mu.
func (h *Hotel) snapshotLocked() []domain.Reservation {
	out := make([]domain.Reservation, 0, len(h.order))
	for _, id := range h.order {
		out = append(out, *h.reservations[id])
	}
	return out
}
