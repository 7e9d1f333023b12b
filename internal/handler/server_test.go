package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jmayer/hotelbook/internal/domain"
	"github.com/jmayer/hotelbook/internal/handler"
)

// ---- mock service ----------------------------------------------------------

// mockHotel is a hand-written test double for handler.HotelService.
// Unset func fields return zero values so each test only wires what it uses.
type mockHotel struct {
	allRooms      func() []domain.Room
	findAvailable func(roomType *domain.RoomType, from, to time.Time) []domain.Room
	book          func(ctx context.Context, guestName string, roomID int, checkIn, checkOut time.Time) (domain.Reservation, error)
	cancel        func(ctx context.Context, id uuid.UUID) (bool, error)
	pay           func(ctx context.Context, id uuid.UUID) (bool, error)
	get           func(id uuid.UUID) (domain.Reservation, bool)
	listAll       func() []domain.Reservation
	export        func() []domain.ExportRow
}

func (m *mockHotel) AllRooms() []domain.Room {
	if m.allRooms == nil {
		return nil
	}
	return m.allRooms()
}

func (m *mockHotel) FindAvailable(roomType *domain.RoomType, from, to time.Time) []domain.Room {
	if m.findAvailable == nil {
		return []domain.Room{}
	}
	return m.findAvailable(roomType, from, to)
}

func (m *mockHotel) Book(ctx context.Context, guestName string, roomID int, checkIn, checkOut time.Time) (domain.Reservation, error) {
	return m.book(ctx, guestName, roomID, checkIn, checkOut)
}

func (m *mockHotel) Cancel(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.cancel(ctx, id)
}

func (m *mockHotel) Pay(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.pay(ctx, id)
}

func (m *mockHotel) Get(id uuid.UUID) (domain.Reservation, bool) {
	return m.get(id)
}

func (m *mockHotel) ListAll() []domain.Reservation {
	if m.listAll == nil {
		return []domain.Reservation{}
	}
	return m.listAll()
}

func (m *mockHotel) Export() []domain.ExportRow {
	if m.export == nil {
		return []domain.ExportRow{}
	}
	return m.export()
}

// compile-time check: mockHotel must satisfy handler.HotelService.
var _ handler.HotelService = (*mockHotel)(nil)

// ---- helpers ---------------------------------------------------------------

// serve routes the request through the full handler router and records the
// response.
func serve(t *testing.T, hotel handler.HotelService, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.NewServer(hotel).Routes().ServeHTTP(rec, req)
	return rec
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}
