// Package repo contains all durable-storage access for the hotel reservation
// system. The storage medium is two flat CSV record sets (rooms.csv and
// reservations.csv), each a header line followed by one record per line.
// No business logic lives here — only encoding, decoding, and file handling.
package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmayer/hotelbook/internal/domain"
)

// ErrMalformedRecord is returned when a stored record violates its field
// contract on load. It is fatal at startup: a partially-loaded catalog or
// reservation set is never accepted.
var ErrMalformedRecord = errors.New("malformed record")

// RecordStore defines the persistence operations for the room catalog and the
// reservation set. The service layer depends on this interface, not the CSV
// implementation, which allows the engine to be unit-tested with a mock.
type RecordStore interface {
	// Init ensures the storage location exists and seeds any missing record
	// set: the default room inventory when rooms are absent, a header-only
	// file when reservations are absent.
	Init(ctx context.Context) error

	// LoadRooms reads the full room catalog.
	// Returns ErrMalformedRecord (wrapped) on any invalid record.
	LoadRooms(ctx context.Context) ([]domain.Room, error)

	// LoadReservations reads the full reservation set in file order, which is
	// the insertion order of the store that last wrote it.
	LoadReservations(ctx context.Context) ([]domain.Reservation, error)

	// SaveReservations rewrites the entire reservation record set from the
	// given snapshot. The rewrite goes through a temp file and an atomic
	// rename so a crash mid-write never leaves a torn record set behind.
	SaveReservations(ctx context.Context, reservations []domain.Reservation) error
}

// csvStore is the flat-file implementation of RecordStore.
type csvStore struct {
	dataDir          string
	roomsPath        string
	reservationsPath string
}

// NewCSVStore constructs a RecordStore rooted at dataDir.
// The directory is created lazily by Init.
func NewCSVStore(dataDir string) RecordStore {
	return &csvStore{
		dataDir:          dataDir,
		roomsPath:        filepath.Join(dataDir, "rooms.csv"),
		reservationsPath: filepath.Join(dataDir, "reservations.csv"),
	}
}

// seedRooms is the fixed default inventory written once when no room record
// set exists: a small hotel with two standard rooms, two deluxe, one suite.
var seedRooms = []domain.Room{
	{ID: 101, Type: domain.RoomStandard, PricePerNight: 2000},
	{ID: 102, Type: domain.RoomStandard, PricePerNight: 2000},
	{ID: 201, Type: domain.RoomDeluxe, PricePerNight: 3500},
	{ID: 202, Type: domain.RoomDeluxe, PricePerNight: 3500},
	{ID: 301, Type: domain.RoomSuite, PricePerNight: 6000},
}

// Init creates the data directory and seeds missing record sets.
// Any storage error aborts startup; the caller is expected to fail fast.
func (s *csvStore) Init(ctx context.Context) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("repo.RecordStore.Init: create data dir: %w", err)
	}

	if _, err := os.Stat(s.roomsPath); errors.Is(err, os.ErrNotExist) {
		if err := s.writeRooms(seedRooms); err != nil {
			return fmt.Errorf("repo.RecordStore.Init: seed rooms: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("repo.RecordStore.Init: stat rooms: %w", err)
	}

	if _, err := os.Stat(s.reservationsPath); errors.Is(err, os.ErrNotExist) {
		if err := s.SaveReservations(ctx, nil); err != nil {
			return fmt.Errorf("repo.RecordStore.Init: seed reservations: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("repo.RecordStore.Init: stat reservations: %w", err)
	}

	return nil
}
