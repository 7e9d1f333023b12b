package repo

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jmayer/hotelbook/internal/domain"
)

// roomHeader is the schema line of the room record set.
var roomHeader = []string{"id", "type", "pricePerNight"}

// LoadRooms reads and decodes the full room catalog.
func (s *csvStore) LoadRooms(ctx context.Context) ([]domain.Room, error) {
	records, err := readRecordSet(s.roomsPath, len(roomHeader))
	if err != nil {
		return nil, fmt.Errorf("repo.RecordStore.LoadRooms: %w", err)
	}

	rooms := make([]domain.Room, 0, len(records))
	for _, rec := range records {
		room, err := decodeRoom(rec)
		if err != nil {
			return nil, fmt.Errorf("repo.RecordStore.LoadRooms: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// writeRooms writes the room record set in full. Rooms are only ever written
// once, at seed time; the catalog is immutable afterwards.
func (s *csvStore) writeRooms(rooms []domain.Room) error {
	f, err := os.Create(s.roomsPath)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	//nolint:errcheck — csv.Writer buffers; errors surface on Flush.
	w.Write(roomHeader)
	for _, room := range rooms {
		//nolint:errcheck
		w.Write([]string{
			strconv.Itoa(room.ID),
			string(room.Type),
			formatAmount(room.PricePerNight),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// decodeRoom maps one record of the room set into a domain.Room.
func decodeRoom(rec []string) (domain.Room, error) {
	id, err := strconv.Atoi(rec[0])
	if err != nil || id <= 0 {
		return domain.Room{}, fmt.Errorf("%w: room id %q", ErrMalformedRecord, rec[0])
	}
	roomType, err := domain.ParseRoomType(rec[1])
	if err != nil {
		return domain.Room{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	price, err := strconv.ParseFloat(rec[2], 64)
	if err != nil || price < 0 {
		return domain.Room{}, fmt.Errorf("%w: room price %q", ErrMalformedRecord, rec[2])
	}
	return domain.Room{ID: id, Type: roomType, PricePerNight: price}, nil
}

// readRecordSet opens a record set, skips the header line, and returns the
// remaining records, each validated to have exactly fields columns.
// A file containing only a header (or nothing at all) yields zero records.
func readRecordSet(path string, fields int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // field count is validated per record below

	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedRecord, err)
	}

	var records [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		if len(rec) != fields {
			return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecord, fields, len(rec))
		}
		records = append(records, rec)
	}
}

// formatAmount encodes a decimal amount in its shortest form that round-trips
// exactly through ParseFloat, so save/load never drifts a total.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
