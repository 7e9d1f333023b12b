package repo

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmayer/hotelbook/internal/domain"
)

// reservationHeader is the schema line of the reservation record set.
var reservationHeader = []string{"id", "guestName", "roomId", "checkIn", "checkOut", "paid", "totalAmount"}

// LoadReservations reads and decodes the full reservation set in file order.
func (s *csvStore) LoadReservations(ctx context.Context) ([]domain.Reservation, error) {
	records, err := readRecordSet(s.reservationsPath, len(reservationHeader))
	if err != nil {
		return nil, fmt.Errorf("repo.RecordStore.LoadReservations: %w", err)
	}

	reservations := make([]domain.Reservation, 0, len(records))
	for _, rec := range records {
		res, err := decodeReservation(rec)
		if err != nil {
			return nil, fmt.Errorf("repo.RecordStore.LoadReservations: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

// SaveReservations performs the full rewrite of the reservation record set.
// The snapshot is written to a temp file in the same directory and renamed
// over the live file, so readers never observe a partially-written set.
func (s *csvStore) SaveReservations(ctx context.Context, reservations []domain.Reservation) error {
	tmp, err := os.CreateTemp(s.dataDir, "reservations-*.csv")
	if err != nil {
		return fmt.Errorf("repo.RecordStore.SaveReservations: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	w := csv.NewWriter(tmp)
	//nolint:errcheck — csv.Writer buffers; errors surface on Flush.
	w.Write(reservationHeader)
	for _, res := range reservations {
		//nolint:errcheck
		w.Write(encodeReservation(res))
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("repo.RecordStore.SaveReservations: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("repo.RecordStore.SaveReservations: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.reservationsPath); err != nil {
		return fmt.Errorf("repo.RecordStore.SaveReservations: %w", err)
	}
	return nil
}

// encodeReservation maps a domain.Reservation onto one record of the set.
// The guest name must not contain the field delimiter, so commas are replaced
// with spaces on the way out.
func encodeReservation(res domain.Reservation) []string {
	return []string{
		res.ID.String(),
		strings.ReplaceAll(res.GuestName, ",", " "),
		strconv.Itoa(res.RoomID),
		res.CheckIn.Format(domain.DateFormat),
		res.CheckOut.Format(domain.DateFormat),
		strconv.FormatBool(res.Paid),
		formatAmount(res.TotalAmount),
	}
}

// decodeReservation maps one record of the reservation set back into a
// domain.Reservation, validating every field against its contract.
func decodeReservation(rec []string) (domain.Reservation, error) {
	id, err := uuid.Parse(rec[0])
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: reservation id %q", ErrMalformedRecord, rec[0])
	}
	roomID, err := strconv.Atoi(rec[2])
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: room id %q", ErrMalformedRecord, rec[2])
	}
	checkIn, err := time.Parse(domain.DateFormat, rec[3])
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: check-in %q", ErrMalformedRecord, rec[3])
	}
	checkOut, err := time.Parse(domain.DateFormat, rec[4])
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: check-out %q", ErrMalformedRecord, rec[4])
	}
	// Only the literal tokens are part of the record contract; ParseBool
	// would also admit 1/t/TRUE and the like.
	var paid bool
	switch rec[5] {
	case "true":
		paid = true
	case "false":
		paid = false
	default:
		return domain.Reservation{}, fmt.Errorf("%w: paid %q", ErrMalformedRecord, rec[5])
	}
	total, err := strconv.ParseFloat(rec[6], 64)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("%w: total amount %q", ErrMalformedRecord, rec[6])
	}

	return domain.Reservation{
		ID:          id,
		GuestName:   rec[1],
		RoomID:      roomID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Paid:        paid,
		TotalAmount: total,
	}, nil
}
