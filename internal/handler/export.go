// Package handler — export.go implements GET /export.
// Returns every reservation joined with its room's catalog fields as a flat
// table. Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/jmayer/hotelbook/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"reservation_id", "guest_name", "room_id", "room_type", "price_per_night",
	"check_in", "check_out", "nights", "paid", "total_amount",
}

// ExportRowResponse is the JSON representation of one export row.
type ExportRowResponse struct {
	ReservationID string          `json:"reservation_id"`
	GuestName     string          `json:"guest_name"`
	RoomID        int             `json:"room_id"`
	RoomType      domain.RoomType `json:"room_type"`
	PricePerNight float64         `json:"price_per_night"`
	CheckIn       string          `json:"check_in"`
	CheckOut      string          `json:"check_out"`
	Nights        int             `json:"nights"`
	Paid          bool            `json:"paid"`
	TotalAmount   float64         `json:"total_amount"`
}

// GetExport handles GET /export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows := s.hotel.Export()

	if r.URL.Query().Get("format") == "csv" {
		writeCSVExport(w, rows)
		return
	}

	out := make([]ExportRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, ExportRowResponse{
			ReservationID: row.ReservationID.String(),
			GuestName:     row.GuestName,
			RoomID:        row.RoomID,
			RoomType:      row.RoomType,
			PricePerNight: row.PricePerNight,
			CheckIn:       row.CheckIn,
			CheckOut:      row.CheckOut,
			Nights:        row.Nights,
			Paid:          row.Paid,
			TotalAmount:   row.TotalAmount,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSVExport encodes the rows as CSV and writes them with the appropriate
// content type.
func writeCSVExport(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(exportRowToCSVRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}

// exportRowToCSVRecord encodes one export row as a flat string slice.
func exportRowToCSVRecord(row domain.ExportRow) []string {
	return []string{
		row.ReservationID.String(),
		row.GuestName,
		strconv.Itoa(row.RoomID),
		string(row.RoomType),
		strconv.FormatFloat(row.PricePerNight, 'f', -1, 64),
		row.CheckIn,
		row.CheckOut,
		strconv.Itoa(row.Nights),
		strconv.FormatBool(row.Paid),
		strconv.FormatFloat(row.TotalAmount, 'f', -1, 64),
	}
}
