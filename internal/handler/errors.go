package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// errDateRangeRequired rejects availability queries missing either date.
var errDateRangeRequired = errors.New("from and to dates are required (YYYY-MM-DD)")

// errReversedDateRange rejects availability queries whose interval is empty
// or reversed.
var errReversedDateRange = errors.New("to must be after from")

// errBadDate rejects a date that does not parse as YYYY-MM-DD.
func errBadDate(raw string) error {
	return fmt.Errorf("invalid date %q, want YYYY-MM-DD", raw)
}

// ErrorResponse is the JSON body returned for every non-2xx outcome.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code and a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck — nothing useful can be done if the client went away.
	json.NewEncoder(w).Encode(v)
}

// writeError writes an ErrorResponse with the given status, code and message.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// notFound writes a 404 with the supplied message. The caller provides the
// message because the handler is the layer that knows what was looked up.
func notFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, "not_found", message)
}

// badRequest writes a 422 for a request rejected before reaching the engine
// (missing or malformed body or query parameters).
func badRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnprocessableEntity, "validation_error", message)
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "invalid room: no room with id 999" → "no room with id 999".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"invalid room: ",
		"room unavailable: ",
		"invalid date range: ",
	} {
		if strings.HasPrefix(msg, prefix) {
			return msg[len(prefix):]
		}
	}
	return msg
}
