package domain

import "errors"

// ErrNotFound is returned when a requested reservation does not exist in the
// store. Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrInvalidRoom is returned by Book when the room id references no room in
// the catalog. The store is never mutated in this case.
var ErrInvalidRoom = errors.New("invalid room")

// ErrRoomUnavailable is returned by Book when the requested interval overlaps
// an existing reservation on the same room. Handlers should map this to
// HTTP 409 Conflict.
var ErrRoomUnavailable = errors.New("room unavailable")

// ErrInvalidDateRange is returned by Book when check-out is not strictly
// after check-in (a stay must be at least one night).
var ErrInvalidDateRange = errors.New("invalid date range")
