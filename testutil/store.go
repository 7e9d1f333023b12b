// Package testutil provides shared helpers for tests that need a real
// flat-file record store. Each helper roots storage in a per-test temp
// directory, so tests are isolated and need no manual cleanup.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jmayer/hotelbook/internal/domain"
	"github.com/jmayer/hotelbook/internal/repo"
	"github.com/jmayer/hotelbook/internal/service"
)

// NewStore returns a CSV record store rooted in a fresh temp directory,
// plus the directory path for tests that inspect the files directly.
func NewStore(t *testing.T) (repo.RecordStore, string) {
	t.Helper()
	dir := t.TempDir()
	return repo.NewCSVStore(dir), dir
}

// NewHotel returns an initialized engine backed by a temp-dir CSV store.
// The catalog is the default seed inventory (rooms 101, 102, 201, 202, 301).
func NewHotel(t *testing.T, opts ...service.Option) *service.Hotel {
	t.Helper()
	store, _ := NewStore(t)
	h := service.NewHotel(store, opts...)
	if err := h.Init(context.Background()); err != nil {
		t.Fatalf("testutil.NewHotel: init: %v", err)
	}
	return h
}

// Date parses a YYYY-MM-DD string into a time.Time, failing the test on
// malformed input.
func Date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		t.Fatalf("testutil.Date: %v", err)
	}
	return d
}
