package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmayer/hotelbook/internal/domain"
	"github.com/jmayer/hotelbook/internal/handler"
)

func seedCatalog() []domain.Room {
	return []domain.Room{
		{ID: 101, Type: domain.RoomStandard, PricePerNight: 2000},
		{ID: 102, Type: domain.RoomStandard, PricePerNight: 2000},
		{ID: 301, Type: domain.RoomSuite, PricePerNight: 6000},
	}
}

func TestListRooms_ReturnsCatalog(t *testing.T) {
	hotel := &mockHotel{allRooms: seedCatalog}

	req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	rec := serve(t, hotel, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []handler.RoomResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 3)
	assert.Equal(t, 101, got[0].ID)
	assert.Equal(t, domain.RoomStandard, got[0].Type)
	assert.Equal(t, 2000.0, got[0].PricePerNight)
}

func TestFindAvailableRooms_PassesParsedQuery(t *testing.T) {
	hotel := &mockHotel{
		findAvailable: func(roomType *domain.RoomType, from, to time.Time) []domain.Room {
			require.NotNil(t, roomType)
			assert.Equal(t, domain.RoomSuite, *roomType)
			assert.Equal(t, date(t, "2024-03-01"), from)
			assert.Equal(t, date(t, "2024-03-04"), to)
			return seedCatalog()[2:]
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/rooms/available?from=2024-03-01&to=2024-03-04&type=SUITE", nil)
	rec := serve(t, hotel, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []handler.RoomResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, 301, got[0].ID)
}

func TestFindAvailableRooms_OmittedTypeMeansAny(t *testing.T) {
	hotel := &mockHotel{
		findAvailable: func(roomType *domain.RoomType, _, _ time.Time) []domain.Room {
			assert.Nil(t, roomType)
			return seedCatalog()
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/rooms/available?from=2024-03-01&to=2024-03-04", nil)
	rec := serve(t, hotel, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestFindAvailableRooms_Validation(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"missing dates", ""},
		{"missing to", "?from=2024-03-01"},
		{"bad from", "?from=tomorrow&to=2024-03-04"},
		{"bad to", "?from=2024-03-01&to=2024-13-99"},
		{"reversed range", "?from=2024-03-04&to=2024-03-01"},
		{"empty range", "?from=2024-03-01&to=2024-03-01"},
		{"unknown type", "?from=2024-03-01&to=2024-03-04&type=PENTHOUSE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/rooms/available"+tt.query, nil)
			rec := serve(t, &mockHotel{}, req)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var got handler.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, "validation_error", got.Error.Code)
		})
	}
}

func TestFindAvailableRooms_NoMatchesIsEmptyArray(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/rooms/available?from=2024-03-01&to=2024-03-04", nil)
	rec := serve(t, &mockHotel{}, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
