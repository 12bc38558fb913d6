package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airline_reservation/internal/database"
	"airline_reservation/internal/models"
)

func newTestCatalog(t *testing.T) (*CatalogService, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flights.txt")
	catalog, err := NewCatalogService(database.NewFileStore(path))
	require.NoError(t, err)
	return catalog, path
}

func testFlight(number string) *models.Flight {
	return &models.Flight{
		FlightNumber: number,
		Origin:       "NYC",
		Destination:  "LAX",
		Date:         "2024-01-01",
		Time:         "10:00",
		Price:        199.99,
		TotalSeats:   2,
	}
}

func TestCatalogAddDuplicateLeavesCatalogUnchanged(t *testing.T) {
	ctx := context.Background()
	catalog, _ := newTestCatalog(t)

	require.NoError(t, catalog.Add(ctx, testFlight("AA1")))

	duplicate := testFlight("AA1")
	duplicate.Origin = "SFO"
	err := catalog.Add(ctx, duplicate)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	flights := catalog.List(ctx)
	require.Len(t, flights, 1)
	assert.Equal(t, "NYC", flights[0].Origin)
}

func TestCatalogRemove(t *testing.T) {
	ctx := context.Background()
	catalog, _ := newTestCatalog(t)

	require.NoError(t, catalog.Add(ctx, testFlight("AA1")))
	require.NoError(t, catalog.Remove(ctx, "AA1"))

	_, err := catalog.Find(ctx, "AA1")
	assert.ErrorIs(t, err, ErrNotFound)

	err = catalog.Remove(ctx, "AA1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogSearchFilters(t *testing.T) {
	ctx := context.Background()
	catalog, _ := newTestCatalog(t)

	first := testFlight("AA1")
	second := testFlight("BB2")
	second.Origin = "SFO"
	second.Date = "2024-02-02"
	require.NoError(t, catalog.Add(ctx, first))
	require.NoError(t, catalog.Add(ctx, second))

	tests := []struct {
		name    string
		origin  string
		dest    string
		date    string
		matches []string
	}{
		{name: "blank filters match everything", matches: []string{"AA1", "BB2"}},
		{name: "origin filter", origin: "SFO", matches: []string{"BB2"}},
		{name: "filters are ANDed", origin: "SFO", date: "2024-01-01", matches: nil},
		{name: "destination filter", dest: "LAX", matches: []string{"AA1", "BB2"}},
		{name: "no match", origin: "ORD", matches: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := catalog.Search(ctx, tt.origin, tt.dest, tt.date)
			var numbers []string
			for _, f := range results {
				numbers = append(numbers, f.FlightNumber)
			}
			assert.Equal(t, tt.matches, numbers)
		})
	}
}

func TestCatalogPersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	catalog, path := newTestCatalog(t)

	require.NoError(t, catalog.Add(ctx, testFlight("AA1")))

	reloaded, err := NewCatalogService(database.NewFileStore(path))
	require.NoError(t, err)

	flight, err := reloaded.Find(ctx, "AA1")
	require.NoError(t, err)
	assert.Equal(t, testFlight("AA1"), flight)
}

func TestCatalogLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flights.txt")
	content := "AA1,NYC,LAX,2024-01-01,10:00,199.99,2\n" +
		"garbage line\n" +
		"BB2,SFO,SEA,2024-02-02,12:30,not-a-price,180\n" +
		"CC3,ORD,MIA,2024-03-03,09:15,120,150\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	catalog, err := NewCatalogService(database.NewFileStore(path))
	require.NoError(t, err)

	flights := catalog.List(context.Background())
	require.Len(t, flights, 2)
	assert.Equal(t, "AA1", flights[0].FlightNumber)
	assert.Equal(t, "CC3", flights[1].FlightNumber)
}
