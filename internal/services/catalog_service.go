package services

import (
	"context"
	"fmt"
	"log"

	"airline_reservation/internal/database"
	"airline_reservation/internal/models"
)

// CatalogService owns the flight collection and its persistence binding.
// Flights are kept in insertion order; every mutation rewrites the backing
// file.
type CatalogService struct {
	store   *database.FileStore
	flights []*models.Flight
}

// NewCatalogService loads the flight store into memory. Malformed lines
// are skipped, not surfaced.
func NewCatalogService(store *database.FileStore) (*CatalogService, error) {
	cs := &CatalogService{store: store}
	if err := cs.load(); err != nil {
		return nil, err
	}
	return cs, nil
}

func (cs *CatalogService) load() error {
	lines, err := cs.store.LoadLines()
	if err != nil {
		return fmt.Errorf("failed to load flight store: %w", err)
	}

	for _, line := range lines {
		flight, err := models.ParseFlightRecord(line)
		if err != nil {
			log.Printf("Skipping malformed flight record: %v", err)
			continue
		}
		cs.flights = append(cs.flights, flight)
	}

	log.Printf("Loaded %d flights from %s", len(cs.flights), cs.store.Path())
	return nil
}

func (cs *CatalogService) save() error {
	lines := make([]string, 0, len(cs.flights))
	for _, f := range cs.flights {
		lines = append(lines, f.Record())
	}
	if err := cs.store.SaveLines(lines); err != nil {
		return fmt.Errorf("failed to save flight store: %w", err)
	}
	return nil
}

func (cs *CatalogService) indexOf(flightNumber string) int {
	for i, f := range cs.flights {
		if f.FlightNumber == flightNumber {
			return i
		}
	}
	return -1
}

// Add inserts a new flight and persists the catalog. The flight number
// must be unique.
func (cs *CatalogService) Add(ctx context.Context, flight *models.Flight) error {
	if cs.indexOf(flight.FlightNumber) >= 0 {
		return fmt.Errorf("flight %s: %w", flight.FlightNumber, ErrDuplicateKey)
	}

	cs.flights = append(cs.flights, flight)
	if err := cs.save(); err != nil {
		return err
	}

	log.Printf("Flight added: %s (%s -> %s on %s)", flight.FlightNumber, flight.Origin, flight.Destination, flight.Date)
	return nil
}

// Remove deletes a flight and persists the catalog. Bookings referencing
// the flight are left in place as history; there is no cascade.
func (cs *CatalogService) Remove(ctx context.Context, flightNumber string) error {
	idx := cs.indexOf(flightNumber)
	if idx < 0 {
		return fmt.Errorf("flight %s: %w", flightNumber, ErrNotFound)
	}

	cs.flights = append(cs.flights[:idx], cs.flights[idx+1:]...)
	if err := cs.save(); err != nil {
		return err
	}

	log.Printf("Flight removed: %s", flightNumber)
	return nil
}

// Find returns the flight with the given number.
func (cs *CatalogService) Find(ctx context.Context, flightNumber string) (*models.Flight, error) {
	idx := cs.indexOf(flightNumber)
	if idx < 0 {
		return nil, fmt.Errorf("flight %s: %w", flightNumber, ErrNotFound)
	}
	return cs.flights[idx], nil
}

// Search returns flights matching every provided filter in insertion
// order. An empty filter matches anything; non-empty filters are exact
// string matches, ANDed together.
func (cs *CatalogService) Search(ctx context.Context, origin, destination, date string) []*models.Flight {
	var matches []*models.Flight
	for _, f := range cs.flights {
		if origin != "" && f.Origin != origin {
			continue
		}
		if destination != "" && f.Destination != destination {
			continue
		}
		if date != "" && f.Date != date {
			continue
		}
		matches = append(matches, f)
	}
	return matches
}

// List returns all flights in insertion order.
func (cs *CatalogService) List(ctx context.Context) []*models.Flight {
	flights := make([]*models.Flight, len(cs.flights))
	copy(flights, cs.flights)
	return flights
}

// Save rewrites the backing file from the in-memory catalog. It is called
// once more at orderly shutdown; redundant with the per-mutation saves but
// harmless, since full rewrites are idempotent.
func (cs *CatalogService) Save(ctx context.Context) error {
	return cs.save()
}
