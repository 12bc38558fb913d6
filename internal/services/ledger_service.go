package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"airline_reservation/internal/database"
	"airline_reservation/internal/models"
)

// LedgerService owns the booking collection, enforces seat uniqueness
// against the catalog, and generates booking identifiers. Bookings are
// never deleted; cancellation flips a flag and the record stays as
// history.
//
// The availability check and booking insertion run under one mutex so that
// concurrent callers cannot both observe a seat as free before either
// commits.
type LedgerService struct {
	mu       sync.Mutex
	store    *database.FileStore
	catalog  *CatalogService
	bookings []*models.Booking

	// counter is process-lifetime state: it starts at zero on every run
	// and is not derived from existing bookings, so identifiers are only
	// weakly unique across restarts.
	counter int
}

// NewLedgerService loads the booking store into memory. Malformed lines
// are skipped, not surfaced.
func NewLedgerService(store *database.FileStore, catalog *CatalogService) (*LedgerService, error) {
	ls := &LedgerService{store: store, catalog: catalog}
	if err := ls.load(); err != nil {
		return nil, err
	}
	return ls, nil
}

func (ls *LedgerService) load() error {
	lines, err := ls.store.LoadLines()
	if err != nil {
		return fmt.Errorf("failed to load booking store: %w", err)
	}

	for _, line := range lines {
		booking, err := models.ParseBookingRecord(line)
		if err != nil {
			log.Printf("Skipping malformed booking record: %v", err)
			continue
		}
		ls.bookings = append(ls.bookings, booking)
	}

	log.Printf("Loaded %d bookings from %s", len(ls.bookings), ls.store.Path())
	return nil
}

func (ls *LedgerService) save() error {
	lines := make([]string, 0, len(ls.bookings))
	for _, b := range ls.bookings {
		lines = append(lines, b.Record())
	}
	if err := ls.store.SaveLines(lines); err != nil {
		return fmt.Errorf("failed to save booking store: %w", err)
	}
	return nil
}

func (ls *LedgerService) nextBookingID(username, flightNumber string) string {
	ls.counter++
	return fmt.Sprintf("%s_%s_%d", username, flightNumber, ls.counter)
}

// seatAvailable is the seat-uniqueness enforcement point. Callers must
// hold ls.mu.
func (ls *LedgerService) seatAvailable(ctx context.Context, flightNumber string, seatNumber int) bool {
	flight, err := ls.catalog.Find(ctx, flightNumber)
	if err != nil {
		return false
	}
	if seatNumber < 1 || seatNumber > flight.TotalSeats {
		return false
	}

	for _, b := range ls.bookings {
		if b.Active() && b.FlightNumber == flightNumber && b.SeatNumber == seatNumber {
			return false
		}
	}
	return true
}

// IsSeatAvailable reports whether the seat can be booked. It fails closed:
// an unknown flight or an out-of-range seat number is reported as
// unavailable.
func (ls *LedgerService) IsSeatAvailable(ctx context.Context, flightNumber string, seatNumber int) bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.seatAvailable(ctx, flightNumber, seatNumber)
}

// Book places an active booking for the passenger and returns the
// generated booking identifier.
func (ls *LedgerService) Book(ctx context.Context, username, flightNumber string, seatNumber int) (string, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if _, err := ls.catalog.Find(ctx, flightNumber); err != nil {
		return "", fmt.Errorf("flight %s: %w", flightNumber, ErrFlightNotFound)
	}
	if !ls.seatAvailable(ctx, flightNumber, seatNumber) {
		return "", fmt.Errorf("seat %d on flight %s: %w", seatNumber, flightNumber, ErrSeatUnavailable)
	}

	bookingID := ls.nextBookingID(username, flightNumber)
	ls.bookings = append(ls.bookings, &models.Booking{
		BookingID:         bookingID,
		PassengerUsername: username,
		FlightNumber:      flightNumber,
		SeatNumber:        seatNumber,
	})
	if err := ls.save(); err != nil {
		return "", err
	}

	log.Printf("Booking created: %s (flight %s, seat %d)", bookingID, flightNumber, seatNumber)
	return bookingID, nil
}

// Cancel marks a booking as cancelled. The lookup is scoped by owner: a
// passenger cannot cancel another passenger's booking. Cancelling an
// already-cancelled booking is reported but leaves the same end state.
func (ls *LedgerService) Cancel(ctx context.Context, bookingID, username string) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	for _, b := range ls.bookings {
		if b.BookingID != bookingID || b.PassengerUsername != username {
			continue
		}
		if b.Cancelled {
			return fmt.Errorf("booking %s: %w", bookingID, ErrAlreadyCancelled)
		}

		b.Cancelled = true
		if err := ls.save(); err != nil {
			return err
		}

		log.Printf("Booking cancelled: %s", bookingID)
		return nil
	}

	return fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
}

// FindByPassenger returns every booking owned by the passenger, active and
// cancelled, in ledger order.
func (ls *LedgerService) FindByPassenger(ctx context.Context, username string) []*models.Booking {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	var owned []*models.Booking
	for _, b := range ls.bookings {
		if b.PassengerUsername == username {
			owned = append(owned, b)
		}
	}
	return owned
}

// Save rewrites the backing file from the in-memory ledger; called once
// more at orderly shutdown.
func (ls *LedgerService) Save(ctx context.Context) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.save()
}
