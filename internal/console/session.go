package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/google/uuid"

	"airline_reservation/internal/models"
	"airline_reservation/internal/services"
)

const goodbyeBanner = `
 ______                __   ____
/ ____/___  ____  ____/ /  / __ )__  _____
/ / __/ __ \/ __ \/ __  /  / __  / / / / _ \
/ /_/ / /_/ / /_/ / /_/ /  / /_/ / /_/ /  __/
\____/\____/\____/\__,_/  /_____/\__, /\___/
                                /____/
`

// Session drives one interactive run of the reservation console. It is
// the external collaborator of the core services: it collects input,
// presents results, and maps service errors to operator messages.
type Session struct {
	prompter  *Prompter
	out       io.Writer
	catalog   *services.CatalogService
	ledger    *services.LedgerService
	directory *services.DirectoryService
}

// NewSession creates a session over the given services.
func NewSession(prompter *Prompter, out io.Writer, catalog *services.CatalogService, ledger *services.LedgerService, directory *services.DirectoryService) *Session {
	return &Session{
		prompter:  prompter,
		out:       out,
		catalog:   catalog,
		ledger:    ledger,
		directory: directory,
	}
}

// Run presents the role-selection loop until the operator exits.
func (s *Session) Run(ctx context.Context) {
	for {
		fmt.Fprintln(s.out, roleStyle.Render("Select Role:"))
		fmt.Fprintln(s.out, roleMenuStyle.Render("1. Admin\n2. Passenger\n3. Exit"))

		switch s.prompter.ReadInt("Enter choice: ", 1, 3) {
		case 1:
			s.adminFlow(ctx)
		case 2:
			s.passengerFlow(ctx)
		case 3:
			fmt.Fprintf(s.out, "%s\n", goodbyeBanner)
			return
		}
		fmt.Fprintln(s.out)
	}
}

// FirstRunAdminSetup collects the initial admin credential pair. The
// password must be entered twice and match before it is accepted; the
// process is expected to exit right after so the operator restarts into a
// consistent state.
func (s *Session) FirstRunAdminSetup(ctx context.Context) error {
	fmt.Fprintln(s.out, warnStyle.Render("=== First Time Setup for Admin Account ==="))
	username := s.prompter.ReadLine("Set Admin Username: ")

	for {
		first := s.prompter.ReadPassword("Set Admin Password: ")
		second := s.prompter.ReadPassword("Confirm Admin Password: ")
		if first != second {
			fmt.Fprintln(s.out, errorStyle.Render("Passwords do not match. Please try again."))
			continue
		}

		if err := s.directory.ProvisionAdmin(ctx, username, first); err != nil {
			return err
		}
		fmt.Fprintln(s.out, successStyle.Render("Admin account created successfully! Please restart the program to login."))
		return nil
	}
}

func (s *Session) adminFlow(ctx context.Context) {
	fmt.Fprintln(s.out, headingStyle.Render("\n--- Admin Login ---"))
	username := s.prompter.ReadLine("Username: ")
	password := s.prompter.ReadPassword("Password: ")

	admin, err := s.directory.Authenticate(ctx, models.RoleAdmin, username, password)
	if err != nil {
		fmt.Fprintln(s.out, errorStyle.Render("Login failed! Invalid username or password."))
		return
	}

	sessionID := uuid.New().String()[:8]
	log.Printf("Admin %s logged in (session %s)", admin.Username, sessionID)
	fmt.Fprintln(s.out, successStyle.Render("Login successful! Welcome Admin "+admin.Username))
	s.adminMenu(ctx)
	log.Printf("Admin session %s ended", sessionID)
}

func (s *Session) adminMenu(ctx context.Context) {
	for {
		fmt.Fprintln(s.out, adminHeadStyle.Render("\n--- Admin Menu ---"))
		fmt.Fprintln(s.out, adminMenuStyle.Render("1. Add Flight\n2. View All Flights\n3. Remove Flight\n4. Logout"))

		switch s.prompter.ReadInt("Enter choice: ", 1, 4) {
		case 1:
			s.addFlight(ctx)
		case 2:
			s.viewFlights(ctx)
		case 3:
			s.removeFlight(ctx)
		case 4:
			fmt.Fprintln(s.out, menuStyle.Render("Logging out from Admin account."))
			return
		}
	}
}

func (s *Session) addFlight(ctx context.Context) {
	input := FlightInput{
		FlightNumber: s.prompter.ReadLine("Enter Flight Number: "),
		Origin:       s.prompter.ReadLine("Enter Origin: "),
		Destination:  s.prompter.ReadLine("Enter Destination: "),
		Date:         s.prompter.ReadLine("Enter Date (YYYY-MM-DD): "),
		Time:         s.prompter.ReadLine("Enter Time (HH:MM): "),
		Price:        s.prompter.ReadFloat("Enter Price: ", 0),
		TotalSeats:   s.prompter.ReadInt("Enter Total Seats: ", 1, math.MaxInt),
	}
	if err := input.Validate(); err != nil {
		fmt.Fprintln(s.out, errorStyle.Render("All flight fields are required."))
		return
	}

	err := s.catalog.Add(ctx, &models.Flight{
		FlightNumber: input.FlightNumber,
		Origin:       input.Origin,
		Destination:  input.Destination,
		Date:         input.Date,
		Time:         input.Time,
		Price:        input.Price,
		TotalSeats:   input.TotalSeats,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateKey) {
			fmt.Fprintln(s.out, errorStyle.Render("Flight number already exists! Cannot add."))
			return
		}
		fmt.Fprintln(s.out, errorStyle.Render("Failed to add flight: "+err.Error()))
		return
	}
	fmt.Fprintln(s.out, successStyle.Render("Flight added successfully."))
}

func (s *Session) viewFlights(ctx context.Context) {
	flights := s.catalog.List(ctx)
	if len(flights) == 0 {
		fmt.Fprintln(s.out, warnStyle.Render("No flights available."))
		return
	}

	fmt.Fprintln(s.out, headingStyle.Render("\nAll Flights:"))
	fmt.Fprintln(s.out, flightTableHeader())
	for _, f := range flights {
		fmt.Fprintln(s.out, flightTableRow(f))
	}
}

func (s *Session) removeFlight(ctx context.Context) {
	if len(s.catalog.List(ctx)) == 0 {
		fmt.Fprintln(s.out, warnStyle.Render("No flights available to remove."))
		return
	}

	flightNumber := s.prompter.ReadLine("Enter Flight Number to remove: ")
	if err := s.catalog.Remove(ctx, flightNumber); err != nil {
		fmt.Fprintln(s.out, errorStyle.Render("Flight number not found."))
		return
	}
	fmt.Fprintln(s.out, successStyle.Render("Flight removed successfully."))
}

func (s *Session) passengerFlow(ctx context.Context) {
	for {
		fmt.Fprintln(s.out, headingStyle.Render("\n--- Passenger Menu ---"))
		fmt.Fprintln(s.out, menuStyle.Render("1. Register\n2. Login\n3. Back to Role Selection"))

		switch s.prompter.ReadInt("Enter choice: ", 1, 3) {
		case 1:
			s.passengerRegister(ctx)
		case 2:
			if passenger := s.passengerLogin(ctx); passenger != nil {
				s.passengerMenu(ctx, passenger)
			}
		case 3:
			return
		}
	}
}

func (s *Session) passengerRegister(ctx context.Context) {
	input := RegistrationInput{
		Username: s.prompter.ReadLine("Enter desired username: "),
	}

	if _, err := s.directory.Find(ctx, models.RolePassenger, input.Username); err == nil {
		fmt.Fprintln(s.out, errorStyle.Render("Username already exists! Please try login or choose another username."))
		return
	}

	input.Password = s.prompter.ReadPassword("Enter password: ")
	if err := input.Validate(); err != nil {
		fmt.Fprintln(s.out, errorStyle.Render("Username and password are required."))
		return
	}

	if err := s.directory.Register(ctx, input.Username, input.Password); err != nil {
		fmt.Fprintln(s.out, errorStyle.Render("Registration failed: "+err.Error()))
		return
	}
	fmt.Fprintln(s.out, successStyle.Render("Registration successful! You can now login."))
}

func (s *Session) passengerLogin(ctx context.Context) *models.Account {
	username := s.prompter.ReadLine("Username: ")
	password := s.prompter.ReadPassword("Password: ")

	passenger, err := s.directory.Authenticate(ctx, models.RolePassenger, username, password)
	if err != nil {
		fmt.Fprintln(s.out, errorStyle.Render("Login failed! Invalid username or password."))
		return nil
	}

	fmt.Fprintln(s.out, successStyle.Render("Login successful! Welcome Passenger "+passenger.Username))
	return passenger
}

func (s *Session) passengerMenu(ctx context.Context, passenger *models.Account) {
	sessionID := uuid.New().String()[:8]
	log.Printf("Passenger %s logged in (session %s)", passenger.Username, sessionID)

	for {
		fmt.Fprintln(s.out, headingStyle.Render("\n--- Passenger Menu ---"))
		fmt.Fprintln(s.out, menuStyle.Render("1. Search Flights\n2. Book Ticket\n3. Cancel Booking\n4. View Booking History\n5. View Flights\n6. Logout"))

		switch s.prompter.ReadInt("Enter choice: ", 1, 6) {
		case 1:
			s.searchFlights(ctx)
		case 2:
			s.bookTicket(ctx, passenger)
		case 3:
			s.cancelBooking(ctx, passenger)
		case 4:
			s.viewBookingHistory(ctx, passenger)
		case 5:
			s.viewFlights(ctx)
		case 6:
			fmt.Fprintln(s.out, menuStyle.Render("Logging out from Passenger account."))
			log.Printf("Passenger session %s ended", sessionID)
			return
		}
	}
}

func (s *Session) searchFlights(ctx context.Context) {
	origin := s.prompter.ReadLine("Enter Origin (leave blank for any): ")
	destination := s.prompter.ReadLine("Enter Destination (leave blank for any): ")
	date := s.prompter.ReadLine("Enter Date (YYYY-MM-DD, leave blank for any): ")

	matches := s.catalog.Search(ctx, origin, destination, date)
	if len(matches) == 0 {
		fmt.Fprintln(s.out, warnStyle.Render("No matching flights found."))
		return
	}

	fmt.Fprintln(s.out, flightTableHeader())
	for _, f := range matches {
		fmt.Fprintln(s.out, flightTableRow(f))
	}
}

func (s *Session) bookTicket(ctx context.Context, passenger *models.Account) {
	flightNumber := s.prompter.ReadLine("Enter Flight Number to book: ")
	flight, err := s.catalog.Find(ctx, flightNumber)
	if err != nil {
		fmt.Fprintln(s.out, errorStyle.Render("Flight not found."))
		return
	}

	seat := s.prompter.ReadInt(fmt.Sprintf("Enter seat number to book (1 - %d): ", flight.TotalSeats), 1, flight.TotalSeats)

	bookingID, err := s.ledger.Book(ctx, passenger.Username, flightNumber, seat)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSeatUnavailable):
			fmt.Fprintln(s.out, errorStyle.Render("Seat not available or invalid."))
		case errors.Is(err, services.ErrFlightNotFound):
			fmt.Fprintln(s.out, errorStyle.Render("Flight not found."))
		default:
			fmt.Fprintln(s.out, errorStyle.Render("Booking failed: "+err.Error()))
		}
		return
	}
	fmt.Fprintln(s.out, successStyle.Render("Booking successful! Your Booking ID is: "+bookingID))
}

func (s *Session) cancelBooking(ctx context.Context, passenger *models.Account) {
	bookingID := s.prompter.ReadLine("Enter Booking ID to cancel: ")

	if err := s.ledger.Cancel(ctx, bookingID, passenger.Username); err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyCancelled):
			fmt.Fprintln(s.out, warnStyle.Render("Booking already cancelled."))
		case errors.Is(err, services.ErrNotFound):
			fmt.Fprintln(s.out, errorStyle.Render("Booking ID not found."))
		default:
			fmt.Fprintln(s.out, errorStyle.Render("Cancellation failed: "+err.Error()))
		}
		return
	}
	fmt.Fprintln(s.out, successStyle.Render("Booking cancelled successfully."))
}

func (s *Session) viewBookingHistory(ctx context.Context, passenger *models.Account) {
	bookings := s.ledger.FindByPassenger(ctx, passenger.Username)

	fmt.Fprintln(s.out, headingStyle.Render("\nYour Bookings:"))
	fmt.Fprintln(s.out, bookingTableHeader())
	if len(bookings) == 0 {
		fmt.Fprintln(s.out, warnStyle.Render("No bookings found."))
		return
	}
	for _, b := range bookings {
		fmt.Fprintln(s.out, bookingTableRow(b))
	}
}
