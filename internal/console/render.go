package console

import (
	"fmt"
	"strings"

	"airline_reservation/internal/models"
)

// Fixed-width table rendering, mirroring the column layout of the original
// console program.

func flightTableHeader() string {
	header := fmt.Sprintf("%-15s%-20s%-20s%-15s%-10s%-10s%-10s",
		"Flight No", "Origin", "Destination", "Date", "Time", "Price", "Seats")
	return tableHeadStyle.Render(header) + "\n" + strings.Repeat("=", 90)
}

func flightTableRow(f *models.Flight) string {
	return fmt.Sprintf("%-15s%-20s%-20s%-15s%-10s%-10.2f%-10d",
		f.FlightNumber, f.Origin, f.Destination, f.Date, f.Time, f.Price, f.TotalSeats)
}

func bookingTableHeader() string {
	header := fmt.Sprintf("%-25s%-20s%-8s%-10s", "Booking ID", "Flight No", "Seat", "Status")
	return bookingHeadStyle.Render(header) + "\n" + strings.Repeat("=", 70)
}

func bookingTableRow(b *models.Booking) string {
	status := successStyle.Render("Active")
	if b.Cancelled {
		status = errorStyle.Render("Cancelled")
	}
	return fmt.Sprintf("%-25s%-20s%-8d%s", b.BookingID, b.FlightNumber, b.SeatNumber, status)
}
