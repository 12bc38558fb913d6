package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Booking represents one seat reservation. The flight number is a soft
// reference: removing the flight later leaves the booking in place as a
// historical record.
type Booking struct {
	BookingID         string
	PassengerUsername string
	FlightNumber      string
	SeatNumber        int
	Cancelled         bool
}

const bookingRecordArity = 5

// Active reports whether the booking still occupies its seat.
func (b *Booking) Active() bool {
	return !b.Cancelled
}

// Record encodes the booking as one comma-delimited line. The cancelled
// flag is written as "1" or "0".
func (b *Booking) Record() string {
	flag := "0"
	if b.Cancelled {
		flag = "1"
	}
	return strings.Join([]string{
		b.BookingID,
		b.PassengerUsername,
		b.FlightNumber,
		strconv.Itoa(b.SeatNumber),
		flag,
	}, ",")
}

// ParseBookingRecord decodes one line of the booking store.
func ParseBookingRecord(line string) (*Booking, error) {
	fields := strings.Split(line, ",")
	if len(fields) != bookingRecordArity {
		return nil, fmt.Errorf("%w: booking record has %d fields, want %d", ErrMalformedRecord, len(fields), bookingRecordArity)
	}

	seat, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid seat number %q", ErrMalformedRecord, fields[3])
	}

	return &Booking{
		BookingID:         fields[0],
		PassengerUsername: fields[1],
		FlightNumber:      fields[2],
		SeatNumber:        seat,
		Cancelled:         fields[4] == "1",
	}, nil
}
