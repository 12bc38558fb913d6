package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Flight represents a single flight in the catalog. Date and Time are
// stored as-is; no semantic validation is applied to them.
type Flight struct {
	FlightNumber string
	Origin       string
	Destination  string
	Date         string // YYYY-MM-DD
	Time         string // HH:MM
	Price        float64
	TotalSeats   int
}

const flightRecordArity = 7

// Record encodes the flight as one comma-delimited line. Embedded commas
// are not escaped; a field containing the delimiter corrupts the row on
// decode, which then rejects it as malformed.
func (f *Flight) Record() string {
	return strings.Join([]string{
		f.FlightNumber,
		f.Origin,
		f.Destination,
		f.Date,
		f.Time,
		strconv.FormatFloat(f.Price, 'f', -1, 64),
		strconv.Itoa(f.TotalSeats),
	}, ",")
}

// ParseFlightRecord decodes one line of the flight store.
func ParseFlightRecord(line string) (*Flight, error) {
	fields := strings.Split(line, ",")
	if len(fields) != flightRecordArity {
		return nil, fmt.Errorf("%w: flight record has %d fields, want %d", ErrMalformedRecord, len(fields), flightRecordArity)
	}

	price, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid price %q", ErrMalformedRecord, fields[5])
	}

	seats, err := strconv.Atoi(fields[6])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid seat count %q", ErrMalformedRecord, fields[6])
	}

	return &Flight{
		FlightNumber: fields[0],
		Origin:       fields[1],
		Destination:  fields[2],
		Date:         fields[3],
		Time:         fields[4],
		Price:        price,
		TotalSeats:   seats,
	}, nil
}
