package console

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FlightInput carries operator-entered flight fields. Validation happens
// here, at the input boundary: the catalog itself does not re-check
// positivity or formats.
type FlightInput struct {
	FlightNumber string  `validate:"required"`
	Origin       string  `validate:"required"`
	Destination  string  `validate:"required"`
	Date         string  `validate:"required"`
	Time         string  `validate:"required"`
	Price        float64 `validate:"gte=0"`
	TotalSeats   int     `validate:"gte=1"`
}

// Validate checks the flight input against its constraints.
func (in *FlightInput) Validate() error {
	return validate.Struct(in)
}

// RegistrationInput carries a username/password pair entered during
// passenger registration.
type RegistrationInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Validate checks the registration input against its constraints.
func (in *RegistrationInput) Validate() error {
	return validate.Struct(in)
}
