package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadLineTrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  NYC  \n"), &out)

	assert.Equal(t, "NYC", p.ReadLine("Origin: "))
	assert.Equal(t, "Origin: ", out.String())
}

func TestReadLineBlankIsValid(t *testing.T) {
	p := NewPrompter(strings.NewReader("\n"), &bytes.Buffer{})
	assert.Equal(t, "", p.ReadLine("Origin (leave blank for any): "))
}

func TestReadIntRetriesUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n0\n7\n3\n"), &out)

	assert.Equal(t, 3, p.ReadInt("Enter choice: ", 1, 4))
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid input"))
}

func TestReadFloatEnforcesMinimum(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("-5\nfree\n199.99\n"), &out)

	assert.Equal(t, 199.99, p.ReadFloat("Enter Price: ", 0))
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid input"))
}

func TestFlightInputValidation(t *testing.T) {
	valid := FlightInput{
		FlightNumber: "AA1",
		Origin:       "NYC",
		Destination:  "LAX",
		Date:         "2024-01-01",
		Time:         "10:00",
		Price:        0,
		TotalSeats:   1,
	}
	assert.NoError(t, valid.Validate())

	missing := valid
	missing.Origin = ""
	assert.Error(t, missing.Validate())

	noSeats := valid
	noSeats.TotalSeats = 0
	assert.Error(t, noSeats.Validate())
}

func TestRegistrationInputValidation(t *testing.T) {
	assert.NoError(t, (&RegistrationInput{Username: "alice", Password: "pw1"}).Validate())
	assert.Error(t, (&RegistrationInput{Username: "alice"}).Validate())
}
