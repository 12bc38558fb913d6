package models

import (
	"fmt"
	"strings"
)

// Role identifies which credential namespace an account belongs to.
// Passengers and admins are disjoint sets; the same username may exist in
// both without conflict.
type Role string

// Account roles.
const (
	RoleAdmin     Role = "admin"
	RolePassenger Role = "passenger"
)

// Account is a credential pair within one role namespace. Passwords are
// stored in plaintext, matching the on-disk format.
type Account struct {
	Role     Role
	Username string
	Password string
}

const accountRecordArity = 2

// Login reports whether the supplied credentials match exactly.
func (a *Account) Login(username, password string) bool {
	return a.Username == username && a.Password == password
}

// Record encodes the account as one comma-delimited line. The role is not
// persisted; each role has its own backing file.
func (a *Account) Record() string {
	return strings.Join([]string{a.Username, a.Password}, ",")
}

// ParseAccountRecord decodes one line of an account store, tagging the
// result with the role the file belongs to.
func ParseAccountRecord(line string, role Role) (*Account, error) {
	fields := strings.Split(line, ",")
	if len(fields) != accountRecordArity {
		return nil, fmt.Errorf("%w: account record has %d fields, want %d", ErrMalformedRecord, len(fields), accountRecordArity)
	}

	return &Account{
		Role:     role,
		Username: fields[0],
		Password: fields[1],
	}, nil
}
