package models

import "errors"

// ErrMalformedRecord marks a store line that cannot be decoded. Loaders
// skip the offending line and continue; the error never aborts a load.
var ErrMalformedRecord = errors.New("malformed record")
