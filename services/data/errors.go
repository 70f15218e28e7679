package data

import "errors"

// ErrDataNotFound indicates no data row for the lookup key.
var ErrDataNotFound = errors.New("data record not found")
