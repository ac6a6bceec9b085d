package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("already exists")
	ErrBadRequest       = errors.New("bad request")
	ErrValidation       = errors.New("validation failed")
	ErrTimeout          = errors.New("request timed out")
	ErrDuplicateRequest = errors.New("duplicate request")
)

// ErrSelfTransfer is returned when a transfer names the sender as receiver.
var ErrSelfTransfer = fmt.Errorf("%w: sender and receiver must differ", ErrBadRequest)
