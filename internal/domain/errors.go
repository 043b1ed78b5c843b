package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrConflict         = errors.New("resource conflict")
	ErrDuplicateRequest = errors.New("duplicate client request")
	ErrInvalidInput     = errors.New("invalid input")

	// Analytics input guards. Both match errors.Is(err, ErrInvalidInput).
	ErrMixedUsers = fmt.Errorf("%w: entries belong to multiple users", ErrInvalidInput)
	ErrClockSkew  = fmt.Errorf("%w: reference time precedes latest entry", ErrInvalidInput)
)
