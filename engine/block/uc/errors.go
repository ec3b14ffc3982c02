package uc

import "errors"

var (
	// ErrBlockNotFound is returned when a referenced block id is absent.
	ErrBlockNotFound = errors.New("block not found")
	// ErrProjectNotFound is returned when a referenced project id is absent.
	ErrProjectNotFound = errors.New("project not found")
	// ErrInvalidInput is returned for malformed use-case input.
	ErrInvalidInput = errors.New("invalid input")
)
