package uc

import "errors"

var (
	// ErrNotFound is returned when a referenced project id is absent.
	ErrNotFound = errors.New("project not found")
	// ErrInvalidInput is returned for malformed use-case input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrOrderMismatch is returned in validated reorder mode when the new
	// order is not a permutation of the current one.
	ErrOrderMismatch = errors.New("new order must be a permutation of the current block order")
)
