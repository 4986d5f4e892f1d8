package model

import "errors"

var (
	// ErrNotFound is returned when no record exists for an id, or when an
	// update target cannot be decoded (the record is unusable as a merge base).
	ErrNotFound = errors.New("not found")

	// ErrCorruptRecord is returned by single-item fetches when the stored
	// bytes do not decode. List operations skip such records instead.
	ErrCorruptRecord = errors.New("corrupt record")

	// ErrValidation is reserved for payload validation; creation is currently
	// permissive by design.
	ErrValidation = errors.New("validation error")
)
