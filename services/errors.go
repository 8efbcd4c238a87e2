package services

import "errors"

// Sentinel errors controllers map onto HTTP statuses. Anything else coming
// out of a service is an unexpected database error and surfaces as a 500.
var (
	// ErrNotFound means the requested resource does not exist (404).
	ErrNotFound = errors.New("resource not found")
	// ErrIDMismatch means the path id differs from the payload id (400).
	ErrIDMismatch = errors.New("path id does not match payload id")
	// ErrVagaNotFound means a moto references a missing parking spot (400).
	ErrVagaNotFound = errors.New("referenced vaga does not exist")
	// ErrMotoNotFound means a maintenance record references a missing moto (400).
	ErrMotoNotFound = errors.New("referenced moto does not exist")
	// ErrEmailTaken means the registration e-mail is already in use (409).
	ErrEmailTaken = errors.New("e-mail already registered")
	// ErrInvalidCredentials covers both unknown e-mail and wrong password (401).
	// Deliberately a single error so responses never reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid e-mail or password")
)
