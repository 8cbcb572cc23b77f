package core

import "errors"

// Sentinel errors returned by the service layer. HTTP adapters map these to
// status codes; anything else is treated as an upstream failure (500).
var (
	// ErrValidation marks a missing or empty required field.
	ErrValidation = errors.New("missing or empty required field")

	// ErrDuplicateKey is returned when a profile's idName is already taken,
	// on create or on rename.
	ErrDuplicateKey = errors.New("idName already exists")

	// ErrNotFound is returned when no profile matches the given idName.
	ErrNotFound = errors.New("profile not found")

	// ErrNoChange is returned by update when neither a new idName nor a new
	// email was provided.
	ErrNoChange = errors.New("no fields to update")

	// ErrDeliveryFailed is returned when the OTP mail could not be sent.
	// The pending code is rolled back before this is returned.
	ErrDeliveryFailed = errors.New("mail delivery failed")

	// ErrInvalidToken is returned when a session token fails the signature
	// or expiry check.
	ErrInvalidToken = errors.New("invalid or expired session token")
)
