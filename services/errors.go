package services

import "errors"

// Sentinel errors the controllers map onto HTTP statuses. Storage failures
// are returned as-is and surface as a generic server error.
var (
	// ErrNotFound means no row exists for the requested key.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials covers both an unknown id and a wrong password
	// or security code. Callers must not distinguish the two cases.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateID means a signup id is already taken.
	ErrDuplicateID = errors.New("id already exists")

	// ErrSubmissionFinal means a draft save targeted an already-final
	// submission.
	ErrSubmissionFinal = errors.New("submission already finalized")

	// ErrScoreOutOfRange means a supplied score is outside 0-100.
	ErrScoreOutOfRange = errors.New("score out of range")

	// ErrInvalidYear means the year is missing or not a positive integer.
	ErrInvalidYear = errors.New("invalid year")
)
