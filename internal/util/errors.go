package util

import "errors"

var (
	ErrEmailRegistered = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")

	// ErrNoScopeAssigned means a musyrif/asisten has no floor/usroh link yet.
	// Callers surface it as "no residents to manage", not as a server error.
	ErrNoScopeAssigned = errors.New("no scope assigned")

	// ErrOutOfScope is an authorization failure: the resident exists but is
	// outside the caller's floor/usroh. Maps to 403, never 404, and is never
	// silently downgraded.
	ErrOutOfScope = errors.New("resident out of scope")

	ErrUnknownResident = errors.New("resident not found")
	ErrUnknownTarget   = errors.New("memorization target not found")
	ErrUnknownGroup    = errors.New("study group not found")
	ErrUnknownFloor    = errors.New("floor not found")

	// ErrConcurrentWriteConflict is reserved for storage backends that must
	// emulate the conditional upsert; unreachable with a native ON CONFLICT.
	ErrConcurrentWriteConflict = errors.New("concurrent write conflict")

	ErrSupervisorTaken = errors.New("floor already has a musyrif")
	ErrAssistantTaken  = errors.New("usroh already has an asisten")
	ErrQuizNotFound    = errors.New("quiz assignment not found")
	ErrQuizUnpublished = errors.New("quiz assignment not published")
)
