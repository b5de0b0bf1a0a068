package domain

import "errors"

// Identity errors
var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUserNotFound       = errors.New("user not found")
)

// Collection errors
var (
	ErrDuplicateEntry = errors.New("pokemon already in list")
	ErrTeamFull       = errors.New("team is full")
	ErrEntryNotFound  = errors.New("pokemon not found in list")
)

// Store availability errors. Unavailable means the request was short-circuited
// or the connection could not be established; Timeout means an in-flight store
// call gave up.
var (
	ErrDatabaseUnavailable = errors.New("database not available")
	ErrDatabaseTimeout     = errors.New("database connection timeout")
)
