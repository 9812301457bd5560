package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrValidation       = errors.New("validation error")
)

// Economy
var (
	ErrProfileNotFound      = errors.New("profile doesn't exist")
	ErrProfileExists        = errors.New("profile already exists")
	ErrDareNotAssigned      = errors.New("dare is not in today's assignment")
	ErrAlreadyCompleted     = errors.New("dare already completed")
	ErrInsufficientCurrency = errors.New("not enough points or free tokens")
	ErrCatalogExhausted     = errors.New("no unique dares available in this difficulty")
	ErrInvalidPoints        = errors.New("points must be positive")
	ErrInvalidDifficulty    = errors.New("unknown difficulty")
	ErrVersionConflict      = errors.New("profile was modified concurrently")
	ErrTooManyConflicts     = errors.New("too many concurrent profile modifications")
)

// Community
var (
	ErrPostNotFound    = errors.New("post doesn't exist")
	ErrSelfDoubleDare  = errors.New("can't double dare own post")
	ErrDareNotComplete = errors.New("dare must be completed before posting")
)
