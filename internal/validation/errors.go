package validation

import "errors"

// Ошибки локальной проверки перед отправкой на сервер
var (
	ErrMissingUser            = errors.New("user is required")
	ErrInvalidPlayerCount     = errors.New("number of players must be between 2 and 4")
	ErrIncompleteParticipants = errors.New("participants do not match number of players")
	ErrMissingCourt           = errors.New("court is required for a direct booking")
	ErrInvalidCourt           = errors.New("court id is not a valid uuid")
	ErrMissingTimeSlot        = errors.New("time slot is required")
	ErrInvalidTimeSlot        = errors.New("time slot must use HH:MM format")
	ErrWindowMismatch         = errors.New("date is not in the window of the booking mode")
	ErrUnknownMode            = errors.New("unknown booking mode")

	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidEmail       = errors.New("email is not valid")
	ErrPasswordTooShort   = errors.New("password must have at least 6 characters")
)
