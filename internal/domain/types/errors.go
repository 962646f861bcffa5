package types

import "errors"

var (
	ErrDataUnavailable = errors.New("session data unavailable")
	ErrStudentNotFound = errors.New("student not found")

	ErrUnknownRangePreset = errors.New("unknown date range preset")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
	ErrNotFound           = errors.New("requested item not found")
)
