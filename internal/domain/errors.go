package domain

import "errors"

var (
	ErrInvalidName       = errors.New("name must have at least two words of two or more letters")
	ErrInvalidHandle     = errors.New("handle must be 5-32 letters, digits or underscores")
	ErrUnknownLanguage   = errors.New("unknown language")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrNoGroupConfigured = errors.New("no group configured")
)
