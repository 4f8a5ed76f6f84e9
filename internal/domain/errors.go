package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrEmptyMessage      = errors.New("message is empty")
	ErrInvalidPreference = errors.New("invalid preference value")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrMissingField      = errors.New("required field is missing")
)
