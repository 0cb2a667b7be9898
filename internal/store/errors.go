package store

import "errors"

var (
	// ErrInvalidDocument is returned when a new document lacks a title or image URL.
	ErrInvalidDocument = errors.New("document needs a title and an image URL")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInvalidCredentials is returned when a credential update has an empty field.
	ErrInvalidCredentials = errors.New("username and password are required")
	// ErrUnavailable is returned by mutations when the backend could not be read,
	// so a default snapshot is never written over data that may still exist.
	ErrUnavailable = errors.New("store backend unavailable")
)
