package service

import "errors"

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password on login so the response cannot be used for enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAdminNotFound is returned by ChangePassword only, where the
	// route contract distinguishes an unknown principal.
	ErrAdminNotFound = errors.New("admin not found")

	// ErrInvalidStatus rejects status strings outside the three
	// lifecycle values.
	ErrInvalidStatus = errors.New("invalid status")
)
