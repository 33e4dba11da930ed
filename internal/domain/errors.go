package domain

import "errors"

var (
	// ErrActivityNotFound indicates the requested activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the email is already on the roster.
	ErrAlreadySignedUp = errors.New("already signed up")
	// ErrNotSignedUp indicates the email is not on the roster.
	ErrNotSignedUp = errors.New("not signed up")
)
