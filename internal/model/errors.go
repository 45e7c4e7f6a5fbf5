package model

import "errors"

var (
	// User related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUser      = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token verification errors
	ErrMalformedToken = errors.New("malformed token")
	ErrExpiredToken   = errors.New("token expired")
	ErrInvalidToken   = errors.New("invalid token")

	// Authorization errors
	ErrAccessDenied = errors.New("access denied")

	// Resource errors
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrContactNotFound   = errors.New("contact not found")
	ErrBillNotFound      = errors.New("bill not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
