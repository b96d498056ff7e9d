package services

import "errors"

var (
	// ErrValidation marks missing or malformed input, mapped to 400.
	ErrValidation = errors.New("validation failed")

	// ErrAlreadyEnrolled is returned when a (user, course) pair already has
	// an enrollment record, mapped to 409.
	ErrAlreadyEnrolled = errors.New("already enrolled")

	// ErrEnrollmentNotFound is returned for an unknown enrollment id,
	// mapped to 404.
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	// ErrEmailTaken is returned on sign-up with an email that already has
	// an account.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials is returned on sign-in with a wrong email or
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
