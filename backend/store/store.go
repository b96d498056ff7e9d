package store

import (
	"errors"

	"skillshub/backend/models"
)

// ErrStorage wraps I/O or database failures from any store backend.
// Business-level errors (duplicates, missing records) never use it.
var ErrStorage = errors.New("storage failure")

// RecordStore persists the full enrollment list. Reads of missing or
// corrupt storage return an empty list; writes replace the whole set.
// Backends do not serialize read-modify-write cycles themselves — the
// enrollment service holds the lock around check-then-write sequences.
type RecordStore interface {
	ReadAll() ([]models.EnrollmentRecord, error)
	WriteAll(records []models.EnrollmentRecord) error
}

// UserStore persists registered user accounts.
type UserStore interface {
	AllUsers() ([]models.User, error)
	AppendUser(user models.User) error
}

// FeedbackStore persists student feedback submissions.
type FeedbackStore interface {
	AllFeedback() ([]models.Feedback, error)
	AppendFeedback(entry models.Feedback) error
}
