package store

import (
	"sync"

	"skillshub/backend/models"
)

// MemoryStore is a volatile store for tests and local experiments. It
// implements the same interfaces as FileStore so every test run gets an
// isolated backing set.
type MemoryStore struct {
	mu          sync.Mutex
	enrollments []models.EnrollmentRecord
	users       []models.User
	feedback    []models.Feedback

	// FailWrites, when set, is returned by every mutating call. Used to
	// exercise storage error paths.
	FailWrites error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) ReadAll() ([]models.EnrollmentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.EnrollmentRecord, len(s.enrollments))
	copy(out, s.enrollments)
	return out, nil
}

func (s *MemoryStore) WriteAll(records []models.EnrollmentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.enrollments = make([]models.EnrollmentRecord, len(records))
	copy(s.enrollments, records)
	return nil
}

func (s *MemoryStore) AllUsers() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryStore) AppendUser(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.users = append(s.users, user)
	return nil
}

func (s *MemoryStore) AllFeedback() ([]models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Feedback, len(s.feedback))
	copy(out, s.feedback)
	return out, nil
}

func (s *MemoryStore) AppendFeedback(entry models.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.feedback = append(s.feedback, entry)
	return nil
}
