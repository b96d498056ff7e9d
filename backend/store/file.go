package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"skillshub/backend/models"
)

const enrollmentSchemaVersion = 1

// enrollmentFile is the on-disk envelope. The version tag lets a later
// schema change detect and migrate old files.
type enrollmentFile struct {
	Version     int                       `json:"version"`
	Enrollments []models.EnrollmentRecord `json:"enrollments"`
}

// FileStore keeps enrollments, users and feedback as JSON files under a
// data directory. Writes go through a temp file and rename, so readers
// never observe a partially written file.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) enrollmentsPath() string { return filepath.Join(s.dir, "enrollments.json") }
func (s *FileStore) usersPath() string       { return filepath.Join(s.dir, "users.json") }
func (s *FileStore) feedbackPath() string    { return filepath.Join(s.dir, "feedback.json") }

// ReadAll returns the persisted enrollment set. A missing or unreadable
// file reads as empty rather than failing.
func (s *FileStore) ReadAll() ([]models.EnrollmentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.enrollmentsPath())
	if err != nil {
		return []models.EnrollmentRecord{}, nil
	}

	var file enrollmentFile
	if err := json.Unmarshal(raw, &file); err == nil && file.Version > 0 {
		return file.Enrollments, nil
	}

	// Pre-versioning files were a bare array.
	var legacy []models.EnrollmentRecord
	if err := json.Unmarshal(raw, &legacy); err == nil {
		return legacy, nil
	}
	return []models.EnrollmentRecord{}, nil
}

// WriteAll atomically replaces the persisted enrollment set, creating the
// data directory on first write.
func (s *FileStore) WriteAll(records []models.EnrollmentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if records == nil {
		records = []models.EnrollmentRecord{}
	}
	return s.writeJSON(s.enrollmentsPath(), enrollmentFile{
		Version:     enrollmentSchemaVersion,
		Enrollments: records,
	})
}

func (s *FileStore) AllUsers() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := []models.User{}
	s.readJSON(s.usersPath(), &users)
	return users, nil
}

func (s *FileStore) AppendUser(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := []models.User{}
	s.readJSON(s.usersPath(), &users)
	users = append(users, user)
	return s.writeJSON(s.usersPath(), users)
}

func (s *FileStore) AllFeedback() ([]models.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := []models.Feedback{}
	s.readJSON(s.feedbackPath(), &entries)
	return entries, nil
}

func (s *FileStore) AppendFeedback(entry models.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := []models.Feedback{}
	s.readJSON(s.feedbackPath(), &entries)
	entries = append(entries, entry)
	return s.writeJSON(s.feedbackPath(), entries)
}

func (s *FileStore) readJSON(path string, out interface{}) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return
	}
	json.Unmarshal(raw, out)
}

func (s *FileStore) writeJSON(path string, v interface{}) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create data dir: %v", ErrStorage, err)
	}

	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrStorage, filepath.Base(path), err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStorage, filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: replace %s: %v", ErrStorage, filepath.Base(path), err)
	}
	return nil
}
