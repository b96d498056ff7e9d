package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillshub/backend/models"
)

func sampleRecord(id, userID string, courseID int) models.EnrollmentRecord {
	now := time.Now().UTC().Truncate(time.Second)
	return models.EnrollmentRecord{
		ID:              id,
		UserID:          userID,
		CourseID:        courseID,
		EnrolledAt:      now,
		Progress:        0,
		CompletedVideos: []int{},
		LastAccessed:    now,
	}
}

func TestReadAllMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist"))

	records, err := s.ReadAll()
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)

	want := []models.EnrollmentRecord{
		sampleRecord("enroll_1", "u1", 1),
		sampleRecord("enroll_2", "u2", 3),
	}
	require.NoError(t, s.WriteAll(want))

	got, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "enroll_1", got[0].ID)
	assert.Equal(t, "u2", got[1].UserID)
	assert.Equal(t, 3, got[1].CourseID)

	// The file carries the schema version tag.
	raw, err := os.ReadFile(filepath.Join(dir, "enrollments.json"))
	require.NoError(t, err)
	var envelope struct {
		Version int `json:"version"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, 1, envelope.Version)
}

func TestReadAllCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enrollments.json"), []byte("{not json"), 0o644))

	s := NewFileStore(dir)
	records, err := s.ReadAll()
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadAllLegacyBareArray(t *testing.T) {
	dir := t.TempDir()
	legacy := []models.EnrollmentRecord{sampleRecord("enroll_old", "u1", 2)}
	raw, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enrollments.json"), raw, 0o644))

	s := NewFileStore(dir)
	records, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "enroll_old", records[0].ID)
}

func TestWriteAllReplacesSet(t *testing.T) {
	s := NewFileStore(t.TempDir())

	require.NoError(t, s.WriteAll([]models.EnrollmentRecord{
		sampleRecord("enroll_1", "u1", 1),
		sampleRecord("enroll_2", "u1", 2),
	}))
	require.NoError(t, s.WriteAll([]models.EnrollmentRecord{
		sampleRecord("enroll_3", "u2", 1),
	}))

	records, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "enroll_3", records[0].ID)
}

func TestUsersAppendAndList(t *testing.T) {
	s := NewFileStore(t.TempDir())

	require.NoError(t, s.AppendUser(models.User{ID: "user_1", Email: "a@example.com", PasswordHash: "x"}))
	require.NoError(t, s.AppendUser(models.User{ID: "user_2", Email: "b@example.com", PasswordHash: "y"}))

	users, err := s.AllUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "user_1", users[0].ID)
	assert.Equal(t, "x", users[0].PasswordHash)
}

func TestFeedbackAppendAndList(t *testing.T) {
	s := NewFileStore(t.TempDir())

	require.NoError(t, s.AppendFeedback(models.Feedback{Name: "Ann", Email: "ann@example.com", Feedback: "great"}))

	entries, err := s.AllFeedback()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Ann", entries[0].Name)
}
