package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillshub/backend/models"
	"skillshub/backend/store"
)

func TestSnapshotAggregates(t *testing.T) {
	st := store.NewMemoryStore()
	enrollments := NewEnrollmentService(st)
	users := NewUserService(st)
	feedback := NewFeedbackService(st)
	stats := NewStatsService(enrollments, users, feedback)

	_, err := users.SignUp("Test User", "test@example.com", "password123")
	require.NoError(t, err)

	rec, err := enrollments.Create("u1", 1)
	require.NoError(t, err)
	_, err = enrollments.Create("u2", 1)
	require.NoError(t, err)
	_, err = enrollments.Create("u2", 3)
	require.NoError(t, err)

	_, err = enrollments.UpdateProgress(rec.ID, ProgressUpdate{Progress: floatPtr(60)})
	require.NoError(t, err)

	_, err = feedback.Submit(models.Feedback{Name: "Ann", Email: "ann@example.com", Feedback: "great"})
	require.NoError(t, err)

	snap, err := stats.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 1, snap.TotalUsers)
	assert.Equal(t, 3, snap.TotalEnrollments)
	assert.Equal(t, 1, snap.TotalFeedback)
	assert.Equal(t, 2, snap.CourseEnrollments[1])
	assert.Equal(t, 1, snap.CourseEnrollments[3])
	assert.InDelta(t, 20.0, snap.AverageProgress, 0.001)

	latest, err := stats.Latest()
	require.NoError(t, err)
	assert.Equal(t, snap.TotalEnrollments, latest.TotalEnrollments)
}

func TestSnapshotEmptyPlatform(t *testing.T) {
	st := store.NewMemoryStore()
	stats := NewStatsService(NewEnrollmentService(st), NewUserService(st), NewFeedbackService(st))

	snap, err := stats.Snapshot()
	require.NoError(t, err)
	assert.Zero(t, snap.TotalEnrollments)
	assert.Zero(t, snap.AverageProgress)
}
