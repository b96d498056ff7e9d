package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillshub/backend/store"
)

func newEnrollmentService() *EnrollmentService {
	return NewEnrollmentService(store.NewMemoryStore())
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestCreateSetsDefaults(t *testing.T) {
	svc := newEnrollmentService()

	rec, err := svc.Create("u1", 2)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "u1", rec.UserID)
	assert.Equal(t, 2, rec.CourseID)
	assert.Equal(t, 0, rec.Progress)
	assert.Equal(t, []int{}, rec.CompletedVideos)
	assert.False(t, rec.EnrolledAt.IsZero())

	found, err := svc.Find("u1", 2)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, rec.ID, found.ID)
}

func TestCreateDuplicateFails(t *testing.T) {
	svc := newEnrollmentService()

	_, err := svc.Create("u1", 1)
	require.NoError(t, err)

	_, err = svc.Create("u1", 1)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	// Same user, different course is fine; same course, different user too.
	_, err = svc.Create("u1", 2)
	assert.NoError(t, err)
	_, err = svc.Create("u2", 1)
	assert.NoError(t, err)
}

func TestCreateValidation(t *testing.T) {
	svc := newEnrollmentService()

	_, err := svc.Create("", 1)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create("u1", 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create("u1", -3)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProgressClamping(t *testing.T) {
	svc := newEnrollmentService()
	rec, err := svc.Create("u1", 1)
	require.NoError(t, err)

	cases := []struct {
		in   float64
		want int
	}{
		{150, 100},
		{-5, 0},
		{57, 57},
		{57.9, 57}, // floor, not round
		{100, 100},
		{0, 0},
	}
	for _, tc := range cases {
		updated, err := svc.UpdateProgress(rec.ID, ProgressUpdate{Progress: floatPtr(tc.in)})
		require.NoError(t, err)
		assert.Equal(t, tc.want, updated.Progress, "progress %v", tc.in)
	}
}

func TestUpdateProgressMayDecrease(t *testing.T) {
	svc := newEnrollmentService()
	rec, err := svc.Create("u1", 1)
	require.NoError(t, err)

	_, err = svc.UpdateProgress(rec.ID, ProgressUpdate{Progress: floatPtr(80)})
	require.NoError(t, err)

	updated, err := svc.UpdateProgress(rec.ID, ProgressUpdate{Progress: floatPtr(40)})
	require.NoError(t, err)
	assert.Equal(t, 40, updated.Progress)
}

func TestUpdateProgressIdempotentVideo(t *testing.T) {
	svc := newEnrollmentService()
	rec, err := svc.Create("u1", 1)
	require.NoError(t, err)

	updated, err := svc.UpdateProgress(rec.ID, ProgressUpdate{AddVideoID: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, updated.CompletedVideos)

	updated, err = svc.UpdateProgress(rec.ID, ProgressUpdate{AddVideoID: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, updated.CompletedVideos)

	// First-insertion order is preserved.
	updated, err = svc.UpdateProgress(rec.ID, ProgressUpdate{AddVideoID: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, updated.CompletedVideos)
}

func TestUpdateProgressRefreshesLastAccessed(t *testing.T) {
	svc := newEnrollmentService()
	rec, err := svc.Create("u1", 1)
	require.NoError(t, err)

	updated, err := svc.UpdateProgress(rec.ID, ProgressUpdate{})
	require.NoError(t, err)
	assert.False(t, updated.LastAccessed.Before(rec.LastAccessed))
}

func TestUpdateProgressUnknownID(t *testing.T) {
	svc := newEnrollmentService()

	_, err := svc.UpdateProgress("enroll_0_missing", ProgressUpdate{Progress: floatPtr(10)})
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestByUserInsertionOrder(t *testing.T) {
	svc := newEnrollmentService()

	first, err := svc.Create("u1", 1)
	require.NoError(t, err)
	second, err := svc.Create("u1", 2)
	require.NoError(t, err)
	_, err = svc.Create("u2", 1)
	require.NoError(t, err)

	records, err := svc.ByUser("u1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, second.ID, records[1].ID)

	records, err = svc.ByUser("nobody")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStorageErrorsPropagate(t *testing.T) {
	st := store.NewMemoryStore()
	st.FailWrites = store.ErrStorage
	svc := NewEnrollmentService(st)

	_, err := svc.Create("u1", 1)
	assert.ErrorIs(t, err, store.ErrStorage)
}

func TestEnrollAndWatchScenario(t *testing.T) {
	svc := newEnrollmentService()

	rec, err := svc.Create("student_1", 2)
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)

	updated, err := svc.UpdateProgress(rec.ID, ProgressUpdate{
		Progress:   floatPtr(40),
		AddVideoID: intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 40, updated.Progress)
	assert.Equal(t, []int{1}, updated.CompletedVideos)

	updated, err = svc.UpdateProgress(rec.ID, ProgressUpdate{AddVideoID: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, updated.CompletedVideos)
}
