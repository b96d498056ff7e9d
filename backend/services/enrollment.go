package services

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"skillshub/backend/models"
	"skillshub/backend/store"
)

// EnrollmentService enforces the enrollment invariants over a RecordStore.
//
// Every mutation is a full read-modify-write cycle against the store, and
// the service mutex serializes those cycles. That closes the
// check-then-write race between two concurrent enrollments for the same
// pair within one process; the postgres backend additionally carries a
// unique (user, course) index for multi-writer deployments.
type EnrollmentService struct {
	mu    sync.Mutex
	store store.RecordStore
	now   func() time.Time
}

func NewEnrollmentService(st store.RecordStore) *EnrollmentService {
	return &EnrollmentService{store: st, now: time.Now}
}

// ProgressUpdate carries the optional fields of an update request.
// Progress arrives as a float because callers may send fractional values;
// it is floor-truncated before clamping.
type ProgressUpdate struct {
	Progress   *float64
	AddVideoID *int
}

// Find returns the record for the (user, course) pair, or nil when the
// user is not enrolled.
func (s *EnrollmentService) Find(userID string, courseID int) (*models.EnrollmentRecord, error) {
	records, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].UserID == userID && records[i].CourseID == courseID {
			rec := records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

// ByUser returns the user's enrollments in insertion order.
func (s *EnrollmentService) ByUser(userID string) ([]models.EnrollmentRecord, error) {
	records, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}
	out := []models.EnrollmentRecord{}
	for i := range records {
		if records[i].UserID == userID {
			out = append(out, records[i])
		}
	}
	return out, nil
}

// Create enrolls the user in the course. Enrolling twice in the same
// course fails with ErrAlreadyEnrolled rather than upserting.
func (s *EnrollmentService) Create(userID string, courseID int) (*models.EnrollmentRecord, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: courseId must be a positive integer", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].UserID == userID && records[i].CourseID == courseID {
			return nil, ErrAlreadyEnrolled
		}
	}

	now := s.now()
	rec := models.EnrollmentRecord{
		ID:              newEnrollmentID(now),
		UserID:          userID,
		CourseID:        courseID,
		EnrolledAt:      now,
		Progress:        0,
		CompletedVideos: []int{},
		LastAccessed:    now,
	}

	records = append(records, rec)
	if err := s.store.WriteAll(records); err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateProgress applies a progress value and/or a completed video id to
// the record. The progress value is floor-truncated and clamped to
// [0, 100]; adding an already-recorded video id is a no-op. LastAccessed
// refreshes on every call either way.
func (s *EnrollmentService) UpdateProgress(enrollmentID string, upd ProgressUpdate) (*models.EnrollmentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range records {
		if records[i].ID == enrollmentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrEnrollmentNotFound
	}

	rec := &records[idx]
	if upd.Progress != nil {
		rec.Progress = clampProgress(*upd.Progress)
	}
	if upd.AddVideoID != nil && !rec.HasVideo(*upd.AddVideoID) {
		rec.CompletedVideos = append(rec.CompletedVideos, *upd.AddVideoID)
	}
	rec.LastAccessed = s.now()

	if err := s.store.WriteAll(records); err != nil {
		return nil, err
	}

	out := *rec
	return &out, nil
}

// All returns every enrollment record, used by the stats snapshot.
func (s *EnrollmentService) All() ([]models.EnrollmentRecord, error) {
	return s.store.ReadAll()
}

// clampProgress truncates toward zero and clamps to [0, 100]. Truncation
// direction is pinned to floor so fractional inputs behave
// deterministically.
func clampProgress(value float64) int {
	p := int(math.Floor(value))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func newEnrollmentID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("enroll_%d_%s", now.UnixMilli(), suffix[:7])
}
