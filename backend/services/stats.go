package services

import (
	"sync"
	"time"

	"skillshub/backend/models"
)

// StatsService aggregates platform-wide numbers for the admin overview
// and the daily snapshot job.
type StatsService struct {
	enrollments *EnrollmentService
	users       *UserService
	feedback    *FeedbackService

	mu   sync.Mutex
	last *models.PlatformStats
}

func NewStatsService(enrollments *EnrollmentService, users *UserService, feedback *FeedbackService) *StatsService {
	return &StatsService{
		enrollments: enrollments,
		users:       users,
		feedback:    feedback,
	}
}

// Snapshot recomputes the aggregate stats and remembers the result.
func (s *StatsService) Snapshot() (models.PlatformStats, error) {
	records, err := s.enrollments.All()
	if err != nil {
		return models.PlatformStats{}, err
	}
	users, err := s.users.All()
	if err != nil {
		return models.PlatformStats{}, err
	}
	feedback, err := s.feedback.All()
	if err != nil {
		return models.PlatformStats{}, err
	}

	stats := models.PlatformStats{
		TotalUsers:        len(users),
		TotalEnrollments:  len(records),
		TotalFeedback:     len(feedback),
		CourseEnrollments: map[int]int{},
		GeneratedAt:       time.Now(),
	}

	progressSum := 0
	for i := range records {
		progressSum += records[i].Progress
		stats.CourseEnrollments[records[i].CourseID]++
	}
	if len(records) > 0 {
		stats.AverageProgress = float64(progressSum) / float64(len(records))
	}

	s.mu.Lock()
	s.last = &stats
	s.mu.Unlock()

	return stats, nil
}

// Latest returns the most recent snapshot, computing one if none exists
// yet.
func (s *StatsService) Latest() (models.PlatformStats, error) {
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()

	if last != nil {
		return *last, nil
	}
	return s.Snapshot()
}
