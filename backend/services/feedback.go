package services

import (
	"time"

	"skillshub/backend/models"
	"skillshub/backend/store"
)

// FeedbackService records student feedback submissions.
type FeedbackService struct {
	store store.FeedbackStore
	now   func() time.Time
}

func NewFeedbackService(st store.FeedbackStore) *FeedbackService {
	return &FeedbackService{store: st, now: time.Now}
}

// Submit stamps and persists a feedback entry.
func (s *FeedbackService) Submit(entry models.Feedback) (models.Feedback, error) {
	entry.Timestamp = s.now()
	if err := s.store.AppendFeedback(entry); err != nil {
		return models.Feedback{}, err
	}
	return entry, nil
}

// All returns every recorded entry in submission order.
func (s *FeedbackService) All() ([]models.Feedback, error) {
	return s.store.AllFeedback()
}
