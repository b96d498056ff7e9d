package models

import "time"

// EnrollmentRecord ties one learner to one course. At most one record may
// exist per (UserID, CourseID) pair; the enrollment service enforces that
// at creation time.
type EnrollmentRecord struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	CourseID        int       `json:"courseId"`
	EnrolledAt      time.Time `json:"enrolledAt"`
	Progress        int       `json:"progress"`
	CompletedVideos []int     `json:"completedVideos"`
	LastAccessed    time.Time `json:"lastAccessed"`
}

// HasVideo reports whether the lesson id is already recorded as completed.
func (r *EnrollmentRecord) HasVideo(videoID int) bool {
	for _, id := range r.CompletedVideos {
		if id == videoID {
			return true
		}
	}
	return false
}
