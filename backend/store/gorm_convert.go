package store

import (
	"encoding/json"
	"time"

	"skillshub/backend/models"
)

const timeLayout = time.RFC3339Nano

func (row EnrollmentRow) toRecord() (models.EnrollmentRecord, error) {
	enrolledAt, err := time.Parse(timeLayout, row.EnrolledAt)
	if err != nil {
		return models.EnrollmentRecord{}, err
	}
	lastAccessed, err := time.Parse(timeLayout, row.LastAccessed)
	if err != nil {
		return models.EnrollmentRecord{}, err
	}

	videos := []int{}
	if row.CompletedVideos != "" {
		if err := json.Unmarshal([]byte(row.CompletedVideos), &videos); err != nil {
			return models.EnrollmentRecord{}, err
		}
	}

	return models.EnrollmentRecord{
		ID:              row.RecordID,
		UserID:          row.UserID,
		CourseID:        row.CourseID,
		EnrolledAt:      enrolledAt,
		Progress:        row.Progress,
		CompletedVideos: videos,
		LastAccessed:    lastAccessed,
	}, nil
}

func rowFromRecord(rec models.EnrollmentRecord) (EnrollmentRow, error) {
	videos := rec.CompletedVideos
	if videos == nil {
		videos = []int{}
	}
	encoded, err := json.Marshal(videos)
	if err != nil {
		return EnrollmentRow{}, err
	}

	return EnrollmentRow{
		RecordID:        rec.ID,
		UserID:          rec.UserID,
		CourseID:        rec.CourseID,
		EnrolledAt:      rec.EnrolledAt.Format(timeLayout),
		Progress:        rec.Progress,
		CompletedVideos: string(encoded),
		LastAccessed:    rec.LastAccessed.Format(timeLayout),
	}, nil
}

func (row UserRow) toUser() models.User {
	courses := []int{}
	if row.EnrolledCourses != "" {
		json.Unmarshal([]byte(row.EnrolledCourses), &courses)
	}
	createdAt, _ := time.Parse(timeLayout, row.CreatedAt)

	return models.User{
		ID:              row.UserID,
		FullName:        row.FullName,
		Email:           row.Email,
		PasswordHash:    row.PasswordHash,
		CreatedAt:       createdAt,
		EnrolledCourses: courses,
	}
}

func rowFromUser(user models.User) UserRow {
	courses := user.EnrolledCourses
	if courses == nil {
		courses = []int{}
	}
	encoded, _ := json.Marshal(courses)

	return UserRow{
		UserID:          user.ID,
		FullName:        user.FullName,
		Email:           user.Email,
		PasswordHash:    user.PasswordHash,
		CreatedAt:       user.CreatedAt.Format(timeLayout),
		EnrolledCourses: string(encoded),
	}
}

func (row FeedbackRow) toFeedback() models.Feedback {
	timestamp, _ := time.Parse(timeLayout, row.Timestamp)
	return models.Feedback{
		Name:      row.Name,
		Email:     row.Email,
		Course:    row.Course,
		Rating:    row.Rating,
		Feedback:  row.Feedback,
		Timestamp: timestamp,
	}
}
