package models

import "time"

// Feedback is a student feedback submission about a course.
type Feedback struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Course    string    `json:"course"`
	Rating    int       `json:"rating"`
	Feedback  string    `json:"feedback"`
	Timestamp time.Time `json:"timestamp"`
}
