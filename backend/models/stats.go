package models

import "time"

// PlatformStats is the aggregate snapshot shown on the admin overview and
// written by the daily scheduler.
type PlatformStats struct {
	TotalUsers        int         `json:"totalUsers"`
	TotalEnrollments  int         `json:"totalEnrollments"`
	TotalFeedback     int         `json:"totalFeedback"`
	AverageProgress   float64     `json:"averageProgress"`
	CourseEnrollments map[int]int `json:"courseEnrollments"`
	GeneratedAt       time.Time   `json:"generatedAt"`
}
