package models

import "time"

// User is a registered learner account. The password hash stays in the
// persisted form only; handlers must respond with Public().
type User struct {
	ID              string    `json:"id"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	PasswordHash    string    `json:"passwordHash"`
	CreatedAt       time.Time `json:"createdAt"`
	EnrolledCourses []int     `json:"enrolledCourses"`
}

// PublicUser is the response shape for user data, without credentials.
type PublicUser struct {
	ID              string    `json:"id"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	CreatedAt       time.Time `json:"createdAt"`
	EnrolledCourses []int     `json:"enrolledCourses"`
}

// Public strips the password hash for API responses.
func (u *User) Public() PublicUser {
	courses := u.EnrolledCourses
	if courses == nil {
		courses = []int{}
	}
	return PublicUser{
		ID:              u.ID,
		FullName:        u.FullName,
		Email:           u.Email,
		CreatedAt:       u.CreatedAt,
		EnrolledCourses: courses,
	}
}
