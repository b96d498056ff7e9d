// Package catalog holds the static course and mentor data shown on the
// marketing site. The catalog is read-only at runtime; editorial changes
// ship as code changes.
package catalog

import "skillshub/backend/models"

// Courses returns the full course list.
func Courses() []models.Course {
	return courses
}

// CourseByID returns the course with the given id, or nil.
func CourseByID(id int) *models.Course {
	for i := range courses {
		if courses[i].ID == id {
			return &courses[i]
		}
	}
	return nil
}

// VideoCount returns the number of lessons in a course, 0 for unknown ids.
func VideoCount(courseID int) int {
	course := CourseByID(courseID)
	if course == nil {
		return 0
	}
	return len(course.Videos)
}

// Mentors returns the full mentor list.
func Mentors() []models.Mentor {
	return mentors
}

// MentorByID returns the mentor with the given id, or nil.
func MentorByID(id int) *models.Mentor {
	for i := range mentors {
		if mentors[i].ID == id {
			return &mentors[i]
		}
	}
	return nil
}

// MentorsByCourse returns every mentor teaching the course.
func MentorsByCourse(courseID int) []models.Mentor {
	out := []models.Mentor{}
	for _, m := range mentors {
		for _, c := range m.Courses {
			if c == courseID {
				out = append(out, m)
				break
			}
		}
	}
	return out
}
