package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseLookup(t *testing.T) {
	assert.Len(t, Courses(), 3)

	course := CourseByID(2)
	if assert.NotNil(t, course) {
		assert.Equal(t, "Figma Design", course.Title)
	}

	assert.Nil(t, CourseByID(99))
	assert.Nil(t, CourseByID(0))
}

func TestVideoCount(t *testing.T) {
	assert.Equal(t, 9, VideoCount(1))
	assert.Equal(t, 7, VideoCount(2))
	assert.Equal(t, 9, VideoCount(3))
	assert.Equal(t, 0, VideoCount(42))
}

func TestVideoIDsAreUniquePerCourse(t *testing.T) {
	for _, course := range Courses() {
		seen := map[int]bool{}
		for _, v := range course.Videos {
			assert.Falsef(t, seen[v.ID], "course %d repeats video id %d", course.ID, v.ID)
			seen[v.ID] = true
		}
	}
}

func TestMentorLookup(t *testing.T) {
	assert.Len(t, Mentors(), 3)

	mentor := MentorByID(1)
	if assert.NotNil(t, mentor) {
		assert.NotEmpty(t, mentor.Name)
	}
	assert.Nil(t, MentorByID(42))
}

func TestMentorsByCourse(t *testing.T) {
	for _, course := range Courses() {
		assert.NotEmptyf(t, MentorsByCourse(course.ID), "course %d has no mentor", course.ID)
	}
	assert.Empty(t, MentorsByCourse(42))
}
