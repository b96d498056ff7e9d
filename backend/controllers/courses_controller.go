package controllers

import (
	"github.com/gofiber/fiber/v2"

	"skillshub/backend/catalog"
	"skillshub/backend/utils"
)

type CoursesController struct{}

func NewCoursesController() *CoursesController {
	return &CoursesController{}
}

// Get godoc
// @Summary Course catalog
// @Description Returns all courses, or a single course when id is given
// @Tags courses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /courses [get]
func (cc *CoursesController) Get(c *fiber.Ctx) error {
	if id := c.QueryInt("id"); id > 0 {
		course := catalog.CourseByID(id)
		if course == nil {
			return utils.NotFound(c, "Course not found")
		}
		return c.JSON(fiber.Map{
			"success": true,
			"course":  course,
		})
	}

	courses := catalog.Courses()
	return c.JSON(fiber.Map{
		"success": true,
		"courses": courses,
		"total":   len(courses),
	})
}
