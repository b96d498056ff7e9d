package controllers

import (
	"github.com/gofiber/fiber/v2"

	"skillshub/backend/catalog"
	"skillshub/backend/utils"
)

type MentorsController struct{}

func NewMentorsController() *MentorsController {
	return &MentorsController{}
}

// Get godoc
// @Summary Mentor profiles
// @Description Returns all mentors, one by id, or those teaching a course
// @Tags mentors
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /mentors [get]
func (mc *MentorsController) Get(c *fiber.Ctx) error {
	if id := c.QueryInt("id"); id > 0 {
		mentor := catalog.MentorByID(id)
		if mentor == nil {
			return utils.NotFound(c, "Mentor not found")
		}
		return c.JSON(fiber.Map{
			"success": true,
			"mentor":  mentor,
		})
	}

	if courseID := c.QueryInt("courseId"); courseID > 0 {
		mentors := catalog.MentorsByCourse(courseID)
		return c.JSON(fiber.Map{
			"success": true,
			"mentors": mentors,
			"total":   len(mentors),
		})
	}

	mentors := catalog.Mentors()
	return c.JSON(fiber.Map{
		"success": true,
		"mentors": mentors,
		"total":   len(mentors),
	})
}
