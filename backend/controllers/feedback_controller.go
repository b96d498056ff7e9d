package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"skillshub/backend/models"
	"skillshub/backend/notify"
	"skillshub/backend/services"
	"skillshub/backend/utils"
)

type FeedbackController struct {
	Feedback *services.FeedbackService
	Notifier *notify.Notifier
	Logger   *log.Logger
}

func NewFeedbackController(feedback *services.FeedbackService, notifier *notify.Notifier, logger *log.Logger) *FeedbackController {
	return &FeedbackController{Feedback: feedback, Notifier: notifier, Logger: logger}
}

type feedbackInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Course   string `json:"course"`
	Rating   int    `json:"rating" validate:"min=0,max=5"`
	Feedback string `json:"feedback" validate:"required"`
}

// Submit godoc
// @Summary Submit course feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /feedback [post]
func (fc *FeedbackController) Submit(c *fiber.Ctx) error {
	var input feedbackInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, "Missing required fields", validationDetails(err))
	}

	entry, err := fc.Feedback.Submit(models.Feedback{
		Name:     input.Name,
		Email:    input.Email,
		Course:   input.Course,
		Rating:   input.Rating,
		Feedback: input.Feedback,
	})
	if err != nil {
		fc.Logger.Printf("submit feedback: %v", err)
		return utils.InternalServerError(c, "Failed to process feedback")
	}

	fc.Notifier.FeedbackReceived(entry)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Feedback recorded successfully",
	})
}

// List godoc
// @Summary List feedback submissions
// @Tags feedback
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /feedback [get]
func (fc *FeedbackController) List(c *fiber.Ctx) error {
	entries, err := fc.Feedback.All()
	if err != nil {
		fc.Logger.Printf("list feedback: %v", err)
		return utils.InternalServerError(c, "Internal error")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"feedback": entries,
		"total":    len(entries),
	})
}
