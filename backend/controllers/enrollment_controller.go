package controllers

import (
	"errors"
	"log"
	"math"

	"github.com/gofiber/fiber/v2"

	"skillshub/backend/catalog"
	"skillshub/backend/middleware"
	"skillshub/backend/notify"
	"skillshub/backend/services"
	"skillshub/backend/utils"
)

type EnrollmentController struct {
	Enrollments *services.EnrollmentService
	Users       *services.UserService
	Notifier    *notify.Notifier
	Logger      *log.Logger
}

func NewEnrollmentController(enrollments *services.EnrollmentService, users *services.UserService, notifier *notify.Notifier, logger *log.Logger) *EnrollmentController {
	return &EnrollmentController{
		Enrollments: enrollments,
		Users:       users,
		Notifier:    notifier,
		Logger:      logger,
	}
}

// Create godoc
// @Summary Enroll in a course
// @Description Creates an enrollment record for the acting user
// @Tags enrollment
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /enrollment [post]
func (ec *EnrollmentController) Create(c *fiber.Ctx) error {
	var body struct {
		UserID   string `json:"userId"`
		CourseID int    `json:"courseId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// Session identity wins over the body's userId.
	userID, _ := c.Locals(middleware.SessionUserLocal).(string)
	if userID == "" {
		userID = body.UserID
	}
	if userID == "" || body.CourseID == 0 {
		return utils.BadRequest(c, "userId and courseId required")
	}

	rec, err := ec.Enrollments.Create(userID, body.CourseID)
	switch {
	case errors.Is(err, services.ErrAlreadyEnrolled):
		return utils.Conflict(c, "Already enrolled")
	case errors.Is(err, services.ErrValidation):
		return utils.BadRequest(c, err.Error())
	case err != nil:
		ec.Logger.Printf("create enrollment: %v", err)
		return utils.InternalServerError(c, "Internal error")
	}

	ec.sendEnrollmentEmail(userID, rec.CourseID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"enrollment": rec,
	})
}

// List godoc
// @Summary List a user's enrollments
// @Tags enrollment
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /enrollment [get]
func (ec *EnrollmentController) List(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.SessionUserLocal).(string)
	if userID == "" {
		userID = c.Query("userId")
	}
	if userID == "" {
		return utils.BadRequest(c, "userId required")
	}

	records, err := ec.Enrollments.ByUser(userID)
	if err != nil {
		ec.Logger.Printf("list enrollments: %v", err)
		return utils.InternalServerError(c, "Internal error")
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"enrollments": records,
		"total":       len(records),
	})
}

// Update godoc
// @Summary Record lesson progress
// @Description Applies a progress value and/or a completed video id
// @Tags enrollment
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /enrollment [put]
func (ec *EnrollmentController) Update(c *fiber.Ctx) error {
	var body struct {
		EnrollmentID string   `json:"enrollmentId"`
		VideoID      *int     `json:"videoId"`
		Progress     *float64 `json:"progress"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if body.EnrollmentID == "" {
		return utils.BadRequest(c, "enrollmentId required")
	}

	rec, err := ec.Enrollments.UpdateProgress(body.EnrollmentID, services.ProgressUpdate{
		Progress:   body.Progress,
		AddVideoID: body.VideoID,
	})
	switch {
	case errors.Is(err, services.ErrEnrollmentNotFound):
		return utils.NotFound(c, "Enrollment not found")
	case err != nil:
		ec.Logger.Printf("update enrollment: %v", err)
		return utils.InternalServerError(c, "Internal error")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"enrollment": rec,
	})
}

// Progress godoc
// @Summary Course progress for the signed-in user
// @Tags enrollment
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /enrollment/progress [get]
func (ec *EnrollmentController) Progress(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.SessionUserLocal).(string)
	if userID == "" {
		return utils.Unauthorized(c, "Unauthorized. Please sign in.")
	}

	courseID := c.QueryInt("courseId")
	if courseID <= 0 {
		return utils.BadRequest(c, "courseId required")
	}

	rec, err := ec.Enrollments.Find(userID, courseID)
	if err != nil {
		ec.Logger.Printf("find enrollment: %v", err)
		return utils.InternalServerError(c, "Internal error")
	}
	if rec == nil {
		return utils.NotFound(c, "Enrollment not found")
	}

	completionRate := 0
	if total := catalog.VideoCount(courseID); total > 0 {
		completionRate = int(math.Floor(float64(len(rec.CompletedVideos)) / float64(total) * 100))
		if completionRate > 100 {
			completionRate = 100
		}
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"enrollment":     rec,
		"completionRate": completionRate,
	})
}

// sendEnrollmentEmail fires the welcome email when the enrolled id maps to
// a registered account. Arbitrary external user ids enroll fine without
// one.
func (ec *EnrollmentController) sendEnrollmentEmail(userID string, courseID int) {
	user, err := ec.Users.FindByID(userID)
	if err != nil || user == nil {
		return
	}
	if course := catalog.CourseByID(courseID); course != nil {
		ec.Notifier.EnrollmentCreated(user.Email, user.FullName, *course)
	}
}
