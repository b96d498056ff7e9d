package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"skillshub/backend/config"
	"skillshub/backend/controllers"
	"skillshub/backend/middleware"
	"skillshub/backend/notify"
	"skillshub/backend/services"
)

// Deps carries everything the route tree needs.
type Deps struct {
	Cfg         *config.Config
	Enrollments *services.EnrollmentService
	Gateway     *services.AuthGateway
	Users       *services.UserService
	Feedback    *services.FeedbackService
	Stats       *services.StatsService
	Notifier    *notify.Notifier
	Logger      *log.Logger
}

func SetupRoutes(app *fiber.App, d *Deps) {
	sessionAuth := middleware.SessionAuth(d.Gateway)
	adminOnly := middleware.AdminMiddleware(d.Cfg)

	// Enrollment + session core
	enrollmentController := controllers.NewEnrollmentController(d.Enrollments, d.Users, d.Notifier, d.Logger)
	app.Post("/enrollment", sessionAuth, enrollmentController.Create)
	app.Get("/enrollment", sessionAuth, enrollmentController.List)
	app.Put("/enrollment", sessionAuth, enrollmentController.Update)
	app.Get("/enrollment/progress", sessionAuth, enrollmentController.Progress)

	sessionController := controllers.NewSessionController(d.Gateway, d.Logger)
	app.Post("/session", sessionController.Create)
	app.Delete("/session", sessionController.Destroy)

	// Accounts
	authController := controllers.NewAuthController(d.Users, d.Gateway, d.Notifier, d.Cfg, d.Logger)
	app.Post("/auth/signup", authController.Signup)
	app.Post("/auth/signin", authController.Signin)
	app.Get("/auth/users", adminOnly, authController.ListUsers)

	// Catalog
	coursesController := controllers.NewCoursesController()
	app.Get("/courses", coursesController.Get)

	mentorsController := controllers.NewMentorsController()
	app.Get("/mentors", mentorsController.Get)

	// Feedback
	feedbackController := controllers.NewFeedbackController(d.Feedback, d.Notifier, d.Logger)
	app.Post("/feedback", feedbackController.Submit)
	app.Get("/feedback", adminOnly, feedbackController.List)

	// Admin
	adminController := controllers.NewAdminController(d.Stats, d.Logger)
	app.Get("/admin/overview", adminOnly, adminController.Overview)
}
