package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"skillshub/backend/config"
	"skillshub/backend/models"
	"skillshub/backend/notify"
	"skillshub/backend/services"
	"skillshub/backend/utils"
)

type AuthController struct {
	Users    *services.UserService
	Gateway  *services.AuthGateway
	Notifier *notify.Notifier
	Cfg      *config.Config
	Logger   *log.Logger
}

func NewAuthController(users *services.UserService, gateway *services.AuthGateway, notifier *notify.Notifier, cfg *config.Config, logger *log.Logger) *AuthController {
	return &AuthController{
		Users:    users,
		Gateway:  gateway,
		Notifier: notifier,
		Cfg:      cfg,
		Logger:   logger,
	}
}

type signupInput struct {
	FullName        string `json:"fullName" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// Signup godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /auth/signup [post]
func (ac *AuthController) Signup(c *fiber.Ctx) error {
	var input signupInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, "Validation failed", validationDetails(err))
	}

	user, err := ac.Users.SignUp(input.FullName, input.Email, input.Password)
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		return utils.Conflict(c, "User with this email already exists")
	case err != nil:
		ac.Logger.Printf("signup: %v", err)
		return utils.InternalServerError(c, "Internal error")
	}

	ac.Notifier.UserRegistered(user.Email, user.FullName)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Account created successfully",
		"user":    user.Public(),
	})
}

type signinInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signin godoc
// @Summary Sign in with email and password
// @Description Verifies credentials, starts a session and issues an API token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/signin [post]
func (ac *AuthController) Signin(c *fiber.Ctx) error {
	var input signinInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, "Validation failed", validationDetails(err))
	}

	user, err := ac.Users.Authenticate(input.Email, input.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.Unauthorized(c, "Invalid email or password")
	case err != nil:
		ac.Logger.Printf("signin: %v", err)
		return utils.InternalServerError(c, "Internal error")
	}

	token, err := ac.Gateway.SignIn(c.UserContext(), user.ID)
	if err != nil {
		ac.Logger.Printf("signin session: %v", err)
		return utils.InternalServerError(c, "Internal error")
	}

	apiToken, err := utils.GenerateJWTToken(user.ID, user.Email, ac.Cfg)
	if err != nil {
		ac.Logger.Printf("signin jwt: %v", err)
		return utils.InternalServerError(c, "Internal error")
	}

	setSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Sign in successful",
		"user":     user.Public(),
		"token":    token,
		"apiToken": apiToken,
	})
}

// Users godoc
// @Summary List registered users
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /auth/users [get]
func (ac *AuthController) ListUsers(c *fiber.Ctx) error {
	users, err := ac.Users.All()
	if err != nil {
		ac.Logger.Printf("list users: %v", err)
		return utils.InternalServerError(c, "Internal error")
	}

	public := make([]models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"users":   public,
		"total":   len(public),
	})
}
