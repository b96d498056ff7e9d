package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"skillshub/backend/services"
	"skillshub/backend/utils"
)

type AdminController struct {
	Stats  *services.StatsService
	Logger *log.Logger
}

func NewAdminController(stats *services.StatsService, logger *log.Logger) *AdminController {
	return &AdminController{Stats: stats, Logger: logger}
}

// Overview godoc
// @Summary Platform overview
// @Description Aggregate user, enrollment and feedback numbers
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /admin/overview [get]
func (ac *AdminController) Overview(c *fiber.Ctx) error {
	stats, err := ac.Stats.Snapshot()
	if err != nil {
		ac.Logger.Printf("stats snapshot: %v", err)
		return utils.InternalServerError(c, "Internal error")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"overview": stats,
	})
}
