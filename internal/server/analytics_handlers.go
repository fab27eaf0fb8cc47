package server

import (
	"scamwatch/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetReportStats handles GET /api/analytics/reports
func (s *Server) GetReportStats(c *fiber.Ctx) error {
	stats, err := s.analyticsService.GetStats(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(stats)
}
