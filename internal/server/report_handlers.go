package server

import (
	"strings"

	"scamwatch/internal/models"
	"scamwatch/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateReport handles POST /api/reports
func (s *Server) CreateReport(c *fiber.Ctx) error {
	var req struct {
		UserID         *uint                   `json:"userId"`
		Title          string                  `json:"title"`
		Description    string                  `json:"description"`
		Type           string                  `json:"type"`
		ScammerInfo    models.ScammerInfo      `json:"scammerInfo"`
		AmountLost     *float64                `json:"amountLost"`
		DateOfIncident string                  `json:"dateOfIncident"`
		Location       *string                 `json:"location"`
		Evidence       []service.EvidenceInput `json:"evidence"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	report, err := s.reportService.CreateReport(c.UserContext(), service.CreateReportInput{
		UserID:         req.UserID,
		Title:          req.Title,
		Description:    req.Description,
		Type:           req.Type,
		ScammerInfo:    req.ScammerInfo,
		AmountLost:     req.AmountLost,
		DateOfIncident: req.DateOfIncident,
		Location:       req.Location,
		Evidence:       req.Evidence,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(report)
}

// GetReports handles GET /api/reports with optional type/status/location filters
func (s *Server) GetReports(c *fiber.Ctx) error {
	page := parsePagination(c, 10)

	list, err := s.reportService.ListReports(c.UserContext(), service.ListReportsInput{
		Type:     strings.TrimSpace(c.Query("type")),
		Status:   strings.TrimSpace(c.Query("status")),
		Location: strings.TrimSpace(c.Query("location")),
		Page:     page.Page,
		Limit:    page.Limit,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(list)
}

// GetTrendingReports handles GET /api/reports/trending
func (s *Server) GetTrendingReports(c *fiber.Ctx) error {
	reports, err := s.reportService.Trending(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(reports)
}

// GetReport handles GET /api/reports/:id
func (s *Server) GetReport(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	report, err := s.reportService.GetReport(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(report)
}

// GetUserReports handles GET /api/users/:userId/reports
func (s *Server) GetUserReports(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 10)

	list, err := s.reportService.ListUserReports(c.UserContext(), userID, page.Page, page.Limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(list)
}

// VoteOnReport handles POST /api/reports/:id/vote
func (s *Server) VoteOnReport(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		VoteType string `json:"voteType"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	counts, err := s.reportService.Vote(c.UserContext(), id, req.VoteType)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(counts)
}

// UpdateReportStatus handles PUT /api/reports/:id/status
func (s *Server) UpdateReportStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	report, err := s.reportService.UpdateStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(report)
}

// DeleteReport handles DELETE /api/reports/:id
func (s *Server) DeleteReport(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.reportService.DeleteReport(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Report deleted successfully"})
}
