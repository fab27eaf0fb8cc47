package server

import (
	"context"
	"errors"
	"time"

	"scamwatch/internal/models"
	"scamwatch/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	users, err := s.userService.ListUsers(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{
				"error": "Request timeout",
			})
		}
		return models.RespondWithError(c, err)
	}

	return c.JSON(users)
}

// CreateUser handles POST /api/users
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req service.CreateUserInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.CreateUser(c.UserContext(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUser handles GET /api/users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(user)
}

// UpdateUser handles PUT /api/users/:id
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.UpdateUserInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateUser(c.UserContext(), id, req)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(user)
}
