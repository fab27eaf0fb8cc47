package server

import (
	"scamwatch/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserNotifications handles GET /api/users/:userId/notifications
func (s *Server) GetUserNotifications(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)

	list, err := s.notificationService.List(c.UserContext(), userID, page.Limit, page.Offset())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(list)
}

// MarkNotificationRead handles PUT /api/notifications/:id/read
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	notification, err := s.notificationService.MarkRead(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(notification)
}

// MarkAllNotificationsRead handles PUT /api/users/:userId/notifications/read-all
func (s *Server) MarkAllNotificationsRead(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.notificationService.MarkAllRead(c.UserContext(), userID); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"message": "All notifications marked as read"})
}
