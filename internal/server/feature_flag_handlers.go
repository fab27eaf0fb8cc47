package server

import "github.com/gofiber/fiber/v2"

// GetFeatureFlags returns configured feature flags and their evaluated state.
// An optional userId query parameter evaluates percentage rollouts for that user.
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	userID := uint(c.QueryInt("userId", 0))

	if s.featureFlags == nil {
		return c.JSON(fiber.Map{
			"raw":       map[string]string{},
			"evaluated": map[string]bool{},
		})
	}

	return c.JSON(fiber.Map{
		"raw":       s.featureFlags.Raw(),
		"evaluated": s.featureFlags.Snapshot(userID),
	})
}
