package handlers

import "github.com/gofiber/fiber/v2"

// HealthHandler answers the healthcheck at the service root.
type HealthHandler struct {
	serviceName string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName}
}

// RegisterRoutes registers the healthcheck route with the Fiber app.
func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleHealthcheck)
}

// HandleHealthcheck reports service liveness.
func (h *HealthHandler) HandleHealthcheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok":      true,
		"service": h.serviceName,
	})
}
