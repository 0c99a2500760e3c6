package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bakeryapi/internal/service"
)

// CreateOrderHandoff composes the outbound WhatsApp link for a storefront
// order form. Nothing is persisted.
func CreateOrderHandoff(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.OrderRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		}
		out, err := svc.Handoff(c.UserContext(), req)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrValidation):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "product not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(out)
	}
}
