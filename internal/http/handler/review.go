package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bakeryapi/internal/model"
	"bakeryapi/internal/service"
)

// ListReviews returns every review, newest first. A store failure answers with
// a server-error status but an empty list body, so the storefront renders an
// empty section instead of breaking.
func ListReviews(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON([]model.Review{})
		}
		return c.JSON(items)
	}
}

// CreateReview appends a testimonial submitted from the storefront.
func CreateReview(svc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ReviewInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		}
		rv, err := svc.Create(c.UserContext(), in)
		if err != nil {
			if errors.Is(err, service.ErrValidation) {
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "failed to save review")
		}
		return c.Status(fiber.StatusCreated).JSON(rv)
	}
}
