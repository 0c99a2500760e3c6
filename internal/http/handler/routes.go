package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"

	"bakeryapi/internal/config"
	"bakeryapi/internal/service"
)

// Services bundles the injected services used by the HTTP routes.
type Services struct {
	Products service.ProductService
	Reviews  service.ReviewService
	Auth     service.AuthService
	Orders   service.OrderService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Product
// mutations sit behind the JWT guard; everything else is public.
func RegisterRoutes(app *fiber.App, db *sql.DB, cfg *config.AppConfig, svcs Services) {
	// Liveness text kept for clients probing the root path
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Bakery API is running...")
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/api/auth/login", Login(svcs.Auth))

	app.Get("/api/reviews", ListReviews(svcs.Reviews))
	app.Post("/api/reviews", CreateReview(svcs.Reviews))

	app.Get("/api/products", ListProducts(svcs.Products))
	app.Post("/api/orders/handoff", CreateOrderHandoff(svcs.Orders))

	guard := JWTGuard(cfg.Auth.JWTSecret)
	app.Post("/api/products", guard, CreateProduct(svcs.Products))
	app.Put("/api/products/:id", guard, UpdateProduct(svcs.Products))
	app.Delete("/api/products/:id", guard, DeleteProduct(svcs.Products))
}

// JWTGuard authorizes privileged requests with a Bearer token issued by the
// login endpoint.
func JWTGuard(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: []byte(secret),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "missing or invalid token")
		},
	})
}

// HealthCheck verifies DB connectivity.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a bare liveness check with no dependencies.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
