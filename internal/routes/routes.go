// Package routes defines the API routing configuration.
// It wires repositories, services and handlers together and registers all
// HTTP routes on the app.
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"

	"payvault/internal/config"
	"payvault/internal/handlers"
	"payvault/internal/repositories"
	"payvault/internal/services/account"
	"payvault/internal/services/notification"
	"payvault/internal/services/transfer"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, logger *zap.Logger) {
	// Initialize repositories
	accountRepo := repositories.NewAccountRepository()

	// Initialize services in correct order
	notifier := notification.NewService(logger)
	accountService := account.NewService(accountRepo, logger)
	transferService := transfer.NewService(accountRepo, notifier, logger)

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	transferHandler := handlers.NewTransferHandler(transferService)

	app.Get("/health", handlers.HealthCheck)

	accounts := app.Group("/v1/accounts")
	accounts.Post("/", accountHandler.CreateAccount)

	accounts.Post("/transfer", limiter.New(limiter.Config{
		Max:        config.GetIntEnv("RATE_LIMIT_TRANSFER", 120),
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}), transferHandler.Transfer)

	accounts.Get("/:accountId", accountHandler.GetAccount)
}
