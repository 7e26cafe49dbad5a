// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "fitscore_backend/internals/features/users/auth/controller"
	"fitscore_backend/internals/middlewares"
	authMiddleware "fitscore_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api.Post("/sessions", middlewares.LoginRateLimiter(), ctrl.Login)

	protected := api.Group("", authMiddleware.AuthMiddleware(db))
	protected.Post("/sessions/logout", ctrl.Logout)
	protected.Get("/me", ctrl.Me)
}
