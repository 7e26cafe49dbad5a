// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "fitscore_backend/internals/features/users/user/controller"
)

// UserRoutes: rotas de conta interna (grup sudah dilindungi auth).
func UserRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	protected.Get("/user", ctrl.GetProfile)
	protected.Patch("/user/email", ctrl.UpdateEmail)
}
