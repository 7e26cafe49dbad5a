// file: internals/features/fitscore/submission/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	submissionController "fitscore_backend/internals/features/fitscore/submission/controller"
	"fitscore_backend/internals/features/fitscore/submission/repository"
	"fitscore_backend/internals/features/fitscore/submission/service"
	"fitscore_backend/internals/mailer"
)

// PublicSubmissionRoutes: endpoint formulário público (tanpa auth).
func PublicSubmissionRoutes(api fiber.Router, db *gorm.DB, mail mailer.Mailer) {
	repo := repository.NewGormSubmissionRepository(db)
	svc := service.NewSubmissionService(repo)
	ctrl := submissionController.NewSubmissionController(svc, mail)

	api.Post("/submit-form", ctrl.SubmitForm)
	api.Get("/form/questions", ctrl.GetQuestions)
}
