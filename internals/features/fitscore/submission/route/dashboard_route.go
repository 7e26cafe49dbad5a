// file: internals/features/fitscore/submission/route/dashboard_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	submissionController "fitscore_backend/internals/features/fitscore/submission/controller"
	"fitscore_backend/internals/features/fitscore/submission/repository"
	"fitscore_backend/internals/features/fitscore/submission/service"
	"fitscore_backend/internals/mailer"
)

// DashboardSubmissionRoutes: endpoint dashboard (grup sudah dilindungi
// auth middleware di route setup).
func DashboardSubmissionRoutes(dashboard fiber.Router, db *gorm.DB, mail mailer.Mailer) {
	repo := repository.NewGormSubmissionRepository(db)
	svc := service.NewSubmissionService(repo)
	ctrl := submissionController.NewSubmissionController(svc, mail)

	dashboard.Get("/submissions", ctrl.ListSubmissions)
	dashboard.Get("/submissions/:id", ctrl.GetSubmissionByID)
	dashboard.Get("/candidate-history", ctrl.GetCandidateHistory)
	dashboard.Get("/stats", ctrl.DashboardStats)
	dashboard.Post("/send-invite", ctrl.SendInvite)
}
