// file: internals/features/fitscore/report/route/report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "fitscore_backend/internals/features/fitscore/report/controller"
	reportService "fitscore_backend/internals/features/fitscore/report/service"
	"fitscore_backend/internals/features/fitscore/submission/repository"
	"fitscore_backend/internals/mailer"
)

func newController(db *gorm.DB, mail mailer.Mailer) *reportController.ReportController {
	svc := reportService.NewReportService(
		repository.NewGormSubmissionRepository(db),
		reportService.NewGormEvaluatorSource(db),
		mail,
	)
	return reportController.NewReportController(svc)
}

// CronReportRoutes: endpoint público guardado por CRON_SECRET.
func CronReportRoutes(api fiber.Router, db *gorm.DB, mail mailer.Mailer) {
	ctrl := newController(db, mail)
	api.Get("/cron/high-score-report", ctrl.CronHighScoreReport)
}

// DashboardReportRoutes: visão autenticada do relatório.
func DashboardReportRoutes(dashboard fiber.Router, db *gorm.DB, mail mailer.Mailer) {
	ctrl := newController(db, mail)
	dashboard.Get("/high-score-report", ctrl.HighScoreReport)
	dashboard.Get("/report-stats", ctrl.ReportStats)
}
