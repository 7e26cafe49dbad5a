// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportRoute "fitscore_backend/internals/features/fitscore/report/route"
	submissionRoute "fitscore_backend/internals/features/fitscore/submission/route"
	authRoute "fitscore_backend/internals/features/users/auth/route"
	userRoute "fitscore_backend/internals/features/users/user/route"
	"fitscore_backend/internals/mailer"
	authMiddleware "fitscore_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, mail mailer.Mailer) {
	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes...")
	submissionRoute.PublicSubmissionRoutes(api, db, mail)
	reportRoute.CronReportRoutes(api, db, mail)
	authRoute.AuthRoutes(api, db)

	// ===================== PROTECTED =====================
	log.Println("[INFO] Setting up PROTECTED routes...")
	protected := api.Group("", authMiddleware.AuthMiddleware(db))
	userRoute.UserRoutes(protected, db)

	dashboard := api.Group("/dashboard", authMiddleware.AuthMiddleware(db))
	submissionRoute.DashboardSubmissionRoutes(dashboard, db, mail)
	reportRoute.DashboardReportRoutes(dashboard, db, mail)
}
