// file: internals/features/fitscore/report/controller/report_controller.go
package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"fitscore_backend/internals/configs"
	reportService "fitscore_backend/internals/features/fitscore/report/service"
	helper "fitscore_backend/internals/helpers"
)

type ReportController struct {
	Service *reportService.ReportService
}

func NewReportController(svc *reportService.ReportService) *ReportController {
	return &ReportController{Service: svc}
}

// 🕐 CronHighScoreReport: endpoint do agendador externo.
// Guardado por CRON_SECRET (Bearer); sem secret configurado, passa direto.
func (ctrl *ReportController) CronHighScoreReport(c *fiber.Ctx) error {
	if configs.CronSecret != "" {
		if c.Get("Authorization") != "Bearer "+configs.CronSecret {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid cron secret")
		}
	}

	windowHours := atoiQuery(c, "windowHours", reportService.DefaultWindowHours)
	minScore := atoiQuery(c, "minScore", reportService.DefaultMinScore)

	log.Println("[CRON] Iniciando relatório de high score candidates...")
	report, sent, err := ctrl.Service.SendHighScoreReport(c.UserContext(), windowHours, minScore)
	if err != nil {
		log.Println("[ERROR] Cron report failed:", err)
		return helper.FromAppError(c, err)
	}
	log.Printf("[CRON] Relatório: %d candidato(s), %d email(s) enviados", report.TotalHighScoreCandidates, sent)

	return helper.JsonOK(c, "Relatório processado", fiber.Map{
		"totalCandidates": report.TotalHighScoreCandidates,
		"emailsSent":      sent,
		"periodStart":     report.PeriodStart,
		"periodEnd":       report.PeriodEnd,
	})
}

// 📈 HighScoreReport: visão do dashboard sobre a mesma janela, sem email.
func (ctrl *ReportController) HighScoreReport(c *fiber.Ctx) error {
	windowHours := atoiQuery(c, "windowHours", reportService.DefaultWindowHours)
	minScore := atoiQuery(c, "minScore", reportService.DefaultMinScore)

	report, err := ctrl.Service.BuildHighScoreReport(c.UserContext(), windowHours, minScore)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", report)
}

func (ctrl *ReportController) ReportStats(c *fiber.Ctx) error {
	stats, err := ctrl.Service.ReportStats(c.UserContext())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", stats)
}

func atoiQuery(c *fiber.Ctx, key string, def int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil {
		return v
	}
	return def
}
