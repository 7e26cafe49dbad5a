package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	reportService "fitscore_backend/internals/features/fitscore/report/service"
	"fitscore_backend/internals/features/fitscore/submission/repository"
	"fitscore_backend/internals/mailer"
)

// StartHighScoreReportScheduler menjalankan laporan periodik in-process.
// Interval default 12 jam, override via REPORT_INTERVAL_HOURS.
func StartHighScoreReportScheduler(db *gorm.DB, mail mailer.Mailer) {
	go func() {
		intervalHours := reportService.DefaultWindowHours
		if val := os.Getenv("REPORT_INTERVAL_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalHours = parsed
			}
		}

		svc := reportService.NewReportService(
			repository.NewGormSubmissionRepository(db),
			reportService.NewGormEvaluatorSource(db),
			mail,
		)

		interval := time.Duration(intervalHours) * time.Hour
		for {
			time.Sleep(interval)

			log.Println("[REPORT] Menjalankan laporan high score terjadwal...")
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			report, sent, err := svc.SendHighScoreReport(ctx, intervalHours, reportService.DefaultMinScore)
			cancel()
			if err != nil {
				log.Printf("[REPORT ERROR] %v", err)
				continue
			}
			log.Printf("[REPORT] %d kandidat, %d email terkirim", report.TotalHighScoreCandidates, sent)
		}
	}()
}
