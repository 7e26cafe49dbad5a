// file: internals/features/fitscore/report/service/report_service.go
package service

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitscore_backend/internals/constants"
	"fitscore_backend/internals/features/fitscore/submission/dto"
	"fitscore_backend/internals/features/fitscore/submission/repository"
	authRepo "fitscore_backend/internals/features/users/auth/repository"
	"fitscore_backend/internals/mailer"
)

const (
	DefaultWindowHours = 12
	DefaultMinScore    = 80
	maxWindowHours     = 168 // 1 minggu
)

// Evaluator: penerima laporan (akun position=avaliador).
type Evaluator struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// EvaluatorSource di-interface-kan supaya report service bisa dites
// tanpa storage user beneran.
type EvaluatorSource interface {
	FindEvaluators(ctx context.Context) ([]Evaluator, error)
}

type gormEvaluatorSource struct {
	db *gorm.DB
}

func NewGormEvaluatorSource(db *gorm.DB) EvaluatorSource {
	return &gormEvaluatorSource{db: db}
}

func (s *gormEvaluatorSource) FindEvaluators(ctx context.Context) ([]Evaluator, error) {
	users, err := authRepo.FindUsersByPosition(s.db.WithContext(ctx), constants.PositionAvaliador)
	if err != nil {
		return nil, err
	}
	out := make([]Evaluator, 0, len(users))
	for _, u := range users {
		out = append(out, Evaluator{ID: u.UserID, Name: u.UserName, Email: u.UserEmail})
	}
	return out, nil
}

type ReportService struct {
	repo       repository.SubmissionRepository
	evaluators EvaluatorSource
	mail       mailer.Mailer
}

func NewReportService(repo repository.SubmissionRepository, evaluators EvaluatorSource, mail mailer.Mailer) *ReportService {
	return &ReportService{repo: repo, evaluators: evaluators, mail: mail}
}

// BuildHighScoreReport: submissões com totalScore >= minScore dentro da
// janela, ordenadas por score desc. windowHours/minScore <= 0 caem nos
// defaults (12h / 80).
func (s *ReportService) BuildHighScoreReport(ctx context.Context, windowHours, minScore int) (*dto.ReportData, error) {
	if windowHours <= 0 {
		windowHours = DefaultWindowHours
	}
	if windowHours > maxWindowHours {
		windowHours = maxWindowHours
	}
	if minScore <= 0 {
		minScore = DefaultMinScore
	}

	now := time.Now()
	since := now.Add(-time.Duration(windowHours) * time.Hour)

	subs, err := s.repo.HighScoreSince(ctx, since, minScore)
	if err != nil {
		return nil, err
	}

	candidates := make([]dto.HighScoreCandidateResponse, 0, len(subs))
	for i := range subs {
		candidates = append(candidates, dto.ToHighScoreRow(&subs[i]))
	}

	return &dto.ReportData{
		TotalHighScoreCandidates: len(candidates),
		Candidates:               candidates,
		ReportGeneratedAt:        now,
		PeriodStart:              since,
		PeriodEnd:                now,
	}, nil
}

// SendHighScoreReport constrói o relatório e envia para cada avaliador.
// Falha de envio individual é logada, nunca falha a operação inteira.
func (s *ReportService) SendHighScoreReport(ctx context.Context, windowHours, minScore int) (*dto.ReportData, int, error) {
	if windowHours <= 0 {
		windowHours = DefaultWindowHours
	}

	report, err := s.BuildHighScoreReport(ctx, windowHours, minScore)
	if err != nil {
		return nil, 0, err
	}

	evaluators, err := s.evaluators.FindEvaluators(ctx)
	if err != nil {
		return nil, 0, err
	}
	if len(evaluators) == 0 {
		log.Println("[WARN] Nenhum usuário com position 'avaliador' encontrado")
		return report, 0, nil
	}

	emailCandidates := make([]mailer.ReportEmailCandidate, 0, len(report.Candidates))
	for _, c := range report.Candidates {
		emailCandidates = append(emailCandidates, mailer.ReportEmailCandidate{
			Name:           c.CandidateName,
			Email:          c.CandidateEmail,
			TotalScore:     c.TotalScore,
			PerfScore:      c.PerfScore,
			EnergyScore:    c.EnergyScore,
			CultureScore:   c.CultureScore,
			Classification: string(c.Classification),
			SubmissionDate: c.SubmissionDate,
		})
	}

	sent := 0
	for _, ev := range evaluators {
		err := s.mail.SendHighScoreReport(ctx, mailer.ReportEmail{
			EvaluatorName:   ev.Name,
			EvaluatorEmail:  ev.Email,
			PeriodHours:     windowHours,
			TotalCandidates: report.TotalHighScoreCandidates,
			GeneratedAt:     report.ReportGeneratedAt,
			Candidates:      emailCandidates,
		})
		if err != nil {
			log.Printf("[WARN] Report email para %s falhou: %v", ev.Email, err)
			continue
		}
		sent++
	}
	return report, sent, nil
}

// ReportStats: métricas agregadas para o painel de relatórios.
func (s *ReportService) ReportStats(ctx context.Context) (*dto.ReportStatsResponse, error) {
	now := time.Now()

	total24h, err := s.repo.CountHighScoreSince(ctx, now.Add(-24*time.Hour), DefaultMinScore)
	if err != nil {
		return nil, err
	}
	total7d, err := s.repo.CountHighScoreSince(ctx, now.Add(-7*24*time.Hour), DefaultMinScore)
	if err != nil {
		return nil, err
	}
	avg, err := s.repo.AverageTotalScore(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.repo.Stats(ctx, 24*time.Hour)
	if err != nil {
		return nil, err
	}

	out := &dto.ReportStatsResponse{
		TotalSubmissions: stats.TotalSubmissions,
		AverageScore:     int(math.Round(avg)),
		GeneratedAt:      now,
	}
	out.HighScoreStats.Last24h = total24h
	out.HighScoreStats.Last7d = total7d
	return out, nil
}
