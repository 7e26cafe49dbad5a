package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"fitscore_backend/internals/features/fitscore/submission/model"
	"fitscore_backend/internals/features/fitscore/submission/repository"
	"fitscore_backend/internals/mailer"
)

/* ===============================
   Doubles
=================================*/

type stubRepo struct {
	repository.SubmissionRepository // panics em métodos não usados

	submissions []model.FitSubmissionModel

	gotSince    time.Time
	gotMinScore int
}

func (s *stubRepo) HighScoreSince(_ context.Context, since time.Time, minScore int) ([]model.FitSubmissionModel, error) {
	s.gotSince = since
	s.gotMinScore = minScore

	var out []model.FitSubmissionModel
	for _, sub := range s.submissions {
		if sub.FitSubmissionTotalScore >= minScore && !sub.CreatedAt.Before(since) {
			out = append(out, sub)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FitSubmissionTotalScore > out[j].FitSubmissionTotalScore
	})
	return out, nil
}

func (s *stubRepo) CountHighScoreSince(ctx context.Context, since time.Time, minScore int) (int64, error) {
	subs, _ := s.HighScoreSince(ctx, since, minScore)
	return int64(len(subs)), nil
}

func (s *stubRepo) AverageTotalScore(_ context.Context) (float64, error) {
	if len(s.submissions) == 0 {
		return 0, nil
	}
	var sum int
	for _, sub := range s.submissions {
		sum += sub.FitSubmissionTotalScore
	}
	return float64(sum) / float64(len(s.submissions)), nil
}

func (s *stubRepo) Stats(_ context.Context, _ time.Duration) (*repository.StatsRow, error) {
	return &repository.StatsRow{TotalSubmissions: int64(len(s.submissions))}, nil
}

type stubEvaluators struct {
	evaluators []Evaluator
	err        error
}

func (s *stubEvaluators) FindEvaluators(_ context.Context) ([]Evaluator, error) {
	return s.evaluators, s.err
}

type recordingMailer struct {
	reports []mailer.ReportEmail
	fail    map[string]bool // por email
}

func (m *recordingMailer) SendCandidateResult(context.Context, mailer.CandidateResultEmail) error {
	return nil
}

func (m *recordingMailer) SendInvite(context.Context, mailer.InviteEmail) error {
	return nil
}

func (m *recordingMailer) SendHighScoreReport(_ context.Context, data mailer.ReportEmail) error {
	if m.fail[data.EvaluatorEmail] {
		return errors.New("smtp down")
	}
	m.reports = append(m.reports, data)
	return nil
}

func highScoreSub(score int, age time.Duration) model.FitSubmissionModel {
	return model.FitSubmissionModel{
		FitSubmissionID:         uuid.New(),
		FitSubmissionTotalScore: score,
		CreatedAt:               time.Now().Add(-age),
		Candidate: &model.CandidateModel{
			CandidateID:    uuid.New(),
			CandidateName:  "Candidato",
			CandidateEmail: "cand@example.com",
		},
	}
}

/* ===============================
   Tests
=================================*/

func TestBuildHighScoreReportWindowAndThreshold(t *testing.T) {
	repo := &stubRepo{submissions: []model.FitSubmissionModel{
		highScoreSub(95, 1*time.Hour),   // dentro
		highScoreSub(80, 2*time.Hour),   // dentro, limite inclusivo
		highScoreSub(79, 1*time.Hour),   // score baixo demais
		highScoreSub(100, 20*time.Hour), // velho demais para 12h
	}}
	svc := NewReportService(repo, &stubEvaluators{}, &recordingMailer{})

	report, err := svc.BuildHighScoreReport(context.Background(), 12, 80)
	if err != nil {
		t.Fatal(err)
	}
	if repo.gotMinScore != 80 {
		t.Fatalf("minScore passed to repo: %d", repo.gotMinScore)
	}
	wantSince := time.Now().Add(-12 * time.Hour)
	if diff := repo.gotSince.Sub(wantSince); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("since window off by %s", diff)
	}
	if report.TotalHighScoreCandidates != 2 {
		t.Fatalf("expected 2 candidates, got %d", report.TotalHighScoreCandidates)
	}
	// ordenado por score desc
	if report.Candidates[0].TotalScore < report.Candidates[1].TotalScore {
		t.Fatal("report not ordered by totalScore desc")
	}
	if !report.PeriodEnd.After(report.PeriodStart) {
		t.Fatal("invalid report period")
	}
}

func TestBuildHighScoreReportDefaults(t *testing.T) {
	repo := &stubRepo{}
	svc := NewReportService(repo, &stubEvaluators{}, &recordingMailer{})

	if _, err := svc.BuildHighScoreReport(context.Background(), 0, 0); err != nil {
		t.Fatal(err)
	}
	if repo.gotMinScore != DefaultMinScore {
		t.Fatalf("default minScore not applied: %d", repo.gotMinScore)
	}
	wantSince := time.Now().Add(-time.Duration(DefaultWindowHours) * time.Hour)
	if diff := repo.gotSince.Sub(wantSince); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("default window not applied, off by %s", diff)
	}
}

func TestSendHighScoreReportToAllEvaluators(t *testing.T) {
	repo := &stubRepo{submissions: []model.FitSubmissionModel{highScoreSub(90, time.Hour)}}
	mail := &recordingMailer{}
	svc := NewReportService(repo, &stubEvaluators{evaluators: []Evaluator{
		{ID: uuid.New(), Name: "Avaliador 1", Email: "a1@fitscore.com"},
		{ID: uuid.New(), Name: "Avaliador 2", Email: "a2@fitscore.com"},
	}}, mail)

	report, sent, err := svc.SendHighScoreReport(context.Background(), 12, 80)
	if err != nil {
		t.Fatal(err)
	}
	if sent != 2 || len(mail.reports) != 2 {
		t.Fatalf("expected 2 emails, sent=%d recorded=%d", sent, len(mail.reports))
	}
	if report.TotalHighScoreCandidates != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if mail.reports[0].TotalCandidates != 1 || len(mail.reports[0].Candidates) != 1 {
		t.Fatalf("report email payload wrong: %+v", mail.reports[0])
	}
}

func TestSendHighScoreReportPartialMailFailure(t *testing.T) {
	repo := &stubRepo{submissions: []model.FitSubmissionModel{highScoreSub(90, time.Hour)}}
	mail := &recordingMailer{fail: map[string]bool{"a1@fitscore.com": true}}
	svc := NewReportService(repo, &stubEvaluators{evaluators: []Evaluator{
		{Name: "Avaliador 1", Email: "a1@fitscore.com"},
		{Name: "Avaliador 2", Email: "a2@fitscore.com"},
	}}, mail)

	_, sent, err := svc.SendHighScoreReport(context.Background(), 12, 80)
	if err != nil {
		t.Fatalf("mail failure must not fail the operation: %v", err)
	}
	if sent != 1 {
		t.Fatalf("expected 1 successful email, got %d", sent)
	}
}

func TestSendHighScoreReportNoEvaluators(t *testing.T) {
	svc := NewReportService(&stubRepo{}, &stubEvaluators{}, &recordingMailer{})
	report, sent, err := svc.SendHighScoreReport(context.Background(), 12, 80)
	if err != nil {
		t.Fatal(err)
	}
	if sent != 0 || report == nil {
		t.Fatalf("expected report with zero emails, got sent=%d report=%v", sent, report)
	}
}

func TestReportStats(t *testing.T) {
	repo := &stubRepo{submissions: []model.FitSubmissionModel{
		highScoreSub(90, time.Hour),
		highScoreSub(85, 3*24*time.Hour),
		highScoreSub(50, time.Hour),
	}}
	svc := NewReportService(repo, &stubEvaluators{}, &recordingMailer{})

	stats, err := svc.ReportStats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalSubmissions != 3 {
		t.Fatalf("total: %d", stats.TotalSubmissions)
	}
	if stats.HighScoreStats.Last24h != 1 {
		t.Fatalf("last24h: %d", stats.HighScoreStats.Last24h)
	}
	if stats.HighScoreStats.Last7d != 2 {
		t.Fatalf("last7d: %d", stats.HighScoreStats.Last7d)
	}
	if stats.AverageScore != 75 {
		t.Fatalf("average: %d", stats.AverageScore)
	}
}
