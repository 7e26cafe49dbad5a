package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	apperr "fitscore_backend/internals/errors"
	"fitscore_backend/internals/features/fitscore/scoring"
	"fitscore_backend/internals/features/fitscore/submission/model"
	"fitscore_backend/internals/features/fitscore/submission/repository"
	helper "fitscore_backend/internals/helpers"
)

/* ===============================
   In-memory repository double
=================================*/

type fakeRepo struct {
	candidates  map[string]*model.CandidateModel // by email
	submissions []*model.FitSubmissionModel
	saveCalls   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{candidates: map[string]*model.CandidateModel{}}
}

func (f *fakeRepo) SaveWithCandidate(_ context.Context, name, email string, sub *model.FitSubmissionModel) (*model.FitSubmissionModel, bool, error) {
	f.saveCalls++
	cand, ok := f.candidates[email]
	isNew := !ok
	if isNew {
		cand = &model.CandidateModel{
			CandidateID:    uuid.New(),
			CandidateName:  name,
			CandidateEmail: email,
			CreatedAt:      time.Now(),
		}
		f.candidates[email] = cand
	} else {
		cand.CandidateName = name // last-writer-wins
	}

	sub.FitSubmissionID = uuid.New()
	sub.FitSubmissionCandidateID = cand.CandidateID
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}
	sub.Candidate = cand
	f.submissions = append(f.submissions, sub)
	return sub, isNew, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.FitSubmissionModel, error) {
	for _, s := range f.submissions {
		if s.FitSubmissionID == id {
			return s, nil
		}
	}
	return nil, apperr.NewNotFoundError("A submissão não foi encontrada no sistema.", "Verifique se o ID está correto.")
}

func (f *fakeRepo) FindByCandidateEmail(_ context.Context, email string) ([]model.FitSubmissionModel, error) {
	var out []model.FitSubmissionModel
	for _, s := range f.submissions {
		if s.Candidate != nil && s.Candidate.CandidateEmail == email {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRepo) List(_ context.Context, filter repository.ListFilter) ([]model.FitSubmissionModel, int64, error) {
	var matched []*model.FitSubmissionModel
	for _, s := range f.submissions {
		if filter.Classification != nil && s.FitSubmissionClassification != string(*filter.Classification) {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			name := strings.ToLower(s.Candidate.CandidateName)
			email := strings.ToLower(s.Candidate.CandidateEmail)
			if !strings.Contains(name, needle) && !strings.Contains(email, needle) {
				continue
			}
		}
		matched = append(matched, s)
	}

	less := func(i, j int) bool { return matched[i].CreatedAt.Before(matched[j].CreatedAt) }
	switch filter.SortBy {
	case "score":
		less = func(i, j int) bool { return matched[i].FitSubmissionTotalScore < matched[j].FitSubmissionTotalScore }
	case "name":
		less = func(i, j int) bool { return matched[i].Candidate.CandidateName < matched[j].Candidate.CandidateName }
	}
	sort.Slice(matched, less)
	if filter.SortOrder != "asc" {
		for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
			matched[i], matched[j] = matched[j], matched[i]
		}
	}

	total := int64(len(matched))
	start := filter.Offset
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	page := make([]model.FitSubmissionModel, 0, end-start)
	for _, s := range matched[start:end] {
		page = append(page, *s)
	}
	return page, total, nil
}

func (f *fakeRepo) Stats(_ context.Context, recentWindow time.Duration) (*repository.StatsRow, error) {
	out := &repository.StatsRow{ByClassification: map[scoring.Classification]int64{}}
	for _, cl := range scoring.AllClassifications {
		out.ByClassification[cl] = 0
	}
	since := time.Now().Add(-recentWindow)
	for _, s := range f.submissions {
		out.TotalSubmissions++
		out.ByClassification[scoring.Classification(s.FitSubmissionClassification)]++
		if s.CreatedAt.After(since) {
			out.RecentSubmissions++
		}
	}
	return out, nil
}

func (f *fakeRepo) HighScoreSince(_ context.Context, since time.Time, minScore int) ([]model.FitSubmissionModel, error) {
	var out []model.FitSubmissionModel
	for _, s := range f.submissions {
		if s.FitSubmissionTotalScore >= minScore && !s.CreatedAt.Before(since) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FitSubmissionTotalScore != out[j].FitSubmissionTotalScore {
			return out[i].FitSubmissionTotalScore > out[j].FitSubmissionTotalScore
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeRepo) CountHighScoreSince(ctx context.Context, since time.Time, minScore int) (int64, error) {
	subs, _ := f.HighScoreSince(ctx, since, minScore)
	return int64(len(subs)), nil
}

func (f *fakeRepo) AverageTotalScore(_ context.Context) (float64, error) {
	if len(f.submissions) == 0 {
		return 0, nil
	}
	var sum int
	for _, s := range f.submissions {
		sum += s.FitSubmissionTotalScore
	}
	return float64(sum) / float64(len(f.submissions)), nil
}

/* ===============================
   Helpers
=================================*/

func answersWithValue(v float64) map[string]float64 {
	m := make(map[string]float64, 10)
	for i := 1; i <= 10; i++ {
		m[strconv.Itoa(i)] = v
	}
	return m
}

/* ===============================
   Tests
=================================*/

func TestSaveNewAndReturningCandidate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewSubmissionService(repo)
	ctx := context.Background()

	first, err := svc.Save(ctx, "Maria", "maria@example.com", answersWithValue(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.IsNewCandidate {
		t.Fatal("first submission should report isNewCandidate=true")
	}
	if first.Submission.TotalScore != 100 || first.Submission.Classification != scoring.FitAltissimo {
		t.Fatalf("unexpected scores: %+v", first.Submission)
	}
	if len(repo.candidates) != 1 || len(repo.submissions) != 1 {
		t.Fatalf("expected 1 candidate + 1 submission, got %d/%d", len(repo.candidates), len(repo.submissions))
	}

	second, err := svc.Save(ctx, "Maria Silva", "maria@example.com", answersWithValue(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.IsNewCandidate {
		t.Fatal("second submission should report isNewCandidate=false")
	}
	if len(repo.candidates) != 1 {
		t.Fatalf("candidate row count changed: %d", len(repo.candidates))
	}
	if len(repo.submissions) != 2 {
		t.Fatalf("expected 2 submission rows, got %d", len(repo.submissions))
	}
	if repo.candidates["maria@example.com"].CandidateName != "Maria Silva" {
		t.Fatalf("candidate name not updated: %s", repo.candidates["maria@example.com"].CandidateName)
	}
}

func TestSaveInvalidAnswersNeverTouchStorage(t *testing.T) {
	repo := newFakeRepo()
	svc := NewSubmissionService(repo)

	cases := []map[string]float64{
		nil,
		func() map[string]float64 { m := answersWithValue(5); delete(m, "7"); return m }(),
		func() map[string]float64 { m := answersWithValue(5); m["2"] = 11; return m }(),
		func() map[string]float64 { m := answersWithValue(5); m["2"] = -1; return m }(),
		func() map[string]float64 { m := answersWithValue(5); m["99"] = 5; return m }(),
	}
	for i, raw := range cases {
		if _, err := svc.Save(context.Background(), "X", "x@example.com", raw); !apperr.IsValidation(err) {
			t.Errorf("case %d: expected ValidationError, got %v", i, err)
		}
	}
	if repo.saveCalls != 0 {
		t.Fatalf("storage was touched %d times on invalid input", repo.saveCalls)
	}
}

func TestListFiltersByClassification(t *testing.T) {
	repo := newFakeRepo()
	svc := NewSubmissionService(repo)
	ctx := context.Background()

	// 100 → Fit Altíssimo, 70 → Fit Aprovado, 50 → Fit Questionável
	if _, err := svc.Save(ctx, "Alta", "alta@example.com", answersWithValue(10)); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Save(ctx, "Media", "media@example.com", answersWithValue(7)); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Save(ctx, "Baixa", "baixa@example.com", answersWithValue(5)); err != nil {
		t.Fatal(err)
	}

	result, err := svc.List(ctx, ListQuery{
		Classification: string(scoring.FitAprovado),
		Params:         helper.Params{Page: 1, PerPage: 10, SortBy: "date", SortOrder: "desc"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 || len(result.Data) != 1 {
		t.Fatalf("expected 1 match, got total=%d len=%d", result.Total, len(result.Data))
	}
	if result.Data[0].Classification != scoring.FitAprovado {
		t.Fatalf("wrong classification in result: %s", result.Data[0].Classification)
	}
	if result.Data[0].CandidateName != "Media" {
		t.Fatalf("wrong candidate: %s", result.Data[0].CandidateName)
	}
}

func TestListRejectsUnknownClassification(t *testing.T) {
	svc := NewSubmissionService(newFakeRepo())
	_, err := svc.List(context.Background(), ListQuery{
		Classification: "Fit Inexistente",
		Params:         helper.Params{Page: 1, PerPage: 10},
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestListSearchMatchesNameOrEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := NewSubmissionService(repo)
	ctx := context.Background()

	_, _ = svc.Save(ctx, "João Pereira", "joao@empresa.com", answersWithValue(8))
	_, _ = svc.Save(ctx, "Ana Souza", "ana@outro.com", answersWithValue(8))

	result, err := svc.List(ctx, ListQuery{
		Search: "empresa",
		Params: helper.Params{Page: 1, PerPage: 10, SortBy: "date", SortOrder: "desc"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Total != 1 || result.Data[0].CandidateEmail != "joao@empresa.com" {
		t.Fatalf("search by email fragment failed: %+v", result)
	}
}

func TestStatsBucketsSumToTotal(t *testing.T) {
	repo := newFakeRepo()
	svc := NewSubmissionService(repo)
	ctx := context.Background()

	for _, v := range []float64{10, 10, 7, 5, 2} {
		if _, err := svc.Save(ctx, "C", "c"+strconv.Itoa(int(v))+"@example.com", answersWithValue(v)); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalSubmissions != 5 {
		t.Fatalf("expected 5 submissions, got %d", stats.TotalSubmissions)
	}
	var sum int64
	for _, cl := range scoring.AllClassifications {
		n, ok := stats.ByClassification[string(cl)]
		if !ok {
			t.Fatalf("missing bucket for %s", cl)
		}
		sum += n
	}
	if sum != stats.TotalSubmissions {
		t.Fatalf("buckets sum %d != total %d", sum, stats.TotalSubmissions)
	}
	if stats.RecentSubmissions != 5 {
		t.Fatalf("expected all 5 in trailing 24h, got %d", stats.RecentSubmissions)
	}
}

func TestFindByIDNotFound(t *testing.T) {
	svc := NewSubmissionService(newFakeRepo())
	_, err := svc.FindByID(context.Background(), uuid.New())
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestFindByCandidateEmailHistory(t *testing.T) {
	repo := newFakeRepo()
	svc := NewSubmissionService(repo)
	ctx := context.Background()

	_, _ = svc.Save(ctx, "Maria", "maria@example.com", answersWithValue(5))
	_, _ = svc.Save(ctx, "Maria", "maria@example.com", answersWithValue(9))
	_, _ = svc.Save(ctx, "Outro", "outro@example.com", answersWithValue(3))

	history, err := svc.FindByCandidateEmail(ctx, "maria@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 submissions in history, got %d", len(history))
	}
	for _, sub := range history {
		if len(sub.Answers) != 10 {
			t.Fatalf("answers snapshot not round-tripped: %d", len(sub.Answers))
		}
	}
}
