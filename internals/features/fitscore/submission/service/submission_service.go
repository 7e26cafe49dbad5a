// file: internals/features/fitscore/submission/service/submission_service.go
package service

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	apperr "fitscore_backend/internals/errors"
	"fitscore_backend/internals/features/fitscore/scoring"
	"fitscore_backend/internals/features/fitscore/submission/dto"
	"fitscore_backend/internals/features/fitscore/submission/model"
	"fitscore_backend/internals/features/fitscore/submission/repository"
	helper "fitscore_backend/internals/helpers"
)

const recentWindow = 24 * time.Hour

// SubmissionService: orquestra validasi → skor → klasifikasi → persist.
// Storage di-inject lewat interface supaya bisa dites dengan double.
type SubmissionService struct {
	repo repository.SubmissionRepository
}

func NewSubmissionService(repo repository.SubmissionRepository) *SubmissionService {
	return &SubmissionService{repo: repo}
}

// Save: satu-satunya entry point tulis.
// Validasi gagal → ValidationError sebelum menyentuh storage.
// Submit ulang dengan email yang sama adalah aksi bisnis yang sah:
// menambah baris submission baru, tidak menimpa yang lama.
func (s *SubmissionService) Save(ctx context.Context, name, email string, rawAnswers map[string]float64) (*dto.SaveResult, error) {
	answers, err := scoring.ParseFormAnswers(rawAnswers)
	if err != nil {
		return nil, err
	}

	scores := scoring.ComputeScores(answers)
	classification := scoring.Classify(scores.TotalScore)

	answersJSON, err := sonic.Marshal(answers)
	if err != nil {
		return nil, apperr.NewStorageError("Falha ao serializar as respostas.", err)
	}

	sub := &model.FitSubmissionModel{
		FitSubmissionAnswers:        datatypes.JSON(answersJSON),
		FitSubmissionPerfScore:      scores.PerfScore,
		FitSubmissionEnergyScore:    scores.EnergyScore,
		FitSubmissionCultureScore:   scores.CultureScore,
		FitSubmissionTotalScore:     scores.TotalScore,
		FitSubmissionClassification: string(classification),
	}

	saved, isNew, err := s.repo.SaveWithCandidate(ctx, name, email, sub)
	if err != nil {
		return nil, err
	}

	return &dto.SaveResult{
		Submission:     dto.FromSubmissionModel(saved, answers),
		IsNewCandidate: isNew,
	}, nil
}

func (s *SubmissionService) FindByID(ctx context.Context, id uuid.UUID) (*dto.SubmissionResponse, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromSubmissionModel(sub, decodeAnswers(sub.FitSubmissionAnswers))
	return &resp, nil
}

func (s *SubmissionService) FindByCandidateEmail(ctx context.Context, email string) ([]dto.SubmissionResponse, error) {
	subs, err := s.repo.FindByCandidateEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubmissionResponse, 0, len(subs))
	for i := range subs {
		out = append(out, dto.FromSubmissionModel(&subs[i], decodeAnswers(subs[i].FitSubmissionAnswers)))
	}
	return out, nil
}

// ListQuery: filter listing yang sudah diparse controller.
type ListQuery struct {
	Classification string
	Search         string
	Params         helper.Params
}

func (s *SubmissionService) List(ctx context.Context, q ListQuery) (*dto.PaginatedSubmissions, error) {
	filter := repository.ListFilter{
		Search:    q.Search,
		SortBy:    q.Params.SortBy,
		SortOrder: q.Params.SortOrder,
		Limit:     q.Params.Limit(),
		Offset:    q.Params.Offset(),
	}

	if q.Classification != "" {
		cl, ok := scoring.ParseClassification(q.Classification)
		if !ok {
			return nil, apperr.NewValidationError(
				"Classificação inválida: "+q.Classification+".",
				"Use uma das quatro classificações do FitScore.",
			)
		}
		filter.Classification = &cl
	}

	subs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.DashboardSubmissionResponse, 0, len(subs))
	for i := range subs {
		rows = append(rows, dto.ToDashboardRow(&subs[i]))
	}
	return &dto.PaginatedSubmissions{
		Data:     rows,
		Total:    total,
		Page:     q.Params.Page,
		PageSize: q.Params.PerPage,
	}, nil
}

func (s *SubmissionService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	row, err := s.repo.Stats(ctx, recentWindow)
	if err != nil {
		return nil, err
	}
	byClass := make(map[string]int64, len(row.ByClassification))
	for cl, n := range row.ByClassification {
		byClass[string(cl)] = n
	}
	return &dto.StatsResponse{
		TotalSubmissions:  row.TotalSubmissions,
		ByClassification:  byClass,
		RecentSubmissions: row.RecentSubmissions,
	}, nil
}

func decodeAnswers(raw datatypes.JSON) []scoring.Answer {
	var answers []scoring.Answer
	if err := sonic.Unmarshal([]byte(raw), &answers); err != nil {
		return nil
	}
	return answers
}
