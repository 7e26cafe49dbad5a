// file: internals/features/fitscore/submission/repository/submission_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperr "fitscore_backend/internals/errors"
	"fitscore_backend/internals/features/fitscore/scoring"
	"fitscore_backend/internals/features/fitscore/submission/model"
)

// ListFilter: parameter baca untuk listing dashboard.
// SortBy sudah dinormalkan service ke salah satu key whitelist.
type ListFilter struct {
	Classification *scoring.Classification
	Search         string
	SortBy         string // date|score|name
	SortOrder      string // asc|desc
	Limit          int
	Offset         int
}

type StatsRow struct {
	TotalSubmissions  int64
	ByClassification  map[scoring.Classification]int64
	RecentSubmissions int64
}

// SubmissionRepository: kontrak storage untuk core.
// Implementasi GORM di bawah; test pakai double in-memory.
type SubmissionRepository interface {
	// SaveWithCandidate menjalankan upsert kandidat by-email + insert
	// submission sebagai SATU transaksi. isNew=true kalau email belum ada.
	SaveWithCandidate(ctx context.Context, name, email string, sub *model.FitSubmissionModel) (*model.FitSubmissionModel, bool, error)

	FindByID(ctx context.Context, id uuid.UUID) (*model.FitSubmissionModel, error)
	FindByCandidateEmail(ctx context.Context, email string) ([]model.FitSubmissionModel, error)

	List(ctx context.Context, f ListFilter) ([]model.FitSubmissionModel, int64, error)
	Stats(ctx context.Context, recentWindow time.Duration) (*StatsRow, error)
	HighScoreSince(ctx context.Context, since time.Time, minScore int) ([]model.FitSubmissionModel, error)
	CountHighScoreSince(ctx context.Context, since time.Time, minScore int) (int64, error)
	AverageTotalScore(ctx context.Context) (float64, error)
}

type gormSubmissionRepository struct {
	db *gorm.DB
}

func NewGormSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &gormSubmissionRepository{db: db}
}

// Whitelist kolom sort; key tak dikenal jatuh ke date desc di service.
var sortColumns = map[string]string{
	"date":  "fit_submissions.created_at",
	"score": "fit_submissions.fit_submission_total_score",
	"name":  "c.candidate_name",
}

func (r *gormSubmissionRepository) SaveWithCandidate(ctx context.Context, name, email string, sub *model.FitSubmissionModel) (*model.FitSubmissionModel, bool, error) {
	var saved *model.FitSubmissionModel
	var isNew bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1) lookup dulu untuk flag isNewCandidate
		var existing model.CandidateModel
		err := tx.Where("candidate_email = ?", email).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			isNew = true
		case err != nil:
			return err
		}

		// 2) upsert atomik: unique index email menutup race
		//    double-first-submission — dua request serentak resolve ke
		//    satu baris kandidat, name last-writer-wins.
		cand := model.CandidateModel{
			CandidateName:  name,
			CandidateEmail: email,
		}
		if err := tx.Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "candidate_email"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"candidate_name": name,
					"updated_at":     time.Now(),
				}),
			},
			clause.Returning{},
		).Create(&cand).Error; err != nil {
			return err
		}

		// 3) insert submission (append-only)
		sub.FitSubmissionCandidateID = cand.CandidateID
		if err := tx.Create(sub).Error; err != nil {
			return err
		}

		sub.Candidate = &cand
		saved = sub
		return nil
	})
	if err != nil {
		return nil, false, apperr.NewStorageError("Falha ao salvar a submissão.", err)
	}
	return saved, isNew, nil
}

func (r *gormSubmissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.FitSubmissionModel, error) {
	var sub model.FitSubmissionModel
	err := r.db.WithContext(ctx).Preload("Candidate").
		First(&sub, "fit_submission_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NewNotFoundError(
			"A submissão não foi encontrada no sistema.",
			"Verifique se o ID está correto.",
		)
	}
	if err != nil {
		return nil, apperr.NewStorageError("Falha ao buscar a submissão.", err)
	}
	return &sub, nil
}

func (r *gormSubmissionRepository) FindByCandidateEmail(ctx context.Context, email string) ([]model.FitSubmissionModel, error) {
	var subs []model.FitSubmissionModel
	err := r.db.WithContext(ctx).Preload("Candidate").
		Joins("JOIN candidates c ON c.candidate_id = fit_submissions.fit_submission_candidate_id").
		Where("c.candidate_email = ?", email).
		Order("fit_submissions.created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, apperr.NewStorageError("Falha ao buscar o histórico do candidato.", err)
	}
	return subs, nil
}

func (r *gormSubmissionRepository) List(ctx context.Context, f ListFilter) ([]model.FitSubmissionModel, int64, error) {
	base := r.db.WithContext(ctx).Model(&model.FitSubmissionModel{}).
		Joins("JOIN candidates c ON c.candidate_id = fit_submissions.fit_submission_candidate_id")

	if f.Classification != nil {
		base = base.Where("fit_submissions.fit_submission_classification = ?", string(*f.Classification))
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		base = base.Where("c.candidate_name ILIKE ? OR c.candidate_email ILIKE ?", like, like)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, apperr.NewStorageError("Falha ao contar as submissões.", err)
	}

	col, ok := sortColumns[f.SortBy]
	dir := "DESC"
	if ok && f.SortOrder == "asc" {
		dir = "ASC"
	}
	if !ok {
		col = sortColumns["date"]
	}

	var subs []model.FitSubmissionModel
	err := base.Session(&gorm.Session{}).
		Preload("Candidate").
		Order(col + " " + dir).
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&subs).Error
	if err != nil {
		return nil, 0, apperr.NewStorageError("Falha ao listar as submissões.", err)
	}
	return subs, total, nil
}

func (r *gormSubmissionRepository) Stats(ctx context.Context, recentWindow time.Duration) (*StatsRow, error) {
	db := r.db.WithContext(ctx)
	out := &StatsRow{ByClassification: make(map[scoring.Classification]int64, len(scoring.AllClassifications))}

	if err := db.Model(&model.FitSubmissionModel{}).Count(&out.TotalSubmissions).Error; err != nil {
		return nil, apperr.NewStorageError("Falha ao calcular estatísticas.", err)
	}

	type bucket struct {
		Classification string
		Count          int64
	}
	var buckets []bucket
	if err := db.Model(&model.FitSubmissionModel{}).
		Select("fit_submission_classification AS classification, COUNT(*) AS count").
		Group("fit_submission_classification").
		Scan(&buckets).Error; err != nil {
		return nil, apperr.NewStorageError("Falha ao calcular estatísticas.", err)
	}
	for _, cl := range scoring.AllClassifications {
		out.ByClassification[cl] = 0
	}
	for _, b := range buckets {
		out.ByClassification[scoring.Classification(b.Classification)] = b.Count
	}

	since := time.Now().Add(-recentWindow)
	if err := db.Model(&model.FitSubmissionModel{}).
		Where("created_at >= ?", since).
		Count(&out.RecentSubmissions).Error; err != nil {
		return nil, apperr.NewStorageError("Falha ao calcular estatísticas.", err)
	}
	return out, nil
}

func (r *gormSubmissionRepository) HighScoreSince(ctx context.Context, since time.Time, minScore int) ([]model.FitSubmissionModel, error) {
	var subs []model.FitSubmissionModel
	err := r.db.WithContext(ctx).Preload("Candidate").
		Where("fit_submission_total_score >= ? AND created_at >= ?", minScore, since).
		Order("fit_submission_total_score DESC, created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, apperr.NewStorageError("Falha ao buscar candidatos high score.", err)
	}
	return subs, nil
}

func (r *gormSubmissionRepository) CountHighScoreSince(ctx context.Context, since time.Time, minScore int) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.FitSubmissionModel{}).
		Where("fit_submission_total_score >= ? AND created_at >= ?", minScore, since).
		Count(&n).Error
	if err != nil {
		return 0, apperr.NewStorageError("Falha ao contar candidatos high score.", err)
	}
	return n, nil
}

func (r *gormSubmissionRepository) AverageTotalScore(ctx context.Context) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).Model(&model.FitSubmissionModel{}).
		Select("AVG(fit_submission_total_score)").
		Scan(&avg).Error
	if err != nil {
		return 0, apperr.NewStorageError("Falha ao calcular média de score.", err)
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
