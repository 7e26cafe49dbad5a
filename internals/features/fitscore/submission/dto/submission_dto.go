// file: internals/features/fitscore/submission/dto/submission_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"fitscore_backend/internals/features/fitscore/scoring"
	"fitscore_backend/internals/features/fitscore/submission/model"
)

/* ===============================
   Requests
=================================*/

type SubmitFormRequest struct {
	Name    string             `json:"name" validate:"required,min=2,max=100"`
	Email   string             `json:"email" validate:"required,email,max=255"`
	Answers map[string]float64 `json:"answers" validate:"required"`
}

type SendInviteRequest struct {
	CandidateName  string `json:"candidateName" validate:"required,min=2,max=100"`
	CandidateEmail string `json:"candidateEmail" validate:"required,email,max=255"`
}

/* ===============================
   Responses
=================================*/

type CandidateResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type SubmissionResponse struct {
	ID             uuid.UUID              `json:"id"`
	CandidateID    uuid.UUID              `json:"candidateId"`
	Candidate      *CandidateResponse     `json:"candidate,omitempty"`
	Answers        []scoring.Answer       `json:"answers"`
	PerfScore      int                    `json:"perfScore"`
	EnergyScore    int                    `json:"energyScore"`
	CultureScore   int                    `json:"cultureScore"`
	TotalScore     int                    `json:"totalScore"`
	Classification scoring.Classification `json:"classification"`
	CreatedAt      time.Time              `json:"createdAt"`
}

// SaveResult: hasil tulis tunggal dari core; isNewCandidate hanya
// dipakai caller untuk variasi pesan, tidak pernah mengubah skor.
type SaveResult struct {
	Submission     SubmissionResponse `json:"submission"`
	IsNewCandidate bool               `json:"isNewCandidate"`
}

// DashboardSubmissionResponse: proyeksi ringkas untuk listing dashboard.
type DashboardSubmissionResponse struct {
	ID             uuid.UUID              `json:"id"`
	CandidateName  string                 `json:"candidateName"`
	CandidateEmail string                 `json:"candidateEmail"`
	TotalScore     int                    `json:"totalScore"`
	Classification scoring.Classification `json:"classification"`
	CreatedAt      time.Time              `json:"createdAt"`
}

type PaginatedSubmissions struct {
	Data     []DashboardSubmissionResponse `json:"data"`
	Total    int64                         `json:"total"`
	Page     int                           `json:"page"`
	PageSize int                           `json:"pageSize"`
}

type StatsResponse struct {
	TotalSubmissions  int64            `json:"totalSubmissions"`
	ByClassification  map[string]int64 `json:"byClassification"`
	RecentSubmissions int64            `json:"recentSubmissions"` // 24 jam terakhir
}

// HighScoreCandidateResponse: baris laporan, termasuk sub-score per kategori.
type HighScoreCandidateResponse struct {
	ID             uuid.UUID              `json:"id"`
	CandidateName  string                 `json:"candidateName"`
	CandidateEmail string                 `json:"candidateEmail"`
	TotalScore     int                    `json:"totalScore"`
	Classification scoring.Classification `json:"classification"`
	PerfScore      int                    `json:"perfScore"`
	EnergyScore    int                    `json:"energyScore"`
	CultureScore   int                    `json:"cultureScore"`
	SubmissionDate time.Time              `json:"submissionDate"`
}

type ReportData struct {
	TotalHighScoreCandidates int                          `json:"totalHighScoreCandidates"`
	Candidates               []HighScoreCandidateResponse `json:"candidates"`
	ReportGeneratedAt        time.Time                    `json:"reportGeneratedAt"`
	PeriodStart              time.Time                    `json:"periodStart"`
	PeriodEnd                time.Time                    `json:"periodEnd"`
}

type ReportStatsResponse struct {
	TotalSubmissions int64 `json:"totalSubmissions"`
	HighScoreStats   struct {
		Last24h int64 `json:"last24h"`
		Last7d  int64 `json:"last7d"`
	} `json:"highScoreStats"`
	AverageScore int       `json:"averageScore"`
	GeneratedAt  time.Time `json:"generatedAt"`
}

/* ===============================
   Mappers
=================================*/

func FromCandidateModel(m *model.CandidateModel) *CandidateResponse {
	if m == nil {
		return nil
	}
	return &CandidateResponse{
		ID:        m.CandidateID,
		Name:      m.CandidateName,
		Email:     m.CandidateEmail,
		CreatedAt: m.CreatedAt,
	}
}

func FromSubmissionModel(m *model.FitSubmissionModel, answers []scoring.Answer) SubmissionResponse {
	return SubmissionResponse{
		ID:             m.FitSubmissionID,
		CandidateID:    m.FitSubmissionCandidateID,
		Candidate:      FromCandidateModel(m.Candidate),
		Answers:        answers,
		PerfScore:      m.FitSubmissionPerfScore,
		EnergyScore:    m.FitSubmissionEnergyScore,
		CultureScore:   m.FitSubmissionCultureScore,
		TotalScore:     m.FitSubmissionTotalScore,
		Classification: scoring.Classification(m.FitSubmissionClassification),
		CreatedAt:      m.CreatedAt,
	}
}

func ToDashboardRow(m *model.FitSubmissionModel) DashboardSubmissionResponse {
	row := DashboardSubmissionResponse{
		ID:             m.FitSubmissionID,
		TotalScore:     m.FitSubmissionTotalScore,
		Classification: scoring.Classification(m.FitSubmissionClassification),
		CreatedAt:      m.CreatedAt,
	}
	if m.Candidate != nil {
		row.CandidateName = m.Candidate.CandidateName
		row.CandidateEmail = m.Candidate.CandidateEmail
	}
	return row
}

func ToHighScoreRow(m *model.FitSubmissionModel) HighScoreCandidateResponse {
	row := HighScoreCandidateResponse{
		ID:             m.FitSubmissionID,
		TotalScore:     m.FitSubmissionTotalScore,
		Classification: scoring.Classification(m.FitSubmissionClassification),
		PerfScore:      m.FitSubmissionPerfScore,
		EnergyScore:    m.FitSubmissionEnergyScore,
		CultureScore:   m.FitSubmissionCultureScore,
		SubmissionDate: m.CreatedAt,
	}
	if m.Candidate != nil {
		row.CandidateName = m.Candidate.CandidateName
		row.CandidateEmail = m.Candidate.CandidateEmail
	}
	return row
}
