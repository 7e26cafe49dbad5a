// file: internals/features/fitscore/submission/model/fit_submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FitSubmissionModel merepresentasikan tabel fit_submissions.
// Append-only: satu kandidat boleh punya banyak baris, tidak pernah
// di-update atau di-delete oleh core.
type FitSubmissionModel struct {
	FitSubmissionID          uuid.UUID `json:"fit_submission_id" gorm:"type:uuid;primaryKey;column:fit_submission_id;default:gen_random_uuid()"`
	FitSubmissionCandidateID uuid.UUID `json:"fit_submission_candidate_id" gorm:"type:uuid;not null;index;column:fit_submission_candidate_id"`

	// Snapshot 10 jawaban tervalidasi, persis seperti diterima.
	FitSubmissionAnswers datatypes.JSON `json:"fit_submission_answers" gorm:"type:jsonb;not null;column:fit_submission_answers"`

	FitSubmissionPerfScore    int `json:"fit_submission_perf_score" gorm:"not null;column:fit_submission_perf_score"`
	FitSubmissionEnergyScore  int `json:"fit_submission_energy_score" gorm:"not null;column:fit_submission_energy_score"`
	FitSubmissionCultureScore int `json:"fit_submission_culture_score" gorm:"not null;column:fit_submission_culture_score"`
	FitSubmissionTotalScore   int `json:"fit_submission_total_score" gorm:"not null;index;column:fit_submission_total_score"`

	FitSubmissionClassification string `json:"fit_submission_classification" gorm:"type:varchar(20);not null;index;column:fit_submission_classification"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime;index"`

	Candidate *CandidateModel `json:"candidate,omitempty" gorm:"foreignKey:FitSubmissionCandidateID;references:CandidateID"`
}

func (FitSubmissionModel) TableName() string { return "fit_submissions" }
