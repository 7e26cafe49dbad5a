// file: internals/features/fitscore/submission/model/candidate_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CandidateModel merepresentasikan tabel candidates.
// Email adalah identity key (unique, exact-match); name boleh berubah
// di setiap submission baru.
type CandidateModel struct {
	CandidateID    uuid.UUID `json:"candidate_id" gorm:"type:uuid;primaryKey;column:candidate_id;default:gen_random_uuid()"`
	CandidateName  string    `json:"candidate_name" gorm:"type:varchar(100);not null;column:candidate_name"`
	CandidateEmail string    `json:"candidate_email" gorm:"type:varchar(255);not null;uniqueIndex:uq_candidates_email;column:candidate_email"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (CandidateModel) TableName() string { return "candidates" }
