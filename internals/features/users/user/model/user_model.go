// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel: akun internal (avaliador/admin), bukan kandidat.
type UserModel struct {
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;column:user_id;default:gen_random_uuid()"`
	UserName     string    `json:"user_name" gorm:"type:varchar(100);not null;column:user_name"`
	UserEmail    string    `json:"user_email" gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email;column:user_email"`
	UserPassword string    `json:"-" gorm:"type:text;not null;column:user_password"`
	UserPosition string    `json:"user_position" gorm:"type:varchar(50);not null;index;column:user_position"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }
