package model

import "time"

// TokenBlacklistModel: token yang sudah logout, ditolak middleware
// sampai dibersihkan scheduler.
type TokenBlacklistModel struct {
	TokenBlacklistID int       `json:"token_blacklist_id" gorm:"primaryKey;column:token_blacklist_id"`
	Token            string    `json:"token" gorm:"type:text;not null;uniqueIndex;column:token"`
	ExpiredAt        time.Time `json:"expired_at" gorm:"column:expired_at;not null;index"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (TokenBlacklistModel) TableName() string { return "token_blacklist" }
