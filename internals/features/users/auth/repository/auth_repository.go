// file: internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "fitscore_backend/internals/features/users/auth/model"
	userModel "fitscore_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUsersByPosition(db *gorm.DB, position string) ([]userModel.UserModel, error) {
	var users []userModel.UserModel
	if err := db.Where("user_position = ?", position).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

// IsEmailTaken: cek unique sebelum ganti email akun.
func IsEmailTaken(db *gorm.DB, email string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := db.
		Raw(`SELECT EXISTS(SELECT 1 FROM users WHERE user_email = ? AND user_id <> ?)`, email, excludeID).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists, nil
}

func UpdateUserEmail(db *gorm.DB, userID uuid.UUID, newEmail string) error {
	return db.Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_email", newEmail).Error
}

/* ====================== BLACKLIST TOKEN ====================== */

func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	return db.Create(&authModel.TokenBlacklistModel{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}).Error
}

func IsTokenBlacklisted(db *gorm.DB, token string) (bool, error) {
	var exists bool
	err := db.
		Raw(`SELECT EXISTS(SELECT 1 FROM token_blacklist WHERE token = ?)`, token).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists, nil
}

func CleanupExpiredBlacklist(db *gorm.DB) (int64, error) {
	res := db.Exec(`DELETE FROM token_blacklist WHERE expired_at <= ?`, time.Now().UTC())
	return res.RowsAffected, res.Error
}
