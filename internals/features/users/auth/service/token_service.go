// file: internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"fitscore_backend/internals/configs"
	userModel "fitscore_backend/internals/features/users/user/model"
)

const AccessTokenTTL = 24 * time.Hour

// SessionCookieName: cookie httpOnly yang dibaca middleware sebagai
// fallback kalau header Authorization kosong.
const SessionCookieName = "fitscore-session"

// CreateAccessToken menandatangani JWT akses untuk akun internal.
func CreateAccessToken(user *userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.UserID.String(),
		"name":     user.UserName,
		"email":    user.UserEmail,
		"position": user.UserPosition,
		"iat":      now.Unix(),
		"exp":      now.Add(AccessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
