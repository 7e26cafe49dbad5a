// file: internals/seeds/runner.go
package seeds

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitscore_backend/internals/configs"
	"fitscore_backend/internals/constants"
	authRepo "fitscore_backend/internals/features/users/auth/repository"
	userModel "fitscore_backend/internals/features/users/user/model"
)

// Run memastikan akun avaliador default ada, supaya laporan terjadwal
// punya penerima sejak boot pertama.
func Run(db *gorm.DB) {
	email := configs.GetEnv("SEED_EVALUATOR_EMAIL", "avaliador@fitscore.com")
	password := configs.GetEnv("SEED_EVALUATOR_PASSWORD", "senha123")

	_, err := authRepo.FindUserByEmail(db, email)
	if err == nil {
		return // sudah ada
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[SEED ERROR] lookup avaliador: %v", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[SEED ERROR] hash password: %v", err)
		return
	}

	user := &userModel.UserModel{
		UserName:     "avaliador",
		UserEmail:    email,
		UserPassword: string(hashed),
		UserPosition: constants.PositionAvaliador,
	}
	if err := authRepo.CreateUser(db, user); err != nil {
		log.Printf("[SEED ERROR] create avaliador: %v", err)
		return
	}
	log.Printf("[SEED] Akun avaliador default dibuat: %s", email)
}
