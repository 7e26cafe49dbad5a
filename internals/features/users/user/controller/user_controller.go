// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	apperr "fitscore_backend/internals/errors"
	authRepo "fitscore_backend/internals/features/users/auth/repository"
	helper "fitscore_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

type updateEmailRequest struct {
	NewEmail string `json:"newEmail" validate:"required,email,max=255"`
}

// ✏️ UpdateEmail: PATCH /api/user/email — troca de email da conta
// interna, com checagem de unicidade. Caminho separado da identidade de
// candidato: email de candidato nunca muda via submissão.
func (ctrl *UserController) UpdateEmail(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user ID")
	}

	var input updateEmailRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := helper.ValidateStruct(input); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	taken, err := authRepo.IsEmailTaken(ctrl.DB, input.NewEmail, userID)
	if err != nil {
		log.Println("[ERROR] Email uniqueness check failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if taken {
		return helper.FromAppError(c, apperr.NewConflictError(
			"Este email já está sendo usado por outro usuário.",
			"Escolha um email diferente.",
		))
	}

	if err := authRepo.UpdateUserEmail(ctrl.DB, userID, input.NewEmail); err != nil {
		// janela entre a checagem e o update: unique index decide
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.FromAppError(c, apperr.NewConflictError(
				"Este email já está sendo usado por outro usuário.",
				"Escolha um email diferente.",
			))
		}
		log.Println("[ERROR] Update email failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonUpdated(c, "Email atualizado com sucesso", fiber.Map{
		"id":    userID,
		"email": input.NewEmail,
	})
}

// GetProfile: GET /api/user — dados completos da conta logada.
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user ID")
	}

	user, err := authRepo.FindUserByID(ctrl.DB, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.FromAppError(c, apperr.NewNotFoundError(
				"O usuário não foi encontrado no sistema.",
				"Verifique se o ID está correto.",
			))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "ok", user)
}
