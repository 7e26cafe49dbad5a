// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authRepo "fitscore_backend/internals/features/users/auth/repository"
	authService "fitscore_backend/internals/features/users/auth/service"
	helper "fitscore_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// 🔐 Login: POST /api/sessions
// Credencial inválida sempre devolve a mesma mensagem, sem revelar
// qual campo falhou.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var input loginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := helper.ValidateStruct(input); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	user, err := authRepo.FindUserByEmail(ctrl.DB, input.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] Login lookup failed:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
	}

	token, err := authService.CreateAccessToken(user)
	if err != nil {
		log.Println("[ERROR] Token sign failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	c.Cookie(&fiber.Cookie{
		Name:     authService.SessionCookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  time.Now().Add(authService.AccessTokenTTL),
	})

	return helper.JsonOK(c, "Login realizado com sucesso", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.UserID,
			"name":     user.UserName,
			"email":    user.UserEmail,
			"position": user.UserPosition,
		},
	})
}

// 🚪 Logout: POST /api/sessions/logout — blacklist token + limpa cookie.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
	if token == "" {
		token = c.Cookies(authService.SessionCookieName)
	}
	if token != "" {
		if err := authRepo.BlacklistToken(ctrl.DB, token, authService.AccessTokenTTL); err != nil {
			log.Println("[ERROR] Blacklist token failed:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     authService.SessionCookieName,
		Value:    "",
		HTTPOnly: true,
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
	})
	return helper.JsonOK(c, "Logout realizado com sucesso", nil)
}

// 👤 Me: GET /api/me — claims do token via middleware.
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", fiber.Map{
		"id":       c.Locals("user_id"),
		"name":     c.Locals("user_name"),
		"email":    c.Locals("user_email"),
		"position": c.Locals("position"),
	})
}
