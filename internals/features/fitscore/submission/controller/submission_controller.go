// file: internals/features/fitscore/submission/controller/submission_controller.go
package controller

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fitscore_backend/internals/configs"
	"fitscore_backend/internals/features/fitscore/scoring"
	"fitscore_backend/internals/features/fitscore/submission/dto"
	"fitscore_backend/internals/features/fitscore/submission/service"
	helper "fitscore_backend/internals/helpers"
	"fitscore_backend/internals/mailer"
)

type SubmissionController struct {
	Service *service.SubmissionService
	Mailer  mailer.Mailer
}

func NewSubmissionController(svc *service.SubmissionService, mail mailer.Mailer) *SubmissionController {
	return &SubmissionController{Service: svc, Mailer: mail}
}

// 📩 SubmitForm menerima formulário público, salva a submissão e dispara
// o email de resultado. Falha de email nunca derruba o save.
func (ctrl *SubmissionController) SubmitForm(c *fiber.Ctx) error {
	var input dto.SubmitFormRequest
	if err := c.BodyParser(&input); err != nil {
		log.Println("[ERROR] Failed to parse submit-form input:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := helper.ValidateStruct(input); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	result, err := ctrl.Service.Save(c.UserContext(), input.Name, input.Email, input.Answers)
	if err != nil {
		log.Println("[ERROR] Failed to save submission:", err)
		return helper.FromAppError(c, err)
	}

	// email dikirim async, terlepas dari response
	go ctrl.sendResultEmail(result)

	message := "Nova avaliação registrada com sucesso! Verifique seu email para o resultado."
	if result.IsNewCandidate {
		message = "Formulário enviado com sucesso! Verifique seu email para o resultado."
	}

	return helper.JsonOK(c, message, fiber.Map{
		"submissionId": result.Submission.ID,
		"scores": fiber.Map{
			"perfScore":    result.Submission.PerfScore,
			"energyScore":  result.Submission.EnergyScore,
			"cultureScore": result.Submission.CultureScore,
			"totalScore":   result.Submission.TotalScore,
		},
		"classification": result.Submission.Classification,
	})
}

func (ctrl *SubmissionController) sendResultEmail(result *dto.SaveResult) {
	if result.Submission.Candidate == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err := ctrl.Mailer.SendCandidateResult(ctx, mailer.CandidateResultEmail{
		CandidateName:  result.Submission.Candidate.Name,
		CandidateEmail: result.Submission.Candidate.Email,
		PerfScore:      result.Submission.PerfScore,
		EnergyScore:    result.Submission.EnergyScore,
		CultureScore:   result.Submission.CultureScore,
		TotalScore:     result.Submission.TotalScore,
		Classification: string(result.Submission.Classification),
	})
	if err != nil {
		log.Println("[WARN] Result email failed (submission already saved):", err)
	}
}

// 📋 GetQuestions expõe o catálogo estático para a UI.
func (ctrl *SubmissionController) GetQuestions(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", scoring.Questions)
}

// 🔎 ListSubmissions: listagem paginada/filtrável do dashboard.
func (ctrl *SubmissionController) ListSubmissions(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, "date", "desc", helper.DashboardOpts)

	result, err := ctrl.Service.List(c.UserContext(), service.ListQuery{
		Classification: c.Query("classification"),
		Search:         c.Query("search"),
		Params:         params,
	})
	if err != nil {
		return helper.FromAppError(c, err)
	}

	pagination := helper.BuildPaginationFromPage(result.Total, result.Page, result.PageSize)
	return helper.JsonList(c, "ok", result, pagination)
}

// 📊 DashboardStats: contagens globais da loja de submissões.
func (ctrl *SubmissionController) DashboardStats(c *fiber.Ctx) error {
	stats, err := ctrl.Service.Stats(c.UserContext())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", stats)
}

// GetSubmissionByID: detalhe completo (answers + candidato).
func (ctrl *SubmissionController) GetSubmissionByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}
	sub, err := ctrl.Service.FindByID(c.UserContext(), id)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", sub)
}

// GetCandidateHistory: todas as submissões de um email, mais recente primeiro.
func (ctrl *SubmissionController) GetCandidateHistory(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query param 'email' is required")
	}
	subs, err := ctrl.Service.FindByCandidateEmail(c.UserContext(), email)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", subs)
}

// ✉️ SendInvite: avaliador convida um candidato para o formulário.
func (ctrl *SubmissionController) SendInvite(c *fiber.Ctx) error {
	var input dto.SendInviteRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := helper.ValidateStruct(input); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	err := ctrl.Mailer.SendInvite(c.UserContext(), mailer.InviteEmail{
		CandidateName:  input.CandidateName,
		CandidateEmail: input.CandidateEmail,
		FormURL:        configs.BaseURL + "/form",
	})
	if err != nil {
		log.Println("[ERROR] Invite email failed:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Falha ao enviar o convite")
	}
	return helper.JsonOK(c, "Convite enviado com sucesso", fiber.Map{
		"candidateEmail": input.CandidateEmail,
	})
}
