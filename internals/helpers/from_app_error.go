package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperr "fitscore_backend/internals/errors"
)

// FromAppError memetakan error bertipe dari core ke response JSON konsisten.
// Presentasi (status code, pesan) hanya terjadi di sini, bukan di core.
func FromAppError(c *fiber.Ctx, err error) error {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		return JsonErrorWithAction(c, fiber.StatusUnprocessableEntity, ve.Message, ve.Action)
	}

	var nf *apperr.NotFoundError
	if errors.As(err, &nf) {
		return JsonErrorWithAction(c, fiber.StatusNotFound, nf.Message, nf.Action)
	}

	var ce *apperr.ConflictError
	if errors.As(err, &ce) {
		return JsonErrorWithAction(c, fiber.StatusConflict, ce.Message, ce.Action)
	}

	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}

	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
