// file: internals/errors/errors.go
package apperr

import "errors"

/* ===============================
   Error taxonomy inti FitScore
=================================*/

// ValidationError: input jawaban tidak lengkap / di luar range.
// Selalu recoverable oleh caller, tidak pernah disimpan.
type ValidationError struct {
	Message string
	Action  string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(message, action string) *ValidationError {
	return &ValidationError{Message: message, Action: action}
}

// NotFoundError: Candidate / Submission / User tidak ditemukan saat read.
type NotFoundError struct {
	Message string
	Action  string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(message, action string) *NotFoundError {
	return &NotFoundError{Message: message, Action: action}
}

// ConflictError: pelanggaran unique constraint yang tidak bisa
// diselesaikan internal (mis. ganti email ke alamat yang sudah dipakai).
type ConflictError struct {
	Message string
	Action  string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflictError(message, action string) *ConflictError {
	return &ConflictError{Message: message, Action: action}
}

// StorageError: kegagalan persistence apa pun. Selalu dipropagasi,
// tidak pernah ditelan diam-diam.
type StorageError struct {
	Message string
	Cause   error
}

func (e *StorageError) Error() string { return e.Message }
func (e *StorageError) Unwrap() error { return e.Cause }

func NewStorageError(message string, cause error) *StorageError {
	return &StorageError{Message: message, Cause: cause}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
