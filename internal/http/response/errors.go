package response

import (
	"errors"
	"net/http"

	"github.com/magabrotheeeer/license-auth/internal/lib/apperr"
)

// Сообщения об ошибках, которые видит клиент.
const (
	MessageInvalidCredentials = "Invalid credentials"
	MessageInvalidRequest     = "Invalid request body"
	MessageUserNotFound       = "User not found"
	MessageUserExists         = "User already exists"
	MessageUserBanned         = "User is banned"
	MessageVersionMismatch    = "Version mismatch"
	MessageNoFields           = "No fields to update"
	MessageInternal           = "Internal server error"
)

// FromError сопоставляет ошибку бизнес-логики с HTTP-статусом и ответом.
// Неизвестные ошибки превращаются в 500 без подробностей.
func FromError(err error) (int, Response) {
	switch {
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized, Error(MessageInvalidCredentials)
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest, Error(MessageInvalidRequest)
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, Error(MessageUserNotFound)
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusBadRequest, Error(MessageUserExists)
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden, Error(MessageUserBanned)
	case errors.Is(err, apperr.ErrVersionMismatch):
		return http.StatusBadRequest, Error(MessageVersionMismatch)
	case errors.Is(err, apperr.ErrNoFields):
		return http.StatusBadRequest, Error(MessageNoFields)
	default:
		return http.StatusInternalServerError, Error(MessageInternal)
	}
}
