// Package apperr содержит классификацию ошибок сервиса.
//
// Слои хранилища и бизнес-логики оборачивают эти ошибки через fmt.Errorf("%s: %w", op, err),
// а HTTP-обработчики распознают их через errors.Is и выбирают код ответа.
package apperr

import "errors"

var (
	// ErrUnauthorized - ключ API или user-agent клиента не прошли проверку.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrValidation - обязательное поле отсутствует или имеет неверный формат.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound - пользователь с указанным account id не существует.
	ErrNotFound = errors.New("not found")
	// ErrConflict - пользователь с таким account id уже существует.
	ErrConflict = errors.New("already exists")
	// ErrForbidden - пользователь заблокирован администратором.
	ErrForbidden = errors.New("forbidden")
	// ErrVersionMismatch - версия клиента не совпадает с версией приложения.
	ErrVersionMismatch = errors.New("version mismatch")
	// ErrNoFields - запрос на обновление не содержит ни одного поля.
	ErrNoFields = errors.New("no fields to update")
)
