// Package apperrors содержит закрытую таксономию классифицированных ошибок.
// Ошибка конструируется ровно в точке классификации; всё, что пришло
// снизу неклассифицированным, переписывается в Server с фиксированным
// сообщением — детали хранилища наружу не утекают.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind — вид классифицированной ошибки.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation — некорректная форма входных данных.
	KindValidation
	// KindNotFound — сущность или связь не найдена.
	KindNotFound
	// KindConflict — нарушение уникальности.
	KindConflict
	// KindServer — сбой хранилища или инварианта, не связанный с вводом вызывающего.
	KindServer
)

// String возвращает человекочитаемое имя вида ошибки.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// AppError — классифицированная ошибка, переносимая без изменений
// от точки классификации до границы HTTP.
type AppError struct {
	Kind    Kind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// NewValidation создаёт ошибку вида Validation.
func NewValidation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// NewNotFound создаёт ошибку вида NotFound для сущности с меткой entity
// ("User", "Media", "Favorite").
func NewNotFound(entity string) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", entity)}
}

// NewConflict создаёт ошибку вида Conflict.
func NewConflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// NewServer создаёт ошибку вида Server.
func NewServer(message string) *AppError {
	return &AppError{Kind: KindServer, Message: message}
}

// KindOf возвращает вид ошибки err или KindUnknown,
// если ошибка не классифицирована.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// IsKind сообщает, классифицирована ли err указанным видом.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Classify пропускает уже классифицированную ошибку без изменений,
// а любую другую переписывает в Server с сообщением fallback.
func Classify(err error, fallback string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewServer(fallback)
}
