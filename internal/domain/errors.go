package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrInvalidDate - день, месяц или год вне допустимого диапазона
	ErrInvalidDate = &DomainError{
		Code:    "INVALID_DATE",
		Message: "the birthdate is invalid (out of range)",
	}

	// ErrNameTooLong - имя пустое или длиннее 20 символов
	ErrNameTooLong = &DomainError{
		Code:    "NAME_TOO_LONG",
		Message: "the name must be between 1 and 20 characters",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrUpstreamUnavailable - PokeAPI недоступен, команду собрать нельзя
	ErrUpstreamUnavailable = &DomainError{
		Code:    "UPSTREAM_UNAVAILABLE",
		Message: "pokemon lookup service is unavailable",
	}

	// ErrForbidden - мутации запрещены в текущем окружении
	ErrForbidden = &DomainError{
		Code:    "FORBIDDEN",
		Message: "you do not have permission to execute this command",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewInvalidDateError создает ошибку INVALID_DATE для конкретного поля даты
func NewInvalidDateError(field string) *DomainError {
	return &DomainError{
		Code:    "INVALID_DATE",
		Message: fmt.Sprintf("the birth %s is invalid (out of range)", field),
	}
}

// NewUpstreamUnavailableError создает ошибку UPSTREAM_UNAVAILABLE с причиной сбоя
func NewUpstreamUnavailableError(detail string) *DomainError {
	return &DomainError{
		Code:    "UPSTREAM_UNAVAILABLE",
		Message: fmt.Sprintf("pokemon lookup failed: %s", detail),
	}
}
