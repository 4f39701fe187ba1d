// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import (
	"errors"
	"fmt"
)

// Базовые виды ошибок. По ним api слой выбирает HTTP-статус.
var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Тело запроса не объявлено как application/json
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// ожидаемая ошибка
	ErrExpectedError = errors.New("expected error")
	// неожидаемая ошибка
	ErrUnexpectedError = errors.New("unexpected error")
)

// пользователи и записи о воде
var (
	ErrUserNotFound        = New(ErrNotFound, "user not found")
	ErrWaterRecordNotFound = New(ErrNotFound, "water record not found")
	ErrNoWaterRecords      = New(ErrNotFound, "no water record for this user")
	ErrWaterRecordsEmpty   = New(ErrNotFound, "no water records found")
	ErrNoNearbyRecords     = New(ErrNotFound, "no nearby records")
	ErrCreateRecordFailed  = New(ErrInternal, "failed to create water record")
)

// только для стампов
var (
	ErrStampNotFound            = New(ErrNotFound, "stamp not found")
	ErrUserStampNotFound        = New(ErrNotFound, "user stamp not found")
	ErrSenderOrReceiverNotFound = New(ErrNotFound, "sender or receiver not found")
	ErrMissingRequiredFields    = New(ErrInvalidInput, "missing required fields")
	ErrAlreadyReplied           = New(ErrInvalidInput, "stamp already replied")
	ErrSendStampFailed          = New(ErrInternal, "failed to send stamp")
	ErrReplyStampFailed         = New(ErrInternal, "failed to reply stamp")
)

// DomainError — ошибка с человекочитаемым текстом и базовым видом (kind).
//
// errors.Is(err, ErrNotFound) для DomainError с kind=ErrNotFound вернёт true,
// поэтому api слою достаточно проверять только базовые виды.
type DomainError struct {
	kind error
	msg  string
}

// New создаёт доменную ошибку заданного вида.
func New(kind error, msg string) error {
	return &DomainError{kind: kind, msg: msg}
}

func (e *DomainError) Error() string { return e.msg }

func (e *DomainError) Unwrap() error { return e.kind }

// MissingFieldError — не передано обязательное поле запроса.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrInvalidInput }

// Kind возвращает базовый вид ошибки (ErrInvalidInput, ErrNotFound и т.д.).
// Для неизвестных ошибок возвращается ErrInternal.
func Kind(err error) error {
	for _, k := range []error{ErrBadJSON, ErrInvalidInput, ErrUnsupportedMediaType, ErrNotFound} {
		if errors.Is(err, k) {
			return k
		}
	}
	return ErrInternal
}
