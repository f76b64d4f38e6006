package errors

import (
	stderrors "errors"
	"fmt"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	if reason, ok := e.Details["reason"].(string); ok && reason != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, reason)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is - ошибки одного кода считаются равными, чтобы errors.Is работал
// и для копий с деталями
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithDetails возвращает копию ошибки с деталями; sentinel не изменяется
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithReason - сокращение для WithDetails с единственным полем reason
func (e *AppError) WithReason(reason string) *AppError {
	return e.WithDetails(map[string]interface{}{"reason": reason})
}

// Reason возвращает details.reason, если он задан
func (e *AppError) Reason() string {
	reason, _ := e.Details["reason"].(string)
	return reason
}

// As извлекает *AppError из цепочки ошибок
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// ReasonOf возвращает reason для ошибок валидации или пустую строку
func ReasonOf(err error) string {
	if appErr, ok := As(err); ok {
		return appErr.Reason()
	}
	return ""
}
