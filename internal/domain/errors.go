package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation = errors.New("validation error")
)

var (
	ErrNetwork     = errors.New("backend unreachable")
	ErrTimeout     = errors.New("request timed out")
	ErrAuthExpired = errors.New("session expired")
)

// HTTPError описывает не-2xx ответ бэкенда. Message берется из detail
// ответа, если его удалось распарсить.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error (%d)", e.Status)
	}
	return fmt.Sprintf("backend error (%d): %s", e.Status, e.Message)
}

// Is позволяет матчить 401 через errors.Is(err, ErrAuthExpired).
func (e *HTTPError) Is(target error) bool {
	return target == ErrAuthExpired && e.Status == http.StatusUnauthorized
}
