package handler

import (
	"errors"

	"github.com/Tixoni/tourportal/internal/domain"
)

var (
	errAdminsOnly     = errors.New("administrators only")
	errActionInFlight = errors.New("this action is already in progress")
)

// messageFor превращает ошибку в текст для пользователя. Презентация
// живет в хендлере, гейтвеи только классифицируют.
func messageFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, errAdminsOnly),
		errors.Is(err, errActionInFlight):
		return err.Error()

	case errors.Is(err, domain.ErrAuthExpired):
		return "Session expired. Sign in again."

	case errors.Is(err, domain.ErrTimeout):
		return "Request timed out. Try again."

	case errors.Is(err, domain.ErrNetwork):
		return "Backend is unreachable. Check your connection."
	}

	var httpErr *domain.HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}

	return "Something went wrong. Try again."
}
