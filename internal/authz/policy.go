// Package authz выводит возможности интерфейса из состояния сессии.
// Это не граница безопасности: бэкенд перепроверяет все сам.
package authz

import "github.com/Tixoni/tourportal/internal/domain"

type Capabilities struct {
	CanBook        bool
	CanCreateTours bool
	CanEditTours   bool
	CanDeleteTours bool
	CanManageUsers bool
}

// Derive чистая: одна и та же сессия дает один и тот же набор.
func Derive(s domain.Session) Capabilities {
	caps := Capabilities{
		CanBook: s.IsAuthenticated(),
	}

	if s.IsAdmin() {
		caps.CanCreateTours = true
		caps.CanEditTours = true
		caps.CanDeleteTours = true
		caps.CanManageUsers = true
	}

	return caps
}

// CanBookTour требует аутентификации и доступного тура.
func CanBookTour(caps Capabilities, t domain.Tour) bool {
	return caps.CanBook && t.Available
}

// CanConfirmBooking отказывает броням удаленных туров: подтверждать
// больше нечего.
func CanConfirmBooking(b domain.Booking) bool {
	return b.Status == domain.BookingStatusPending && b.TourInfo != nil
}

func CanCancelBooking(b domain.Booking) bool {
	return b.Status != domain.BookingStatusCancelled && b.Status != domain.BookingStatusCompleted
}
