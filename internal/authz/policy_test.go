package authz

import (
	"testing"

	"github.com/Tixoni/tourportal/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDerive_Anonymous(t *testing.T) {
	caps := Derive(domain.Session{State: domain.SessionAnonymous})

	assert.Equal(t, Capabilities{}, caps)
}

func TestDerive_Resolving(t *testing.T) {
	caps := Derive(domain.Session{State: domain.SessionResolving, Token: "tok"})

	assert.Equal(t, Capabilities{}, caps)
}

func TestDerive_Authenticated(t *testing.T) {
	caps := Derive(domain.Session{
		State: domain.SessionAuthenticated,
		Token: "tok",
		User:  &domain.User{ID: 1, Username: "alice"},
	})

	assert.True(t, caps.CanBook)
	assert.False(t, caps.CanCreateTours)
	assert.False(t, caps.CanEditTours)
	assert.False(t, caps.CanDeleteTours)
	assert.False(t, caps.CanManageUsers)
}

func TestDerive_Admin(t *testing.T) {
	caps := Derive(domain.Session{
		State: domain.SessionAuthenticatedAdmin,
		Token: "tok",
		User:  &domain.User{ID: 1, Username: "admin"},
	})

	assert.Equal(t, Capabilities{
		CanBook:        true,
		CanCreateTours: true,
		CanEditTours:   true,
		CanDeleteTours: true,
		CanManageUsers: true,
	}, caps)
}

func TestCanBookTour(t *testing.T) {
	authed := Derive(domain.Session{
		State: domain.SessionAuthenticated,
		Token: "tok",
		User:  &domain.User{ID: 1, Username: "alice"},
	})
	anon := Derive(domain.Session{State: domain.SessionAnonymous})

	assert.True(t, CanBookTour(authed, domain.Tour{Available: true}))
	assert.False(t, CanBookTour(authed, domain.Tour{Available: false}))
	assert.False(t, CanBookTour(anon, domain.Tour{Available: true}))
}

func TestCanConfirmBooking(t *testing.T) {
	info := &domain.TourInfo{Title: "Stambul", Destination: "Turkey"}

	assert.True(t, CanConfirmBooking(domain.Booking{Status: domain.BookingStatusPending, TourInfo: info}))
	assert.False(t, CanConfirmBooking(domain.Booking{Status: domain.BookingStatusConfirmed, TourInfo: info}))

	// tour deleted: confirm is off even while pending
	assert.False(t, CanConfirmBooking(domain.Booking{Status: domain.BookingStatusPending, TourInfo: nil}))
}

func TestCanCancelBooking(t *testing.T) {
	info := &domain.TourInfo{Title: "Stambul", Destination: "Turkey"}

	assert.True(t, CanCancelBooking(domain.Booking{Status: domain.BookingStatusPending, TourInfo: info}))
	assert.True(t, CanCancelBooking(domain.Booking{Status: domain.BookingStatusConfirmed, TourInfo: info}))
	assert.False(t, CanCancelBooking(domain.Booking{Status: domain.BookingStatusCancelled, TourInfo: info}))
	assert.False(t, CanCancelBooking(domain.Booking{Status: domain.BookingStatusCompleted, TourInfo: info}))

	// cancel stays available for a pending booking of a deleted tour
	assert.True(t, CanCancelBooking(domain.Booking{Status: domain.BookingStatusPending, TourInfo: nil}))
}
