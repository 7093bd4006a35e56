package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Tixoni/tourportal/internal/authz"
	"github.com/Tixoni/tourportal/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

// Auth actions.

func (h *Handler) Login(c *ginext.Context) {
	username, password := credentialsFromForm(c)
	if err := validateCredentials(username, password); err != nil {
		// Локальная валидация не доходит до сети.
		h.fail(c, "/?login=1", err)
		return
	}

	if !h.inflight.tryAcquire("login") {
		h.fail(c, "/?login=1", errActionInFlight)
		return
	}
	defer h.inflight.release("login")

	ctx := c.Request.Context()
	token, err := h.auth.Login(ctx, username, password)
	if err != nil {
		h.fail(c, "/?login=1", err)
		return
	}

	if err := h.sessions.SetToken(ctx, token); err != nil {
		h.fail(c, "/?login=1", err)
		return
	}

	h.succeed(c, "/", "Signed in")
}

func (h *Handler) Register(c *ginext.Context) {
	input, err := registrationFromForm(c)
	if err != nil {
		h.fail(c, "/?login=1", err)
		return
	}

	if !h.inflight.tryAcquire("register") {
		h.fail(c, "/?login=1", errActionInFlight)
		return
	}
	defer h.inflight.release("register")

	if _, err := h.auth.Register(c.Request.Context(), input); err != nil {
		h.fail(c, "/?login=1", err)
		return
	}

	h.succeed(c, "/?login=1", "Account created, sign in")
}

func (h *Handler) Logout(c *ginext.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		h.fail(c, "/", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Tour actions.

func (h *Handler) BookTour(c *ginext.Context) {
	sess := h.sessions.Current()
	if !sess.IsAuthenticated() {
		// Без похода в сеть, просто открываем окно входа.
		c.Redirect(http.StatusSeeOther, "/?login=1")
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		h.fail(c, "/", err)
		return
	}

	key := fmt.Sprintf("book:%d", id)
	if !h.inflight.tryAcquire(key) {
		h.fail(c, "/", errActionInFlight)
		return
	}
	defer h.inflight.release(key)

	ctx := c.Request.Context()
	caps := authz.Derive(sess)

	tour, err := h.tours.Get(ctx, sess.Token, id)
	if err != nil {
		h.fail(c, "/", err)
		return
	}
	if !authz.CanBookTour(caps, *tour) {
		h.fail(c, "/", fmt.Errorf("%w: tour is not available for booking", domain.ErrValidation))
		return
	}

	input := domain.BookingInput{
		UserID:            sess.User.ID,
		TourID:            id,
		ParticipantsCount: 1,
		TravelDate:        time.Now().UTC().AddDate(0, 0, 7),
		ContactPhone:      sess.User.Phone,
		ContactEmail:      sess.User.Email,
	}

	booking, err := h.bookings.Create(ctx, sess.Token, input)
	if err != nil {
		h.fail(c, "/", err)
		return
	}

	go h.notifier.BookingCreated(context.WithoutCancel(ctx), tour, booking)

	h.succeed(c, "/", fmt.Sprintf("Tour %q booked", tour.Title))
}

func (h *Handler) CreateTour(c *ginext.Context) {
	sess := h.sessions.Current()
	if !authz.Derive(sess).CanCreateTours {
		h.fail(c, "/", errAdminsOnly)
		return
	}

	input, err := tourFromForm(c)
	if err != nil {
		h.fail(c, "/", err)
		return
	}

	if _, err := h.tours.Create(c.Request.Context(), sess.Token, input); err != nil {
		h.fail(c, "/", err)
		return
	}

	h.succeed(c, "/", "Tour created")
}

func (h *Handler) UpdateTour(c *ginext.Context) {
	sess := h.sessions.Current()
	if !authz.Derive(sess).CanEditTours {
		h.fail(c, "/", errAdminsOnly)
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		h.fail(c, "/", err)
		return
	}

	input, err := tourFromForm(c)
	if err != nil {
		h.fail(c, "/", err)
		return
	}

	if _, err := h.tours.Update(c.Request.Context(), sess.Token, id, input); err != nil {
		h.fail(c, "/", err)
		return
	}

	h.succeed(c, "/", "Tour updated")
}

func (h *Handler) DeleteTour(c *ginext.Context) {
	sess := h.sessions.Current()
	if !authz.Derive(sess).CanDeleteTours {
		h.fail(c, "/", errAdminsOnly)
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		h.fail(c, "/", err)
		return
	}

	if err := h.tours.Delete(c.Request.Context(), sess.Token, id); err != nil {
		h.fail(c, "/", err)
		return
	}

	h.succeed(c, "/", "Tour deleted")
}

// Booking actions.

func (h *Handler) CancelBooking(c *ginext.Context) {
	sess := h.sessions.Current()
	if !sess.IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/?login=1")
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		h.fail(c, "/bookings", err)
		return
	}

	key := fmt.Sprintf("cancel:%d", id)
	if !h.inflight.tryAcquire(key) {
		h.fail(c, "/bookings", errActionInFlight)
		return
	}
	defer h.inflight.release(key)

	ctx := c.Request.Context()
	if err := h.bookings.Cancel(ctx, sess.Token, id); err != nil {
		h.fail(c, "/bookings", err)
		return
	}

	go h.notifier.BookingCancelled(context.WithoutCancel(ctx), id)

	h.succeed(c, "/bookings", "Booking cancelled")
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	sess := h.sessions.Current()
	if !sess.IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/?login=1")
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		h.fail(c, "/bookings", err)
		return
	}

	key := fmt.Sprintf("confirm:%d", id)
	if !h.inflight.tryAcquire(key) {
		h.fail(c, "/bookings", errActionInFlight)
		return
	}
	defer h.inflight.release(key)

	ctx := c.Request.Context()
	if err := h.bookings.Confirm(ctx, sess.Token, id); err != nil {
		h.fail(c, "/bookings", err)
		return
	}

	go h.notifier.BookingConfirmed(context.WithoutCancel(ctx), id)

	h.succeed(c, "/bookings", "Booking confirmed")
}

// Admin actions.

func (h *Handler) DeleteUser(c *ginext.Context) {
	sess := h.sessions.Current()
	if !authz.Derive(sess).CanManageUsers {
		h.fail(c, "/", errAdminsOnly)
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		h.fail(c, "/admin/users", err)
		return
	}

	if err := h.auth.DeleteUser(c.Request.Context(), sess.Token, id); err != nil {
		h.fail(c, "/admin/users", err)
		return
	}

	h.succeed(c, "/admin/users", "User deleted")
}

// CreateSampleTour отладочный, роут добавляется только при включенном
// debug_tools.
func (h *Handler) CreateSampleTour(c *ginext.Context) {
	sess := h.sessions.Current()
	if !authz.Derive(sess).CanCreateTours {
		h.fail(c, "/", errAdminsOnly)
		return
	}

	description := "A sample tour for checking the portal end to end"
	input := domain.TourInput{
		Title:        "Sample tour to Antalya",
		Destination:  "Antalya",
		Price:        50000,
		DurationDays: 7,
		Description:  &description,
		Features:     []string{"All inclusive", "Excursions", "Transfer"},
		Available:    true,
	}

	if _, err := h.tours.Create(c.Request.Context(), sess.Token, input); err != nil {
		h.fail(c, "/", err)
		return
	}

	h.succeed(c, "/", "Sample tour created")
}
