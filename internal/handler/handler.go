package handler

import (
	"context"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/Tixoni/tourportal/internal/authz"
	"github.com/Tixoni/tourportal/internal/domain"
	"github.com/Tixoni/tourportal/internal/view"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type ToursGateway interface {
	List(ctx context.Context, destination string) ([]domain.Tour, error)
	Get(ctx context.Context, token string, id int64) (*domain.Tour, error)
	Create(ctx context.Context, token string, input domain.TourInput) (*domain.Tour, error)
	Update(ctx context.Context, token string, id int64, input domain.TourInput) (*domain.Tour, error)
	Delete(ctx context.Context, token string, id int64) error
}

type BookingsGateway interface {
	Create(ctx context.Context, token string, input domain.BookingInput) (*domain.Booking, error)
	ListByUser(ctx context.Context, token string, userID int64) ([]domain.Booking, error)
	Cancel(ctx context.Context, token string, id int64) error
	Confirm(ctx context.Context, token string, id int64) error
}

type AuthGateway interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	ListUsers(ctx context.Context, token string) ([]domain.User, error)
	DeleteUser(ctx context.Context, token string, id int64) error
}

type SessionManager interface {
	Current() domain.Session
	SetToken(ctx context.Context, token string) error
	Logout(ctx context.Context) error
}

type Notifier interface {
	BookingCreated(ctx context.Context, tour *domain.Tour, booking *domain.Booking)
	BookingConfirmed(ctx context.Context, bookingID int64)
	BookingCancelled(ctx context.Context, bookingID int64)
}

type Handler struct {
	tours      ToursGateway
	bookings   BookingsGateway
	auth       AuthGateway
	sessions   SessionManager
	notifier   Notifier
	view       *view.Renderer
	inflight   *inflightGuard
	debugTools bool
	log        logger.Logger
}

func NewHandler(
	tours ToursGateway,
	bookings BookingsGateway,
	auth AuthGateway,
	sessions SessionManager,
	notifier Notifier,
	renderer *view.Renderer,
	debugTools bool,
	log logger.Logger,
) *Handler {
	return &Handler{
		tours:      tours,
		bookings:   bookings,
		auth:       auth,
		sessions:   sessions,
		notifier:   notifier,
		view:       renderer,
		inflight:   newInflightGuard(),
		debugTools: debugTools,
		log:        log,
	}
}

// Pages. Каждая страница забирает свежее состояние и отрисовывается с
// нуля, частичных обновлений нет.

func (h *Handler) ToursPage(c *ginext.Context) {
	sess := h.sessions.Current()
	caps := authz.Derive(sess)
	dest := strings.TrimSpace(c.Query("destination"))

	tours, err := h.tours.List(c.Request.Context(), dest)

	page := h.basePage(c, "Tours", "tours", sess, caps)
	page.FilterDestination = dest
	if err != nil {
		page.Content = h.errorCard(c, err)
	} else {
		fragment, renderErr := h.view.ToursList(tours, caps)
		if renderErr != nil {
			h.renderFailure(c, renderErr)
			return
		}
		page.Content = fragment
	}

	if caps.CanCreateTours {
		page.TourForm = view.NewCreateTourForm()
		page.DebugTools = h.debugTools
	}

	h.writePage(c, page)
}

func (h *Handler) BookingsPage(c *ginext.Context) {
	sess := h.sessions.Current()
	if !sess.IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, "/?login=1")
		return
	}
	caps := authz.Derive(sess)

	bookings, err := h.bookings.ListByUser(c.Request.Context(), sess.Token, sess.User.ID)

	page := h.basePage(c, "My bookings", "bookings", sess, caps)
	if err != nil {
		page.Content = h.errorCard(c, err)
	} else {
		fragment, renderErr := h.view.BookingsList(bookings)
		if renderErr != nil {
			h.renderFailure(c, renderErr)
			return
		}
		page.Content = fragment
	}

	h.writePage(c, page)
}

func (h *Handler) UsersPage(c *ginext.Context) {
	sess := h.sessions.Current()
	caps := authz.Derive(sess)
	if !caps.CanManageUsers {
		h.fail(c, "/", errAdminsOnly)
		return
	}

	users, err := h.auth.ListUsers(c.Request.Context(), sess.Token)

	page := h.basePage(c, "Users", "users", sess, caps)
	if err != nil {
		page.Content = h.errorCard(c, err)
	} else {
		fragment, renderErr := h.view.UsersList(users, caps)
		if renderErr != nil {
			h.renderFailure(c, renderErr)
			return
		}
		page.Content = fragment
	}

	h.writePage(c, page)
}

func (h *Handler) EditTourPage(c *ginext.Context) {
	sess := h.sessions.Current()
	caps := authz.Derive(sess)
	if !caps.CanEditTours {
		h.fail(c, "/", errAdminsOnly)
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		h.fail(c, "/", err)
		return
	}

	tour, err := h.tours.Get(c.Request.Context(), sess.Token, id)
	if err != nil {
		h.fail(c, "/", err)
		return
	}

	page := h.basePage(c, "Edit tour", "tours", sess, caps)
	page.TourForm = view.NewEditTourForm(tour)
	h.writePage(c, page)
}

// Helpers.

func (h *Handler) basePage(c *ginext.Context, title, tab string, sess domain.Session, caps authz.Capabilities) view.Page {
	page := view.Page{
		Title:          title,
		ActiveTab:      tab,
		Authenticated:  sess.IsAuthenticated(),
		Admin:          sess.IsAdmin(),
		CanManageUsers: caps.CanManageUsers,
		ShowLoginModal: c.Query("login") == "1" && !sess.IsAuthenticated(),
		Flash: view.Flash{
			Message: c.Query("msg"),
			Error:   c.Query("err"),
		},
	}
	if sess.User != nil {
		page.Username = sess.User.Username
	}
	return page
}

func (h *Handler) writePage(c *ginext.Context, page view.Page) {
	body, err := h.view.Page(page)
	if err != nil {
		h.renderFailure(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

func (h *Handler) renderFailure(c *ginext.Context, err error) {
	c.Set("error", err.Error())
	c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8", []byte("internal error"))
}

func (h *Handler) errorCard(c *ginext.Context, err error) template.HTML {
	c.Set("error", err.Error())
	fragment, renderErr := h.view.ErrorCard(messageFor(err))
	if renderErr != nil {
		return ""
	}
	return fragment
}

// fail редиректит обратно с нормализованным текстом ошибки в статусной
// зоне. Сохраненное состояние при ошибке не меняется.
func (h *Handler) fail(c *ginext.Context, target string, err error) {
	c.Set("error", err.Error())
	c.Redirect(http.StatusSeeOther, withQuery(target, "err", messageFor(err)))
}

func (h *Handler) succeed(c *ginext.Context, target, message string) {
	c.Redirect(http.StatusSeeOther, withQuery(target, "msg", message))
}

func withQuery(target, key, value string) string {
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	return target + sep + key + "=" + url.QueryEscape(value)
}
