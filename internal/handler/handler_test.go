package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Tixoni/tourportal/internal/domain"
	hmocks "github.com/Tixoni/tourportal/internal/handler/mocks"
	"github.com/Tixoni/tourportal/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type testEnv struct {
	tours    *hmocks.MockToursGateway
	bookings *hmocks.MockBookingsGateway
	auth     *hmocks.MockAuthGateway
	sessions *hmocks.MockSessionManager
	notifier *hmocks.MockNotifier
	router   http.Handler
}

func setup(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		tours:    hmocks.NewMockToursGateway(t),
		bookings: hmocks.NewMockBookingsGateway(t),
		auth:     hmocks.NewMockAuthGateway(t),
		sessions: hmocks.NewMockSessionManager(t),
		notifier: hmocks.NewMockNotifier(t),
	}

	h := NewHandler(env.tours, env.bookings, env.auth, env.sessions, env.notifier, view.MustNew(), true, newTestLogger(t))

	r := ginext.New("test")
	r.GET("/", h.ToursPage)
	r.GET("/bookings", h.BookingsPage)
	r.GET("/admin/users", h.UsersPage)
	r.GET("/tours/:id/edit", h.EditTourPage)
	r.POST("/login", h.Login)
	r.POST("/register", h.Register)
	r.POST("/logout", h.Logout)
	r.POST("/tours", h.CreateTour)
	r.POST("/tours/:id", h.UpdateTour)
	r.POST("/tours/:id/delete", h.DeleteTour)
	r.POST("/tours/:id/book", h.BookTour)
	r.POST("/bookings/:id/cancel", h.CancelBooking)
	r.POST("/bookings/:id/confirm", h.ConfirmBooking)
	r.POST("/admin/users/:id/delete", h.DeleteUser)
	r.POST("/debug/sample-tour", h.CreateSampleTour)
	env.router = r

	return env
}

func anonSession() domain.Session {
	return domain.Session{State: domain.SessionAnonymous}
}

func userSession() domain.Session {
	return domain.Session{
		State: domain.SessionAuthenticated,
		Token: "user-tok",
		User: &domain.User{
			ID:       7,
			Username: "alice",
			Email:    "alice@example.com",
			Phone:    "+70000000000",
		},
	}
}

func adminSession() domain.Session {
	return domain.Session{
		State: domain.SessionAuthenticatedAdmin,
		Token: "admin-tok",
		User:  &domain.User{ID: 1, Username: "admin", Email: "admin@example.com"},
	}
}

func (env *testEnv) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// Pages.

func TestToursPage_RendersCatalogue(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(anonSession())
	env.tours.EXPECT().List(mock.Anything, "").Return([]domain.Tour{
		{ID: 1, Title: "Beach week", Destination: "Antalya", Available: true},
	}, nil)

	w := env.get("/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Beach week")
	assert.Contains(t, w.Body.String(), "Sign in to book")
}

func TestToursPage_FilterPassedToGateway(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(anonSession())
	env.tours.EXPECT().List(mock.Anything, "Oslo").Return(nil, nil)

	w := env.get("/?destination=Oslo")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="Oslo"`)
}

func TestToursPage_GatewayFailureShowsErrorCard(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(anonSession())
	env.tours.EXPECT().List(mock.Anything, "").Return(nil, domain.ErrNetwork)

	w := env.get("/")

	// the shell still renders; only the list area carries the failure
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Backend is unreachable")
}

func TestToursPage_AdminGetsCreateForm(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(adminSession())
	env.tours.EXPECT().List(mock.Anything, "").Return(nil, nil)

	w := env.get("/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Create a new tour")
	assert.Contains(t, w.Body.String(), "/debug/sample-tour")
}

func TestBookingsPage_RedirectsAnonymous(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(anonSession())

	w := env.get("/bookings")

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?login=1", w.Header().Get("Location"))
	env.bookings.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingsPage_ListsOwnBookings(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(userSession())
	env.bookings.EXPECT().ListByUser(mock.Anything, "user-tok", int64(7)).Return([]domain.Booking{
		{ID: 3, Status: domain.BookingStatusPending, TourInfo: &domain.TourInfo{Title: "Alps", Destination: "Austria"}},
	}, nil)

	w := env.get("/bookings")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alps")
}

func TestUsersPage_RejectsNonAdmin(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(userSession())

	w := env.get("/admin/users")

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "err=")
	env.auth.AssertNotCalled(t, "ListUsers", mock.Anything, mock.Anything)
}

func TestUsersPage_AdminSeesUsers(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(adminSession())
	env.auth.EXPECT().ListUsers(mock.Anything, "admin-tok").Return([]domain.User{
		{ID: 2, Username: "bob", Email: "bob@example.com", IsActive: true},
	}, nil)

	w := env.get("/admin/users")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "bob")
}

func TestEditTourPage_LoadsTourIntoForm(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(adminSession())
	env.tours.EXPECT().Get(mock.Anything, "admin-tok", int64(5)).Return(&domain.Tour{
		ID: 5, Title: "Old title", Destination: "Rome", Price: 1000, DurationDays: 4,
	}, nil)

	w := env.get("/tours/5/edit")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/tours/5"`)
	assert.Contains(t, w.Body.String(), "Old title")
}

// Auth actions.

func TestLogin_Success(t *testing.T) {
	env := setup(t)
	env.auth.EXPECT().Login(mock.Anything, "alice", "secret1").Return("tok-1", nil)
	env.sessions.EXPECT().SetToken(mock.Anything, "tok-1").Return(nil)

	w := env.postForm("/login", url.Values{"username": {"alice"}, "password": {"secret1"}})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "msg=")
}

func TestLogin_ShortPasswordNeverReachesBackend(t *testing.T) {
	env := setup(t)

	w := env.postForm("/login", url.Values{"username": {"alice"}, "password": {"abc"}})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "err=")
	env.auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_BadCredentials(t *testing.T) {
	env := setup(t)
	env.auth.EXPECT().Login(mock.Anything, "alice", "wrong-pass").
		Return("", &domain.HTTPError{Status: http.StatusUnauthorized, Message: "Incorrect username or password"})

	w := env.postForm("/login", url.Values{"username": {"alice"}, "password": {"wrong-pass"}})

	require.Equal(t, http.StatusSeeOther, w.Code)
	loc := w.Header().Get("Location")
	assert.Contains(t, loc, "/?login=1")
	assert.Contains(t, loc, url.QueryEscape("Incorrect username or password"))
}

func TestRegister_Success(t *testing.T) {
	env := setup(t)
	env.auth.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in domain.RegisterInput) bool {
		return in.Username == "newbie" && in.Email == "n@example.com" && in.Phone == nil
	})).Return(&domain.User{ID: 9, Username: "newbie"}, nil)

	w := env.postForm("/register", url.Values{
		"username": {"newbie"},
		"password": {"secret1"},
		"email":    {"n@example.com"},
		"name":     {"New User"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "msg=")
}

func TestRegister_InvalidEmail(t *testing.T) {
	env := setup(t)

	w := env.postForm("/register", url.Values{
		"username": {"newbie"},
		"password": {"secret1"},
		"email":    {"not-an-email"},
		"name":     {"New User"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "err=")
	env.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestLogout(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Logout(mock.Anything).Return(nil)

	w := env.postForm("/logout", nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

// Booking flow.

func TestBookTour_AnonymousRedirectsWithoutBackendCall(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(anonSession())

	w := env.postForm("/tours/1/book", nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?login=1", w.Header().Get("Location"))
	env.tours.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	env.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookTour_Success(t *testing.T) {
	env := setup(t)

	tour := &domain.Tour{ID: 3, Title: "Beach week", Destination: "Antalya", Available: true}
	booking := &domain.Booking{ID: 42, TourID: 3, UserID: 7, Status: domain.BookingStatusPending}

	env.sessions.EXPECT().Current().Return(userSession())
	env.tours.EXPECT().Get(mock.Anything, "user-tok", int64(3)).Return(tour, nil)
	env.bookings.EXPECT().Create(mock.Anything, "user-tok", mock.MatchedBy(func(in domain.BookingInput) bool {
		return in.TourID == 3 && in.UserID == 7 && in.ParticipantsCount == 1 &&
			in.ContactEmail == "alice@example.com"
	})).Return(booking, nil)
	env.notifier.EXPECT().BookingCreated(mock.Anything, tour, booking).Return()

	w := env.postForm("/tours/3/book", nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "msg=")

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookTour_UnavailableTour(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(userSession())
	env.tours.EXPECT().Get(mock.Anything, "user-tok", int64(3)).
		Return(&domain.Tour{ID: 3, Title: "Sold out", Available: false}, nil)

	w := env.postForm("/tours/3/book", nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "err=")
	env.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookTour_BackendFailureKeepsNotifierQuiet(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(userSession())
	env.tours.EXPECT().Get(mock.Anything, "user-tok", int64(3)).
		Return(&domain.Tour{ID: 3, Title: "Beach week", Available: true}, nil)
	env.bookings.EXPECT().Create(mock.Anything, "user-tok", mock.Anything).
		Return(nil, domain.ErrTimeout)

	w := env.postForm("/tours/3/book", nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), url.QueryEscape("timed out"))
	env.notifier.AssertNotCalled(t, "BookingCreated", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBooking(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(userSession())
	env.bookings.EXPECT().Cancel(mock.Anything, "user-tok", int64(8)).Return(nil)
	env.notifier.EXPECT().BookingCancelled(mock.Anything, int64(8)).Return()

	w := env.postForm("/bookings/8/cancel", nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/bookings?msg=")

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestConfirmBooking(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(userSession())
	env.bookings.EXPECT().Confirm(mock.Anything, "user-tok", int64(8)).Return(nil)
	env.notifier.EXPECT().BookingConfirmed(mock.Anything, int64(8)).Return()

	w := env.postForm("/bookings/8/confirm", nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/bookings?msg=")

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestConfirmBooking_AnonymousRedirects(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(anonSession())

	w := env.postForm("/bookings/8/confirm", nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?login=1", w.Header().Get("Location"))
	env.bookings.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything)
}

// Tour management.

func TestCreateTour_AdminSuccess(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(adminSession())
	env.tours.EXPECT().Create(mock.Anything, "admin-tok", mock.MatchedBy(func(in domain.TourInput) bool {
		return in.Title == "New tour" && in.Destination == "Oslo" &&
			in.Price == 1500.50 && in.DurationDays == 5 && in.Available &&
			len(in.Features) == 2
	})).Return(&domain.Tour{ID: 11, Title: "New tour"}, nil)

	w := env.postForm("/tours", url.Values{
		"title":         {"New tour"},
		"destination":   {"Oslo"},
		"price":         {"1500.50"},
		"duration_days": {"5"},
		"features":      {"Guide, Breakfast"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "msg=")
}

func TestCreateTour_RejectsNonAdmin(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(userSession())

	w := env.postForm("/tours", url.Values{
		"title":         {"New tour"},
		"destination":   {"Oslo"},
		"price":         {"1500"},
		"duration_days": {"5"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "err=")
	env.tours.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTour_InvalidPrice(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(adminSession())

	w := env.postForm("/tours", url.Values{
		"title":         {"New tour"},
		"destination":   {"Oslo"},
		"price":         {"-5"},
		"duration_days": {"5"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "err=")
	env.tours.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTour(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(adminSession())
	env.tours.EXPECT().Update(mock.Anything, "admin-tok", int64(5), mock.Anything).
		Return(&domain.Tour{ID: 5, Title: "Updated"}, nil)

	w := env.postForm("/tours/5", url.Values{
		"title":         {"Updated"},
		"destination":   {"Rome"},
		"price":         {"900"},
		"duration_days": {"3"},
	})

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "msg=")
}

func TestDeleteTour(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(adminSession())
	env.tours.EXPECT().Delete(mock.Anything, "admin-tok", int64(5)).Return(nil)

	w := env.postForm("/tours/5/delete", nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "msg=")
}

func TestDeleteUser(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(adminSession())
	env.auth.EXPECT().DeleteUser(mock.Anything, "admin-tok", int64(4)).Return(nil)

	w := env.postForm("/admin/users/4/delete", nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/admin/users?msg=")
}

func TestDeleteUser_RejectsNonAdmin(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(userSession())

	w := env.postForm("/admin/users/4/delete", nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	env.auth.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateSampleTour(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(adminSession())
	env.tours.EXPECT().Create(mock.Anything, "admin-tok", mock.MatchedBy(func(in domain.TourInput) bool {
		return in.Destination == "Antalya" && in.Available
	})).Return(&domain.Tour{ID: 20}, nil)

	w := env.postForm("/debug/sample-tour", nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "msg=")
}

func TestBookTour_InvalidID(t *testing.T) {
	env := setup(t)
	env.sessions.EXPECT().Current().Return(userSession())

	w := env.postForm("/tours/abc/book", nil)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "err=")
	env.tours.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}
