package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ToursPage(c *ginext.Context)
	BookingsPage(c *ginext.Context)
	UsersPage(c *ginext.Context)
	EditTourPage(c *ginext.Context)
	Login(c *ginext.Context)
	Register(c *ginext.Context)
	Logout(c *ginext.Context)
	BookTour(c *ginext.Context)
	CreateTour(c *ginext.Context)
	UpdateTour(c *ginext.Context)
	DeleteTour(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	DeleteUser(c *ginext.Context)
	CreateSampleTour(c *ginext.Context)
}

func InitRouter(mode string, h Handler, debugTools bool, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	// Pages
	router.GET("/", h.ToursPage)
	router.GET("/bookings", h.BookingsPage)
	router.GET("/admin/users", h.UsersPage)
	router.GET("/tours/:id/edit", h.EditTourPage)

	// Auth
	router.POST("/login", h.Login)
	router.POST("/register", h.Register)
	router.POST("/logout", h.Logout)

	// Tours
	router.POST("/tours", h.CreateTour)
	router.POST("/tours/:id", h.UpdateTour)
	router.POST("/tours/:id/delete", h.DeleteTour)
	router.POST("/tours/:id/book", h.BookTour)

	// Bookings
	router.POST("/bookings/:id/cancel", h.CancelBooking)
	router.POST("/bookings/:id/confirm", h.ConfirmBooking)

	// Admin
	router.POST("/admin/users/:id/delete", h.DeleteUser)

	if debugTools {
		router.POST("/debug/sample-tour", h.CreateSampleTour)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.Static("/static", "web/static")

	return router
}
