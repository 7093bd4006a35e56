package view

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/Tixoni/tourportal/internal/authz"
	"github.com/Tixoni/tourportal/internal/domain"
)

// Модели представления держат чистые данные: все решения о возможностях
// принимаются в authz до запуска шаблона, в разметке политики нет.

type TourCard struct {
	Tour      domain.Tour
	CanBook   bool
	CanEdit   bool
	CanDelete bool
}

func TourCards(tours []domain.Tour, caps authz.Capabilities) []TourCard {
	cards := make([]TourCard, 0, len(tours))
	for _, t := range tours {
		cards = append(cards, TourCard{
			Tour:      t,
			CanBook:   authz.CanBookTour(caps, t),
			CanEdit:   caps.CanEditTours,
			CanDelete: caps.CanDeleteTours,
		})
	}
	return cards
}

type BookingCard struct {
	Booking     domain.Booking
	TourDeleted bool
	CanConfirm  bool
	CanCancel   bool
	TravelDate  string
	StatusText  string
	PaymentText string
}

func NewBookingCard(b domain.Booking) BookingCard {
	return BookingCard{
		Booking:     b,
		TourDeleted: b.TourInfo == nil,
		CanConfirm:  authz.CanConfirmBooking(b),
		CanCancel:   authz.CanCancelBooking(b),
		TravelDate:  b.TravelDate.Format("02.01.2006"),
		StatusText:  statusText(b.Status),
		PaymentText: paymentText(b.PaymentStatus),
	}
}

type BookingGroups struct {
	Active    []BookingCard
	Cancelled []BookingCard
	Empty     bool
}

// GroupBookings разносит текущие и отмененные брони по секциям,
// отмененные в конце.
func GroupBookings(bookings []domain.Booking) BookingGroups {
	var groups BookingGroups
	for _, b := range bookings {
		card := NewBookingCard(b)
		if b.Status == domain.BookingStatusCancelled {
			groups.Cancelled = append(groups.Cancelled, card)
		} else {
			groups.Active = append(groups.Active, card)
		}
	}
	groups.Empty = len(bookings) == 0
	return groups
}

type UserCard struct {
	User       domain.User
	CanDelete  bool
	Registered string
}

func UserCards(users []domain.User, caps authz.Capabilities) []UserCard {
	cards := make([]UserCard, 0, len(users))
	for _, u := range users {
		cards = append(cards, UserCard{
			User:       u,
			CanDelete:  caps.CanManageUsers,
			Registered: u.CreatedAt.Format("02.01.2006"),
		})
	}
	return cards
}

// TourFormData управляет админской формой тура. Tour равен nil при создании.
type TourFormData struct {
	Heading     string
	Action      string
	Submit      string
	Tour        *domain.Tour
	FeaturesCSV string
}

func NewCreateTourForm() *TourFormData {
	return &TourFormData{
		Heading: "Create a new tour",
		Action:  "/tours",
		Submit:  "Create tour",
	}
}

func NewEditTourForm(t *domain.Tour) *TourFormData {
	return &TourFormData{
		Heading:     "Edit tour",
		Action:      fmt.Sprintf("/tours/%d", t.ID),
		Submit:      "Update tour",
		Tour:        t,
		FeaturesCSV: strings.Join(t.Features, ", "),
	}
}

type Flash struct {
	Message string
	Error   string
}

type Page struct {
	Title             string
	ActiveTab         string
	Username          string
	Authenticated     bool
	Admin             bool
	CanManageUsers    bool
	ShowLoginModal    bool
	DebugTools        bool
	FilterDestination string
	Flash             Flash
	Content           template.HTML
	TourForm          *TourFormData
}

func statusText(s domain.BookingStatus) string {
	switch s {
	case domain.BookingStatusPending:
		return "Awaiting confirmation"
	case domain.BookingStatusConfirmed:
		return "Confirmed"
	case domain.BookingStatusCancelled:
		return "Cancelled"
	case domain.BookingStatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

func paymentText(s domain.PaymentStatus) string {
	switch s {
	case domain.PaymentStatusPending:
		return "Awaiting payment"
	case domain.PaymentStatusPaid:
		return "Paid"
	case domain.PaymentStatusRefunded:
		return "Refunded"
	default:
		return string(s)
	}
}
