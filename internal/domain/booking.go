package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// TourInfo хранит снимок тура внутри брони. nil означает, что тур
// удален; это ожидаемое состояние, не ошибка.
type TourInfo struct {
	Title       string `json:"title"`
	Destination string `json:"destination"`
}

type Booking struct {
	ID                int64         `json:"id"`
	UserID            int64         `json:"user_id"`
	TourID            int64         `json:"tour_id"`
	TravelDate        time.Time     `json:"travel_date"`
	ParticipantsCount int           `json:"participants_count"`
	TotalPrice        float64       `json:"total_price"`
	Status            BookingStatus `json:"status"`
	PaymentStatus     PaymentStatus `json:"payment_status"`
	SpecialRequests   string        `json:"special_requests"`
	ContactPhone      string        `json:"contact_phone"`
	ContactEmail      string        `json:"contact_email"`
	TourInfo          *TourInfo     `json:"tour_info"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

type BookingInput struct {
	UserID            int64     `json:"user_id"`
	TourID            int64     `json:"tour_id"`
	ParticipantsCount int       `json:"participants_count"`
	TravelDate        time.Time `json:"travel_date"`
	ContactPhone      string    `json:"contact_phone"`
	ContactEmail      string    `json:"contact_email"`
	SpecialRequests   *string   `json:"special_requests"`
}
