package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Tixoni/tourportal/internal/domain"
)

type BookingsGateway struct {
	client   *Client
	timeouts Timeouts
}

func NewBookingsGateway(client *Client, timeouts Timeouts) *BookingsGateway {
	return &BookingsGateway{client: client, timeouts: timeouts}
}

// Create атомарен с точки зрения портала: либо бронь создана, либо нет.
func (g *BookingsGateway) Create(ctx context.Context, token string, input domain.BookingInput) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeouts.BookingCreate)
	defer cancel()

	var booking domain.Booking
	if err := g.client.doJSON(ctx, http.MethodPost, "/api/bookings/bookings", nil, token, input, &booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	return &booking, nil
}

func (g *BookingsGateway) ListByUser(ctx context.Context, token string, userID int64) ([]domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeouts.List)
	defer cancel()

	var bookings []domain.Booking
	path := fmt.Sprintf("/api/bookings/bookings/user/%d", userID)
	if err := g.client.doJSON(ctx, http.MethodGet, path, nil, token, nil, &bookings); err != nil {
		return nil, fmt.Errorf("list bookings for user %d: %w", userID, err)
	}

	return bookings, nil
}

func (g *BookingsGateway) Cancel(ctx context.Context, token string, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeouts.Mutation)
	defer cancel()

	path := fmt.Sprintf("/api/bookings/bookings/%d/cancel", id)
	if err := g.client.doJSON(ctx, http.MethodPut, path, nil, token, nil, nil); err != nil {
		return fmt.Errorf("cancel booking %d: %w", id, err)
	}

	return nil
}

func (g *BookingsGateway) Confirm(ctx context.Context, token string, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeouts.Mutation)
	defer cancel()

	path := fmt.Sprintf("/api/bookings/bookings/%d/confirm", id)
	if err := g.client.doJSON(ctx, http.MethodPost, path, nil, token, nil, nil); err != nil {
		return fmt.Errorf("confirm booking %d: %w", id, err)
	}

	return nil
}
