package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Tixoni/tourportal/internal/domain"
)

type ToursGateway struct {
	client   *Client
	timeouts Timeouts
}

func NewToursGateway(client *Client, timeouts Timeouts) *ToursGateway {
	return &ToursGateway{client: client, timeouts: timeouts}
}

// List доступен анониму: каталог туров рендерится без сессии.
func (g *ToursGateway) List(ctx context.Context, destination string) ([]domain.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeouts.List)
	defer cancel()

	var query url.Values
	if destination != "" {
		query = url.Values{"destination": []string{destination}}
	}

	var tours []domain.Tour
	if err := g.client.doJSON(ctx, http.MethodGet, "/api/tours/tours", query, "", nil, &tours); err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}

	return tours, nil
}

func (g *ToursGateway) Get(ctx context.Context, token string, id int64) (*domain.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeouts.Mutation)
	defer cancel()

	var tour domain.Tour
	path := fmt.Sprintf("/api/tours/tours/%d", id)
	if err := g.client.doJSON(ctx, http.MethodGet, path, nil, token, nil, &tour); err != nil {
		return nil, fmt.Errorf("get tour %d: %w", id, err)
	}

	return &tour, nil
}

func (g *ToursGateway) Create(ctx context.Context, token string, input domain.TourInput) (*domain.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeouts.Mutation)
	defer cancel()

	var tour domain.Tour
	if err := g.client.doJSON(ctx, http.MethodPost, "/api/tours/tours", nil, token, input, &tour); err != nil {
		return nil, fmt.Errorf("create tour: %w", err)
	}

	return &tour, nil
}

func (g *ToursGateway) Update(ctx context.Context, token string, id int64, input domain.TourInput) (*domain.Tour, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeouts.Mutation)
	defer cancel()

	var tour domain.Tour
	path := fmt.Sprintf("/api/tours/tours/%d", id)
	if err := g.client.doJSON(ctx, http.MethodPut, path, nil, token, input, &tour); err != nil {
		return nil, fmt.Errorf("update tour %d: %w", id, err)
	}

	return &tour, nil
}

func (g *ToursGateway) Delete(ctx context.Context, token string, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeouts.Mutation)
	defer cancel()

	path := fmt.Sprintf("/api/tours/tours/%d", id)
	if err := g.client.doJSON(ctx, http.MethodDelete, path, nil, token, nil, nil); err != nil {
		return fmt.Errorf("delete tour %d: %w", id, err)
	}

	return nil
}
