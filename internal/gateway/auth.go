package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Tixoni/tourportal/internal/domain"
)

type AuthGateway struct {
	client   *Client
	timeouts Timeouts
}

func NewAuthGateway(client *Client, timeouts Timeouts) *AuthGateway {
	return &AuthGateway{client: client, timeouts: timeouts}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (g *AuthGateway) Login(ctx context.Context, username, password string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeouts.Mutation)
	defer cancel()

	var resp loginResponse
	err := g.client.doJSON(ctx, http.MethodPost, "/api/auth/login", nil, "", loginRequest{
		Username: username,
		Password: password,
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("login: response carries no access_token")
	}

	return resp.AccessToken, nil
}

func (g *AuthGateway) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeouts.Mutation)
	defer cancel()

	var user domain.User
	if err := g.client.doJSON(ctx, http.MethodPost, "/api/auth/users", nil, "", input, &user); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	return &user, nil
}

// Me резолвит личность по токену. Таймаут самый жесткий: вызов
// блокирует первый рендер при старте.
func (g *AuthGateway) Me(ctx context.Context, token string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeouts.Identity)
	defer cancel()

	var user domain.User
	if err := g.client.doJSON(ctx, http.MethodGet, "/api/auth/users/me", nil, token, nil, &user); err != nil {
		return nil, fmt.Errorf("resolve identity: %w", err)
	}

	return &user, nil
}

func (g *AuthGateway) ListUsers(ctx context.Context, token string) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeouts.List)
	defer cancel()

	var users []domain.User
	if err := g.client.doJSON(ctx, http.MethodGet, "/api/auth/users", nil, token, nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (g *AuthGateway) DeleteUser(ctx context.Context, token string, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeouts.Mutation)
	defer cancel()

	path := fmt.Sprintf("/api/auth/users/%d", id)
	if err := g.client.doJSON(ctx, http.MethodDelete, path, nil, token, nil, nil); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	return nil
}
