package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Tixoni/tourportal/internal/domain"
	"github.com/Tixoni/tourportal/internal/tokenstore"
	"github.com/wb-go/wbf/logger"
)

const maxResponseBytes = 1 << 20

// Timeouts ограничивает каждый вид запроса. Просроченный вызов
// обрывается с domain.ErrTimeout, его результат не применяется.
type Timeouts struct {
	Identity      time.Duration
	List          time.Duration
	BookingCreate time.Duration
	Mutation      time.Duration
}

func DefaultTimeouts() Timeouts {
	return Timeouts{
		Identity:      5 * time.Second,
		List:          10 * time.Second,
		BookingCreate: 15 * time.Second,
		Mutation:      10 * time.Second,
	}
}

// Client общий транспорт одного сервиса бэкенда. Каждый не-2xx ответ
// нормализуется в *domain.HTTPError; 401 дополнительно дергает хук,
// который сбрасывает всю сессию, а не только упавший вызов.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	onUnauthorized func()
	log            logger.Logger
}

func NewClient(baseURL string, onUnauthorized func(), log logger.Logger) *Client {
	return &Client{
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		httpClient:     &http.Client{},
		onUnauthorized: onUnauthorized,
		log:            log,
	}
}

type errorPayload struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, value := range tokenstore.AuthHeader(token) {
		req.Header.Set(name, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s %s", domain.ErrTimeout, method, path)
		}
		return fmt.Errorf("%w: %s %s: %v", domain.ErrNetwork, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		// дедлайн может сработать уже на чтении тела
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s %s", domain.ErrTimeout, method, path)
		}
		return fmt.Errorf("%w: read response: %v", domain.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := &domain.HTTPError{
			Status:  resp.StatusCode,
			Message: errorMessage(respBody, resp.StatusCode),
		}
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		c.log.LogAttrs(ctx, logger.WarnLevel, "backend call failed",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", resp.StatusCode),
		)
		return httpErr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("parse response for %s %s: %w", method, path, err)
	}

	return nil
}

// errorMessage достает detail из тела ошибки, иначе текст статуса.
func errorMessage(body []byte, status int) string {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			return payload.Detail
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return http.StatusText(status)
}
