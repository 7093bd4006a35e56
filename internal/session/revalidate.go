package session

import (
	"context"
	"errors"
	"time"

	"github.com/Tixoni/tourportal/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sessionRefresher interface {
	Current() domain.Session
	Refresh(ctx context.Context) error
}

// Revalidator периодически перепроверяет личность за сессией, чтобы
// отзыв токена на сервере был замечен без действий пользователя.
type Revalidator struct {
	manager  sessionRefresher
	interval time.Duration
	logger   logger.Logger
}

func NewRevalidator(manager sessionRefresher, interval time.Duration, logger logger.Logger) *Revalidator {
	return &Revalidator{
		manager:  manager,
		interval: interval,
		logger:   logger,
	}
}

func (r *Revalidator) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("session revalidator started",
		logger.Duration("interval", r.interval),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("session revalidator stopped")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Revalidator) tick(ctx context.Context) {
	if !r.manager.Current().IsAuthenticated() {
		return
	}

	if err := r.manager.Refresh(ctx); err != nil {
		if errors.Is(err, domain.ErrAuthExpired) {
			r.logger.Info("stored token rejected by backend, session dropped")
			return
		}
		r.logger.Error("session revalidation failed",
			logger.String("error", err.Error()),
		)
	}
}
