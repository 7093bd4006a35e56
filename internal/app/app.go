package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Tixoni/tourportal/internal/config"
	"github.com/Tixoni/tourportal/internal/domain"
	"github.com/Tixoni/tourportal/internal/gateway"
	"github.com/Tixoni/tourportal/internal/handler"
	"github.com/Tixoni/tourportal/internal/middleware"
	"github.com/Tixoni/tourportal/internal/notification"
	"github.com/Tixoni/tourportal/internal/router"
	"github.com/Tixoni/tourportal/internal/session"
	"github.com/Tixoni/tourportal/internal/tokenstore"
	"github.com/Tixoni/tourportal/internal/view"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg         *config.Config
	log         logger.Logger
	sessions    *session.Manager
	revalidator *session.Revalidator
	httpServer  *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"TourPortal",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	tokenPath, err := resolveTokenPath(a.cfg.Session.TokenFile)
	if err != nil {
		return fmt.Errorf("resolve token path: %w", err)
	}
	store := tokenstore.NewFileStore(tokenPath)

	// Гейтвеи создаются раньше менеджера сессий, поэтому 401-хук
	// дергает его через замыкание.
	var manager *session.Manager
	onUnauthorized := func() {
		if manager != nil {
			manager.Invalidate()
		}
	}

	timeouts := gateway.Timeouts{
		Identity:      a.cfg.Backend.IdentityTimeout,
		List:          a.cfg.Backend.ListTimeout,
		BookingCreate: a.cfg.Backend.BookingCreateTimeout,
		Mutation:      a.cfg.Backend.MutationTimeout,
	}

	authGW := gateway.NewAuthGateway(
		gateway.NewClient(a.cfg.Backend.AuthURL, onUnauthorized, a.log), timeouts)
	toursGW := gateway.NewToursGateway(
		gateway.NewClient(a.cfg.Backend.ToursURL, onUnauthorized, a.log), timeouts)
	bookingsGW := gateway.NewBookingsGateway(
		gateway.NewClient(a.cfg.Backend.BookingsURL, onUnauthorized, a.log), timeouts)

	manager = session.NewManager(store, authGW, a.cfg.Session.AdminAllowlist, a.log)
	manager.Subscribe(a.warmupHook(toursGW))
	a.sessions = manager

	a.revalidator = session.NewRevalidator(
		manager,
		a.cfg.Session.RevalidateInterval,
		a.log,
	)

	n, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.ChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	h := handler.NewHandler(
		toursGW,
		bookingsGW,
		authGW,
		manager,
		n,
		view.MustNew(),
		a.cfg.Portal.DebugTools,
		a.log,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		a.cfg.Portal.DebugTools,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

// warmupHook прогревает соединение с каталогом после входа. Страницы всегда
// рендерятся по свежему ответу, так что прогрев только ради keep-alive.
func (a *App) warmupHook(tours *gateway.ToursGateway) func(domain.Session) {
	return func(s domain.Session) {
		if !s.IsAuthenticated() {
			return
		}
		go func() {
			if _, err := tours.List(context.Background(), ""); err != nil {
				a.log.LogAttrs(context.Background(), logger.DebugLevel, "catalog warmup failed",
					logger.String("error", err.Error()),
				)
			}
		}()
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.sessions.Restore(ctx); err != nil {
		// Портал остается анонимным, пользователь войдет заново.
		a.log.LogAttrs(ctx, logger.WarnLevel, "session restore failed",
			logger.String("error", err.Error()),
		)
	}

	go a.revalidator.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func resolveTokenPath(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "tourportal", "token.json"), nil
}
