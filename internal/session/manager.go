// Package session владеет жизненным циклом токена и производной от него
// сессией. Все состояние за одним Manager, токен и сессия меняются под
// общим локом.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/Tixoni/tourportal/internal/domain"
	"github.com/Tixoni/tourportal/internal/tokenstore"
	"github.com/wb-go/wbf/logger"
)

// IdentityClient резолвит bearer-токен в аккаунт.
type IdentityClient interface {
	Me(ctx context.Context, token string) (*domain.User, error)
}

type Manager struct {
	store     tokenstore.Store
	identity  IdentityClient
	allowlist map[string]struct{}
	log       logger.Logger

	mu          sync.Mutex
	current     domain.Session
	subscribers []func(domain.Session)
}

func NewManager(store tokenstore.Store, identity IdentityClient, adminAllowlist []string, log logger.Logger) *Manager {
	allowlist := make(map[string]struct{}, len(adminAllowlist))
	for _, username := range adminAllowlist {
		allowlist[username] = struct{}{}
	}

	return &Manager{
		store:     store,
		identity:  identity,
		allowlist: allowlist,
		log:       log,
		current:   domain.Session{State: domain.SessionAnonymous},
	}
}

// Subscribe регистрирует хук переходов. Хуки зовутся вне лока, после
// фиксации перехода.
func (m *Manager) Subscribe(fn func(domain.Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

// Current возвращает снимок, пользователь копируется.
func (m *Manager) Current() domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.current
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// Restore выводит менеджер из начального состояния: anonymous без
// сохраненного токена, иначе resolving -> authenticated.
func (m *Manager) Restore(ctx context.Context) error {
	token, err := m.store.Load()
	if err != nil {
		return fmt.Errorf("load stored token: %w", err)
	}
	if token == "" {
		m.transition(domain.Session{State: domain.SessionAnonymous})
		return nil
	}

	m.transition(domain.Session{State: domain.SessionResolving, Token: token})
	return m.resolve(ctx, token)
}

// SetToken сохраняет свежий токен и резолвит личность. Неудачная
// резолюция снова стирает токен.
func (m *Manager) SetToken(ctx context.Context, token string) error {
	m.mu.Lock()
	if err := m.store.Save(token); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("persist token: %w", err)
	}
	m.current = domain.Session{State: domain.SessionResolving, Token: token}
	m.notifyLocked()

	return m.resolve(ctx, token)
}

// resolve ждет, что переход в resolving уже зафиксирован и лок отпущен.
// Результат применяется только если токен не сменился: устаревшая
// резолюция отбрасывается, побеждает последний переход.
func (m *Manager) resolve(ctx context.Context, token string) error {
	user, err := m.identity.Me(ctx, token)
	if err != nil {
		m.mu.Lock()
		if m.current.State != domain.SessionResolving || m.current.Token != token {
			// 401 уже сбросил сессию через хук гейтвея до возврата Me.
			m.mu.Unlock()
			return fmt.Errorf("resolve session: %w", err)
		}
		if clearErr := m.store.Clear(); clearErr != nil {
			m.log.Error("failed to clear token after resolve failure",
				logger.String("error", clearErr.Error()),
			)
		}
		m.current = domain.Session{State: domain.SessionAnonymous}
		m.notifyLocked()
		return fmt.Errorf("resolve session: %w", err)
	}

	state := domain.SessionAuthenticated
	if _, ok := m.allowlist[user.Username]; ok {
		state = domain.SessionAuthenticatedAdmin
	}

	m.mu.Lock()
	if m.current.State != domain.SessionResolving || m.current.Token != token {
		m.mu.Unlock()
		return nil
	}
	m.current = domain.Session{State: state, Token: token, User: user}
	m.log.Info("session resolved",
		logger.String("username", user.Username),
		logger.String("state", string(state)),
	)
	m.notifyLocked()

	return nil
}

// Refresh перепроверяет личность аутентифицированной сессии. Сессию
// роняет только 401, сетевой сбой текущее состояние не трогает.
func (m *Manager) Refresh(ctx context.Context) error {
	s := m.Current()
	if !s.IsAuthenticated() {
		return nil
	}

	user, err := m.identity.Me(ctx, s.Token)
	if err != nil {
		// 401 уже сбросил сессию через хук гейтвея.
		return fmt.Errorf("refresh session: %w", err)
	}

	state := domain.SessionAuthenticated
	if _, ok := m.allowlist[user.Username]; ok {
		state = domain.SessionAuthenticatedAdmin
	}

	m.mu.Lock()
	if m.current.Token != s.Token || !m.current.IsAuthenticated() {
		m.mu.Unlock()
		return nil
	}
	m.current = domain.Session{State: state, Token: s.Token, User: user}
	m.notifyLocked()

	return nil
}

// Invalidate реализует глобальную реакцию на 401: любой вызов гейтвея,
// получивший unauthorized, роняет всю сессию.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	if m.current.State == domain.SessionAnonymous {
		m.mu.Unlock()
		return
	}
	m.clearLocked("session invalidated by backend")
}

func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.clearLocked("logged out")
	return nil
}

// clearLocked стирает токен и пользователя одним переходом. Принимает
// захваченный лок и отпускает его через notifyLocked.
func (m *Manager) clearLocked(reason string) {
	if err := m.store.Clear(); err != nil {
		m.log.Error("failed to clear stored token",
			logger.String("error", err.Error()),
		)
	}
	m.current = domain.Session{State: domain.SessionAnonymous}
	m.log.Info(reason)
	m.notifyLocked()
}

func (m *Manager) transition(s domain.Session) {
	m.mu.Lock()
	m.current = s
	m.notifyLocked()
}

// notifyLocked отпускает лок и зовет подписчиков с зафиксированным
// снимком, поэтому хуки могут обращаться к менеджеру.
func (m *Manager) notifyLocked() {
	s := m.current
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	subs := make([]func(domain.Session), len(m.subscribers))
	copy(subs, m.subscribers)
	m.mu.Unlock()

	for _, fn := range subs {
		fn(s)
	}
}
