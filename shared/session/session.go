// Package session keeps per-visitor page state between requests. A cookie
// carries an opaque handle; everything else stays in the process.
package session

import (
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"latina/config"
	"latina/shared/constant"
)

const DefaultTTL = 30 * time.Minute

type Session struct {
	ID string

	mu          sync.Mutex
	introShown  bool
	lastSeen    time.Time
	attachments map[string]io.Closer
}

// ConsumeIntro reports whether the intro overlay should play, and marks it
// as played. It returns true once per session.
func (s *Session) ConsumeIntro() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.introShown {
		return false
	}

	s.introShown = true

	return true
}

// Attachment returns the value stored under key.
func (s *Session) Attachment(key string) (io.Closer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.attachments[key]

	return value, ok
}

// Attach stores value under key, closing whatever was there before. The
// value is closed when the session is torn down.
func (s *Session) Attach(key string, value io.Closer) {
	s.mu.Lock()
	previous, ok := s.attachments[key]
	s.attachments[key] = value
	s.mu.Unlock()

	if ok && previous != value {
		closeQuietly(key, previous)
	}
}

func (s *Session) close() {
	s.mu.Lock()
	attachments := s.attachments
	s.attachments = map[string]io.Closer{}
	s.mu.Unlock()

	for key, value := range attachments {
		closeQuietly(key, value)
	}
}

// Registry owns every live session. Sessions idle for longer than the TTL
// are torn down the next time the registry is touched.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	secure   bool
	now      func() time.Time
}

type Option func(*Registry)

func WithTTL(ttl time.Duration) Option {
	return func(r *Registry) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// WithSecureCookie marks the session cookie Secure.
func WithSecureCookie(secure bool) Option {
	return func(r *Registry) {
		r.secure = secure
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

func NewRegistry(opts ...Option) *Registry {
	registry := &Registry{
		sessions: make(map[string]*Session),
		ttl:      DefaultTTL,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(registry)
	}

	return registry
}

// Init returns the session named by the request cookie, or starts a new one
// and sets its cookie on w.
func (r *Registry) Init(w http.ResponseWriter, req *http.Request) *Session {
	r.mu.Lock()

	now := r.now()
	expired := r.sweep(now)

	var current *Session
	if cookie, err := req.Cookie(constant.CookieSession); err == nil {
		current = r.sessions[cookie.Value]
	}

	fresh := current == nil
	if fresh {
		current = &Session{
			ID:          uuid.NewString(),
			attachments: map[string]io.Closer{},
		}
		r.sessions[current.ID] = current
	}

	current.mu.Lock()
	current.lastSeen = now
	current.mu.Unlock()

	r.mu.Unlock()

	for _, s := range expired {
		s.close()
	}

	if fresh {
		http.SetCookie(w, &http.Cookie{
			Name:     constant.CookieSession,
			Value:    current.ID,
			Path:     "/",
			MaxAge:   int(r.ttl.Seconds()),
			HttpOnly: true,
			Secure:   r.secure,
			SameSite: http.SameSiteLaxMode,
		})
	}

	return current
}

// Teardown ends the session id and closes its attachments.
func (r *Registry) Teardown(id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		s.close()
	}
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Close tears down every session.
func (r *Registry) Close() error {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}

	return nil
}

// sweep removes expired sessions and returns them so they can be closed
// outside the registry lock.
func (r *Registry) sweep(now time.Time) []*Session {
	var expired []*Session

	for id, s := range r.sessions {
		s.mu.Lock()
		idle := now.Sub(s.lastSeen)
		s.mu.Unlock()

		if idle > r.ttl {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}

	return expired
}

func closeQuietly(key string, value io.Closer) {
	if err := value.Close(); err != nil {
		log.Error().Err(err).Str("attachment", key).Msg("failed to close session attachment")
	}
}

// New builds the registry from configuration. Cookies are marked Secure in
// production.
func New(cfg *config.Config) *Registry {
	return NewRegistry(
		WithTTL(time.Duration(cfg.App.Intro.SessionTTLMins)*time.Minute),
		WithSecureCookie(cfg.Server.Env == constant.ServerEnvProduction),
	)
}
