package app

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"hotel_console/internal/domain"
)

// LoginPath is the view anonymous operators are sent to.
const LoginPath = "/auth/login"

type SessionState string

const (
	SessionLoading       SessionState = "loading"
	SessionAuthenticated SessionState = "authenticated"
	SessionAnonymous     SessionState = "anonymous"
)

// Session owns the operator identity and bearer token, mirrored into a KV so
// they survive restarts.
type Session struct {
	auth   domain.AuthAPI
	kv     domain.KV
	notify domain.Notifier
	nav    domain.Navigator
	now    func() time.Time

	mu    sync.RWMutex
	state SessionState
	user  *domain.Identity
	token string
}

func NewSession(auth domain.AuthAPI, kv domain.KV, n domain.Notifier, nav domain.Navigator) *Session {
	return &Session{auth: auth, kv: kv, notify: n, nav: nav, now: time.Now, state: SessionLoading}
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Session) User() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token is the bearer credential for outbound calls, "" when anonymous.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Restore loads persisted state. A missing or unreadable identity, or an
// expired JWT, leaves the session anonymous.
func (s *Session) Restore(ctx context.Context) {
	s.setState(SessionLoading)

	user, token, err := s.readPersisted(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("persisted session unreadable")
	}
	if user == nil {
		s.becomeAnonymous()
		return
	}
	if expired(token, s.now()) {
		log.Info().Str("user", user.Username).Msg("persisted token expired")
		if err := s.kv.Del(ctx, domain.KeyToken, domain.KeyUser); err != nil {
			log.Warn().Err(err).Msg("clear expired session")
		}
		s.becomeAnonymous()
		return
	}

	s.mu.Lock()
	s.user, s.token, s.state = user, token, SessionAuthenticated
	s.mu.Unlock()
	log.Debug().Str("user", user.Username).Msg("session restored")
}

func (s *Session) readPersisted(ctx context.Context) (*domain.Identity, string, error) {
	raw, ok, err := s.kv.Get(ctx, domain.KeyUser)
	if err != nil || !ok {
		return nil, "", err
	}
	var u domain.Identity
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, "", err
	}
	token, _, err := s.kv.Get(ctx, domain.KeyToken)
	if err != nil {
		return nil, "", err
	}
	return &u, token, nil
}

// Login exchanges credentials for a token. Failures are notified and leave
// the session anonymous; the caller only gets the boolean.
func (s *Session) Login(ctx context.Context, email, password string) bool {
	s.setState(SessionLoading)

	resp, err := s.auth.Login(ctx, email, password)
	if err == nil {
		err = s.persist(ctx, resp)
	}
	if err != nil {
		s.becomeAnonymous()
		log.Warn().Err(err).Str("email", email).Msg("login failed")
		if s.notify != nil {
			s.notify.Error("Login failed: " + err.Error())
		}
		return false
	}

	s.mu.Lock()
	s.user, s.token, s.state = resp.User, resp.AccessToken, SessionAuthenticated
	s.mu.Unlock()
	log.Info().Str("user", resp.User.Username).Msg("logged in")
	if s.notify != nil {
		s.notify.Success("Logged in successfully.")
	}
	return true
}

func (s *Session) persist(ctx context.Context, resp domain.LoginResponse) error {
	if resp.User == nil {
		return errors.New("login response has no user")
	}
	raw, err := json.Marshal(resp.User)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, domain.KeyToken, resp.AccessToken); err != nil {
		return err
	}
	if err := s.kv.Set(ctx, domain.KeyUser, string(raw)); err != nil {
		// a token without its user must not survive into the next restore
		if derr := s.kv.Del(ctx, domain.KeyToken, domain.KeyUser); derr != nil {
			log.Warn().Err(derr).Msg("clear partial session")
		}
		return err
	}
	return nil
}

// Logout forgets the operator locally and sends them to the login view.
func (s *Session) Logout(ctx context.Context) {
	if err := s.kv.Del(ctx, domain.KeyToken, domain.KeyUser); err != nil {
		log.Warn().Err(err).Msg("clear persisted session")
	}
	s.becomeAnonymous()
	log.Info().Msg("logged out")
	if s.nav != nil {
		s.nav.Navigate(LoginPath)
	}
}

func (s *Session) setState(st SessionState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

func (s *Session) becomeAnonymous() {
	s.mu.Lock()
	s.user, s.token, s.state = nil, "", SessionAnonymous
	s.mu.Unlock()
}

// expired reports whether token is a JWT past its exp claim. Opaque tokens
// and JWTs without exp are never considered expired here.
func expired(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}

type ViewDecision int

const (
	ViewPending ViewDecision = iota
	ViewRender
	ViewRedirect
)

func (d ViewDecision) String() string {
	switch d {
	case ViewRender:
		return "render"
	case ViewRedirect:
		return "redirect"
	default:
		return "pending"
	}
}

// Guard decides what a protected view shows. It redirects to LoginPath at
// most once per anonymous period and never while the session is loading.
type Guard struct {
	session *Session
	nav     domain.Navigator

	mu         sync.Mutex
	redirected bool
}

func NewGuard(s *Session, nav domain.Navigator) *Guard {
	return &Guard{session: s, nav: nav}
}

func (g *Guard) Evaluate() ViewDecision {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.session.State() {
	case SessionAuthenticated:
		g.redirected = false
		return ViewRender
	case SessionAnonymous:
		if !g.redirected {
			g.redirected = true
			if g.nav != nil {
				g.nav.Navigate(LoginPath)
			}
		}
		return ViewRedirect
	default:
		return ViewPending
	}
}
