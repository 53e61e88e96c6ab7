package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"textlens/internal/application"
	"textlens/internal/domain/identity"
)

const CookieName = "textlens_session"

// Manager keeps login sessions in process memory, mirroring the history
// store's non-durable lifecycle. Cookie values are "<id>.<hmac>" so a
// forged id without the session secret never resolves to a session.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]entry

	secret []byte
	ttl    time.Duration
	prod   bool
	clock  application.Clock
	cron   *cron.Cron
}

type entry struct {
	profile   identity.Profile
	expiresAt time.Time
}

func NewManager(secret string, ttl time.Duration, prod bool, clock application.Clock) *Manager {
	if clock == nil {
		clock = application.SystemClock{}
	}
	return &Manager{
		sessions: make(map[string]entry),
		secret:   []byte(secret),
		ttl:      ttl,
		prod:     prod,
		clock:    clock,
	}
}

// Create opens a session for the profile and returns its id.
func (m *Manager) Create(p identity.Profile) string {
	id := uuid.NewString()
	m.mu.Lock()
	m.sessions[id] = entry{profile: p, expiresAt: m.clock.Now().Add(m.ttl)}
	m.mu.Unlock()
	return id
}

// Get resolves a session id to its profile. Expired sessions are
// dropped on access.
func (m *Manager) Get(id string) (identity.Profile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.sessions[id]
	if !ok {
		return identity.Profile{}, false
	}
	if m.clock.Now().After(e.expiresAt) {
		delete(m.sessions, id)
		return identity.Profile{}, false
	}
	return e.profile, true
}

// Destroy forgets the session; unknown ids are a no-op.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// SetCookie writes the signed session cookie. Secure and SameSite=None
// in production (cross-site frontend over HTTPS), Lax otherwise.
func (m *Manager) SetCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id + "." + m.sign(id),
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		HttpOnly: true,
		Secure:   m.prod,
		SameSite: m.sameSite(),
	})
}

// ClearCookie expires the session cookie on the client.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.prod,
		SameSite: m.sameSite(),
	})
}

// FromRequest verifies the cookie signature and resolves the session.
func (m *Manager) FromRequest(r *http.Request) (identity.Profile, string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return identity.Profile{}, "", false
	}
	id, sig, ok := strings.Cut(c.Value, ".")
	if !ok || !hmac.Equal([]byte(sig), []byte(m.sign(id))) {
		return identity.Profile{}, "", false
	}
	p, ok := m.Get(id)
	if !ok {
		return identity.Profile{}, "", false
	}
	return p, id, true
}

// StartJanitor schedules an hourly sweep of expired sessions.
func (m *Manager) StartJanitor() {
	m.cron = cron.New()
	m.cron.AddFunc("@every 1h", m.purge)
	m.cron.Start()
}

// Stop halts the janitor if it was started.
func (m *Manager) Stop() {
	if m.cron != nil {
		m.cron.Stop()
	}
}

func (m *Manager) purge() {
	now := m.clock.Now()
	m.mu.Lock()
	for id, e := range m.sessions {
		if now.After(e.expiresAt) {
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()
}

func (m *Manager) sign(id string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(id))
	return hex.EncodeToString(mac.Sum(nil))
}

func (m *Manager) sameSite() http.SameSite {
	if m.prod {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
