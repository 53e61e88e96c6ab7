package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"textlens/internal/domain/identity"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func testProfile() identity.Profile {
	return identity.Profile{ID: "42", DisplayName: "Ada", Email: "ada@example.com"}
}

func TestCreateGetDestroy(t *testing.T) {
	m := NewManager("secret", time.Hour, false, nil)

	id := m.Create(testProfile())
	p, ok := m.Get(id)
	if !ok || p.DisplayName != "Ada" {
		t.Fatalf("expected session for Ada, got ok=%v p=%+v", ok, p)
	}

	m.Destroy(id)
	if _, ok := m.Get(id); ok {
		t.Fatalf("session still resolvable after destroy")
	}
	m.Destroy(id) // no-op
}

func TestExpiredSessionIsDropped(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	m := NewManager("secret", time.Hour, false, clock)

	id := m.Create(testProfile())
	clock.t = clock.t.Add(2 * time.Hour)

	if _, ok := m.Get(id); ok {
		t.Fatalf("expired session should not resolve")
	}
}

func TestCookieRoundTrip(t *testing.T) {
	m := NewManager("secret", time.Hour, false, nil)
	id := m.Create(testProfile())

	w := httptest.NewRecorder()
	m.SetCookie(w, id)

	req := httptest.NewRequest("GET", "/profile", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}

	p, gotID, ok := m.FromRequest(req)
	if !ok || gotID != id || p.Email != "ada@example.com" {
		t.Fatalf("cookie round trip failed: ok=%v id=%q p=%+v", ok, gotID, p)
	}
}

func TestForgedCookieRejected(t *testing.T) {
	m := NewManager("secret", time.Hour, false, nil)
	id := m.Create(testProfile())

	req := httptest.NewRequest("GET", "/profile", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: id + ".deadbeef"})

	if _, _, ok := m.FromRequest(req); ok {
		t.Fatalf("forged signature accepted")
	}
}

func TestClearCookieExpiresClientCookie(t *testing.T) {
	m := NewManager("secret", time.Hour, false, nil)

	w := httptest.NewRecorder()
	m.ClearCookie(w)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("unexpected cookies: %+v", cookies)
	}
	if cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expiring cookie, MaxAge=%d", cookies[0].MaxAge)
	}
}

func TestPurgeRemovesOnlyExpired(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	m := NewManager("secret", time.Hour, false, clock)

	old := m.Create(testProfile())
	clock.t = clock.t.Add(30 * time.Minute)
	fresh := m.Create(testProfile())
	clock.t = clock.t.Add(45 * time.Minute)

	m.purge()

	if _, ok := m.Get(old); ok {
		t.Fatalf("expired session survived purge")
	}
	if _, ok := m.Get(fresh); !ok {
		t.Fatalf("live session removed by purge")
	}
}
