package nextredirect

import (
	"net/http"
	"sync"
)

// MutableCookies is a request-scoped jar of response cookies. Code below
// the boundary layer writes cookies here; when a redirect signal unwinds
// the stack, the boundary flushes the jar onto the redirect response so
// cookie writes made before the redirect are not lost.
//
// Setting a cookie whose name matches an existing entry replaces that
// entry in place. The jar is safe for use from multiple goroutines of the
// same request.
type MutableCookies struct {
	mu      sync.Mutex
	cookies []*http.Cookie
}

// NewMutableCookies returns an empty jar.
func NewMutableCookies() *MutableCookies {
	return &MutableCookies{}
}

// Set adds cookie to the jar, replacing any existing entry with the same
// name.
func (m *MutableCookies) Set(cookie *http.Cookie) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.cookies {
		if c.Name == cookie.Name {
			m.cookies[i] = cookie
			return
		}
	}
	m.cookies = append(m.cookies, cookie)
}

// Delete records an expired tombstone for name so the client drops the
// cookie when the response is written.
func (m *MutableCookies) Delete(name string) {
	m.Set(&http.Cookie{Name: name, MaxAge: -1})
}

// All returns a copy of the jar in insertion order, tombstones included.
func (m *MutableCookies) All() []*http.Cookie {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*http.Cookie, len(m.cookies))
	copy(out, m.cookies)
	return out
}

// Len reports the number of entries in the jar, tombstones included.
func (m *MutableCookies) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cookies)
}

// WriteTo serializes the jar as Set-Cookie headers on h. Entries that do
// not serialize to a valid cookie string are skipped.
func (m *MutableCookies) WriteTo(h http.Header) {
	for _, c := range m.All() {
		if v := c.String(); v != "" {
			h.Add("Set-Cookie", v)
		}
	}
}
