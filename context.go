package nextredirect

import "context"

type requestStoreContextKey struct{}
type actionStoreContextKey struct{}

// RequestStore is the per-request ambient state consulted at signal
// construction time. It owns the mutable cookie jar; signals constructed
// while the store is active carry a reference to the jar, never a copy.
type RequestStore struct {
	Cookies *MutableCookies
}

// NewRequestStore returns a store with an empty cookie jar.
func NewRequestStore() *RequestStore {
	return &RequestStore{Cookies: NewMutableCookies()}
}

// WithRequestStore attaches the request store to ctx. Boundary layers call
// this once per request before invoking the inner handler.
func WithRequestStore(ctx context.Context, store *RequestStore) context.Context {
	return context.WithValue(ctx, requestStoreContextKey{}, store)
}

// RequestStoreFromContext returns the ambient request store. Absence is
// not an error: a signal constructed outside a request simply carries no
// cookie reference.
func RequestStoreFromContext(ctx context.Context) (*RequestStore, bool) {
	if ctx == nil {
		return nil, false
	}
	store, _ := ctx.Value(requestStoreContextKey{}).(*RequestStore)
	if store == nil {
		return nil, false
	}
	return store, true
}

// ActionStore marks the current unit of work as a mutating action (a
// form-submission-style handler). Redirect and PermanentRedirect consult
// it to decide whether the default status must force a GET follow-up.
type ActionStore struct {
	IsAction bool
}

// WithActionStore attaches the action store to ctx.
func WithActionStore(ctx context.Context, store *ActionStore) context.Context {
	return context.WithValue(ctx, actionStoreContextKey{}, store)
}

// ActionStoreFromContext returns the ambient action store. Absence is not
// an error: it just leaves the non-action default status in effect.
func ActionStoreFromContext(ctx context.Context) (*ActionStore, bool) {
	if ctx == nil {
		return nil, false
	}
	store, _ := ctx.Value(actionStoreContextKey{}).(*ActionStore)
	if store == nil {
		return nil, false
	}
	return store, true
}
