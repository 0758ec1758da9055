package nextredirect

import (
	"context"
	"net/http"
)

// Error is the carrier value for a redirect signal. It is created by
// Redirect, PermanentRedirect, or NewError, travels up the stack as a
// panic value (or an ordinary returned error), and is consumed by a
// boundary layer such as boundary.Wrap.
//
// The directive itself lives entirely in the digest string; Error adds
// only the non-owning cookie-jar reference the boundary needs to flush
// cookie writes made before the redirect was raised.
type Error struct {
	digest  string
	cookies *MutableCookies
}

// Error returns the protocol tag. The tag inside the digest, not the Go
// type, is what identifies a signal on the far side of the recover
// boundary, so the message carries no further information.
func (e *Error) Error() string { return protocolTag }

// Digest returns the encoded redirect directive.
func (e *Error) Digest() string { return e.digest }

// Cookies returns the mutable cookie jar of the request that raised the
// signal, or nil when no request store was active at construction time.
// The jar is owned by the request, not by the signal.
func (e *Error) Cookies() *MutableCookies { return e.cookies }

// NewError builds a redirect signal with an explicit status code. It is
// the lower-level primitive behind Redirect and PermanentRedirect; use it
// only when the default status policy must be overridden.
//
// The status code and navigation type are validated eagerly: a signal
// that would fail recognition downstream is a caller contract violation,
// reported here as InvalidStatusCodeError or InvalidNavigationTypeError.
func NewError(ctx context.Context, url string, typ NavigationType, status int) (*Error, error) {
	if !typ.valid() {
		return nil, &InvalidNavigationTypeError{Type: typ}
	}
	if !isValidRedirectStatus(status) {
		return nil, &InvalidStatusCodeError{Status: status}
	}
	e := &Error{digest: encodeDigest(typ, url, status)}
	if store, ok := RequestStoreFromContext(ctx); ok {
		e.cookies = store.Cookies
	}
	return e, nil
}

// Redirect aborts the current unit of work and navigates the client to
// url. It never returns: the signal is raised as a panic and unwinds the
// stack to the nearest boundary layer (see the boundary package).
//
// Outside an action the redirect is temporary (307 Temporary Redirect).
// Inside a mutating action it becomes 303 See Other, so the client follows
// up with a plain GET instead of replaying the mutation against the
// target URL.
func Redirect(ctx context.Context, url string, typ NavigationType) {
	raise(ctx, url, typ, http.StatusTemporaryRedirect)
}

// PermanentRedirect is Redirect with a permanent (308 Permanent Redirect)
// default status. Inside a mutating action it, too, degrades to
// 303 See Other.
func PermanentRedirect(ctx context.Context, url string, typ NavigationType) {
	raise(ctx, url, typ, http.StatusPermanentRedirect)
}

func raise(ctx context.Context, url string, typ NavigationType, status int) {
	if store, ok := ActionStoreFromContext(ctx); ok && store.IsAction {
		status = http.StatusSeeOther
	}
	e, err := NewError(ctx, url, typ, status)
	if err != nil {
		panic(err)
	}
	panic(e)
}
