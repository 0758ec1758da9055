package boundary

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/routelab/nextredirect"
)

// Handler is an http.Handler that installs the nextredirect ambient stores
// and resolves redirect signals raised by the handler below it.
//
// Handler is safe for concurrent use. Each request gets its own request
// store, and the configuration is immutable after Wrap.
type Handler struct {
	next http.Handler
	cfg  Config
}

// Wrap returns a Handler around next using cfg. It fails with
// ErrNilHandler when next is nil.
func Wrap(next http.Handler, cfg Config) (*Handler, error) {
	if next == nil {
		return nil, ErrNilHandler
	}
	return &Handler{next: next, cfg: cfg.applyDefaults()}, nil
}

// ServeHTTP runs the inner handler under a recover barrier. A recognized
// redirect signal is translated into a redirect response; any other panic
// value is re-raised (or handed to Config.OnPanic).
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	store := nextredirect.NewRequestStore()
	ctx := nextredirect.WithRequestStore(r.Context(), store)
	if !h.cfg.DisableActionMarking && isMutatingMethod(r.Method) {
		ctx = nextredirect.WithActionStore(ctx, &nextredirect.ActionStore{IsAction: true})
	}
	r = r.WithContext(ctx)

	defer func() {
		v := recover()
		if v == nil {
			return
		}
		if !nextredirect.IsRedirectError(v) {
			if h.cfg.OnPanic != nil {
				h.cfg.OnPanic(w, r, v)
				return
			}
			panic(v)
		}
		h.resolve(w, r, v)
	}()

	h.next.ServeHTTP(w, r)
}

// resolve writes the redirect carried by a recognized signal. The
// accessors cannot fail here: recognition already succeeded.
func (h *Handler) resolve(w http.ResponseWriter, r *http.Request, v any) {
	url, _ := nextredirect.URLFromError(v)
	typ, _ := nextredirect.NavigationTypeFromError(v)
	status, _ := nextredirect.StatusCodeFromError(v)

	// The signal may arrive wrapped; find the carrier to reach the
	// cookie jar it references.
	var sig *nextredirect.Error
	if err, ok := v.(error); ok && errors.As(err, &sig) && sig.Cookies() != nil {
		sig.Cookies().WriteTo(w.Header())
	}

	// Client-side routers use the navigation type to decide between
	// pushing a new history entry and replacing the current one.
	w.Header().Set("X-Redirect-Type", string(typ))

	h.cfg.Logger.Debug("resolved redirect signal",
		zap.String("url", url),
		zap.String("type", string(typ)),
		zap.Int("status", status),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	http.Redirect(w, r, url, status)
}

// isMutatingMethod reports whether method implies a data-mutating action
// per RFC 9110 method semantics.
func isMutatingMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return false
	}
	return true
}
