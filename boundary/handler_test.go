package boundary

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routelab/nextredirect"
)

// wrap is a test helper around Wrap that fails the test on error.
func wrap(t *testing.T, next http.Handler, cfg Config) *Handler {
	t.Helper()
	h, err := Wrap(next, cfg)
	require.NoError(t, err)
	return h
}

func TestWrap(t *testing.T) {
	t.Run("Rejects a nil inner handler", func(t *testing.T) {
		_, err := Wrap(nil, DefaultConfig())
		require.ErrorIs(t, err, ErrNilHandler)
	})

	t.Run("Passes through responses without redirects", func(t *testing.T) {
		h := wrap(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			fmt.Fprint(w, "ok")
		}), DefaultConfig())

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusTeapot, rec.Code)
		require.Equal(t, "ok", rec.Body.String())
	})
}

func TestHandlerRedirectResolution(t *testing.T) {
	t.Run("Resolves a temporary redirect on GET", func(t *testing.T) {
		h := wrap(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextredirect.Redirect(r.Context(), "/login", nextredirect.NavigationTypeReplace)
		}), DefaultConfig())

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/private", nil))

		require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		require.Equal(t, "/login", rec.Header().Get("Location"))
		require.Equal(t, "replace", rec.Header().Get("X-Redirect-Type"))
	})

	t.Run("Resolves a permanent redirect on GET", func(t *testing.T) {
		h := wrap(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextredirect.PermanentRedirect(r.Context(), "/moved", nextredirect.NavigationTypeReplace)
		}), DefaultConfig())

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/old", nil))

		require.Equal(t, http.StatusPermanentRedirect, rec.Code)
		require.Equal(t, "/moved", rec.Header().Get("Location"))
	})

	t.Run("POST requests count as actions and redirect with 303", func(t *testing.T) {
		h := wrap(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextredirect.Redirect(r.Context(), "/done", nextredirect.NavigationTypePush)
		}), DefaultConfig())

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/submit", nil))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/done", rec.Header().Get("Location"))
		require.Equal(t, "push", rec.Header().Get("X-Redirect-Type"))
	})

	t.Run("DisableActionMarking keeps the method-preserving status on POST", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DisableActionMarking = true
		h := wrap(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextredirect.Redirect(r.Context(), "/done", nextredirect.NavigationTypePush)
		}), cfg)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/submit", nil))

		require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	})

	t.Run("Resolves a wrapped signal returned as a panic value", func(t *testing.T) {
		h := wrap(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			e, err := nextredirect.NewError(r.Context(), "/next", nextredirect.NavigationTypePush, http.StatusSeeOther)
			require.NoError(t, err)
			panic(fmt.Errorf("rendering: %w", e))
		}), DefaultConfig())

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, "/next", rec.Header().Get("Location"))
	})

	t.Run("URL with embedded separators survives to the Location header", func(t *testing.T) {
		h := wrap(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextredirect.Redirect(r.Context(), "/search?q=a;b;c", nextredirect.NavigationTypeReplace)
		}), DefaultConfig())

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, "/search?q=a;b;c", rec.Header().Get("Location"))
	})
}

func TestHandlerCookieFlush(t *testing.T) {
	t.Run("Cookies written before the redirect reach the response", func(t *testing.T) {
		h := wrap(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store, ok := nextredirect.RequestStoreFromContext(r.Context())
			require.True(t, ok)
			store.Cookies.Set(&http.Cookie{Name: "flash", Value: "saved", Path: "/"})
			nextredirect.Redirect(r.Context(), "/done", nextredirect.NavigationTypePush)
		}), DefaultConfig())

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/submit", nil))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, "flash", cookies[0].Name)
		require.Equal(t, "saved", cookies[0].Value)
	})

	t.Run("Cookie deletions reach the response as tombstones", func(t *testing.T) {
		h := wrap(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store, _ := nextredirect.RequestStoreFromContext(r.Context())
			store.Cookies.Delete("session")
			nextredirect.Redirect(r.Context(), "/signin", nextredirect.NavigationTypeReplace)
		}), DefaultConfig())

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, "session", cookies[0].Name)
		// The wire form Max-Age=0 is parsed back as MaxAge -1.
		require.Equal(t, -1, cookies[0].MaxAge)
	})
}

func TestHandlerPanicPropagation(t *testing.T) {
	t.Run("Non-signal panics are re-raised", func(t *testing.T) {
		h := wrap(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}), DefaultConfig())

		rec := httptest.NewRecorder()
		require.PanicsWithValue(t, "boom", func() {
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})

	t.Run("OnPanic intercepts non-signal panics", func(t *testing.T) {
		var recovered any
		cfg := DefaultConfig()
		cfg.OnPanic = func(w http.ResponseWriter, r *http.Request, v any) {
			recovered = v
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		h := wrap(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}), cfg)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, "boom", recovered)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("OnPanic is not called for redirect signals", func(t *testing.T) {
		called := false
		cfg := DefaultConfig()
		cfg.OnPanic = func(w http.ResponseWriter, r *http.Request, v any) { called = true }
		h := wrap(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextredirect.Redirect(r.Context(), "/login", nextredirect.NavigationTypeReplace)
		}), cfg)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.False(t, called)
		require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	})
}
