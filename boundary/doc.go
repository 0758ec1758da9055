// Package boundary resolves redirect signals raised by the nextredirect
// package into HTTP responses.
//
// The boundary handler wraps an inner http.Handler to add:
//   - Ambient store installation (request cookie jar, action marking)
//   - A recover barrier that recognizes redirect signals and writes the
//     redirect they encode, re-raising everything else
//
// # Basic Usage
//
// Wrap an application handler with the default configuration:
//
//	h, err := boundary.Wrap(mux, boundary.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	http.ListenAndServe(addr, h)
//
// Handlers below the boundary redirect by calling nextredirect.Redirect:
//
//	func login(w http.ResponseWriter, r *http.Request) {
//	    if !authenticated(r) {
//	        nextredirect.Redirect(r.Context(), "/signin", nextredirect.NavigationTypeReplace)
//	    }
//	    // never reached when the redirect is raised
//	}
//
// # Resolution
//
// When a recognized signal reaches the barrier, the handler flushes the
// signal's cookie jar onto the response, exposes the navigation type in an
// X-Redirect-Type header for client-side routers, and writes a Location
// header with the decoded status code. Non-GET and non-HEAD requests are
// marked as mutating actions (unless DisableActionMarking is set), which
// switches the default redirect status to 303 See Other.
//
// # Panic Handling
//
// Recovered values that are not redirect signals are re-panicked so the
// server's own panic machinery still sees them. Set Config.OnPanic to
// intercept them instead, e.g. to write a 500 response:
//
//	cfg := boundary.DefaultConfig()
//	cfg.OnPanic = func(w http.ResponseWriter, r *http.Request, recovered any) {
//	    http.Error(w, "internal error", http.StatusInternalServerError)
//	}
package boundary
