// Package nextredirect implements a redirect signaling protocol for HTTP
// request handlers.
//
// Code deep inside a handler calls Redirect (or PermanentRedirect) to abort
// the current unit of work and navigate the client to a different URL. The
// call never returns: it panics with an *Error whose digest string encodes
// the full directive. Intermediate callers need no knowledge of the signal;
// it unwinds through them like any panic until a boundary layer (see the
// boundary subpackage) recovers it, recognizes it with IsRedirectError, and
// writes the actual redirect response.
//
// # Digest format
//
// A signal's directive is serialized into a single string:
//
//	NEXT_REDIRECT;<type>;<url>;<status>;
//
// The digest is the only channel that distinguishes a redirect signal from
// any other value crossing the recover boundary, so recognition is
// deliberately stringly-typed. The URL may itself contain ";" characters;
// the decoder slices positionally (everything between the second field and
// the two trailing fields) rather than splitting naively, so encode/decode
// round-trips the URL byte for byte:
//
//	NEXT_REDIRECT;push;https://example.com/a;b;307;
//
// decodes to type "push", URL "https://example.com/a;b", status 307.
//
// # Default status codes
//
// Redirect defaults to 307 Temporary Redirect and PermanentRedirect to
// 308 Permanent Redirect. Inside a mutating action (see ActionStore) both
// switch to 303 See Other: a redirect after a form-submission-style request
// must instruct the client to follow up with a plain GET rather than
// replaying the mutation. The lower-level NewError accepts an explicit
// status and validates it eagerly against the closed set {303, 307, 308}.
//
// # Ambient stores
//
// Two context-carried stores influence construction. The RequestStore
// holds the request's mutable response-cookie jar; a signal constructed
// while one is active carries a reference to the jar so the boundary can
// flush cookie writes onto the redirect response. The ActionStore marks
// the current work as a mutating action. Both are optional; absence simply
// means no cookie reference and the non-action default status.
package nextredirect
