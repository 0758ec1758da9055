package nextredirect

// IsRedirectError reports whether v is a redirect signal: an error whose
// digest is a well-formed directive of this protocol. It accepts any value
// so boundary layers can probe recover() results directly, and it never
// panics, so probing arbitrary failures is always safe.
func IsRedirectError(v any) bool {
	_, ok := payloadFromValue(v)
	return ok
}

// URLFromError returns the target URL carried by a redirect signal. The
// second return is false when v is not a recognized signal; unlike the
// other accessors this one reports failure without an error, so it can be
// used as a filter over arbitrary recovered values.
func URLFromError(v any) (string, bool) {
	p, ok := payloadFromValue(v)
	if !ok {
		return "", false
	}
	return p.URL, true
}

// NavigationTypeFromError returns the navigation type (push or replace)
// carried by a redirect signal. It fails with ErrInvalidRedirect when v is
// not a recognized signal.
func NavigationTypeFromError(v any) (NavigationType, error) {
	p, ok := payloadFromValue(v)
	if !ok {
		return "", ErrInvalidRedirect
	}
	return p.Type, nil
}

// StatusCodeFromError returns the HTTP status code carried by a redirect
// signal. It fails with ErrInvalidRedirect when v is not a recognized
// signal.
func StatusCodeFromError(v any) (int, error) {
	p, ok := payloadFromValue(v)
	if !ok {
		return 0, ErrInvalidRedirect
	}
	return p.Status, nil
}

func payloadFromValue(v any) (digestPayload, bool) {
	digest, ok := digestFromValue(v)
	if !ok {
		return digestPayload{}, false
	}
	return decodeDigest(digest)
}
