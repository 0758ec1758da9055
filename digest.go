package nextredirect

import (
	"errors"
	"strconv"
	"strings"
)

// protocolTag identifies redirect digests among the other digest-bearing
// errors that may cross the same recover boundary.
const protocolTag = "NEXT_REDIRECT"

const digestSeparator = ";"

// minDigestFields is the field count of a digest with an empty URL: tag,
// type, url, status, plus the empty anchor field after the trailing
// separator.
const minDigestFields = 5

// NavigationType selects how a client-side router records the redirect in
// its history: push adds a new entry, replace overwrites the current one.
type NavigationType string

const (
	NavigationTypePush    NavigationType = "push"
	NavigationTypeReplace NavigationType = "replace"
)

func (t NavigationType) valid() bool {
	return t == NavigationTypePush || t == NavigationTypeReplace
}

// DigestError is implemented by errors that carry an opaque digest string.
// The digest is the only part of an error guaranteed to survive the trip
// to the boundary layer, so every protocol sharing that path encodes its
// directive into one.
type DigestError interface {
	error
	Digest() string
}

// digestPayload is the decoded form of a redirect digest.
type digestPayload struct {
	Type   NavigationType
	URL    string
	Status int
}

// encodeDigest serializes a redirect directive. The URL is not escaped:
// the tag, type, and status fields never contain the separator, so
// decodeDigest can recover the URL positionally even when the URL itself
// contains ";".
func encodeDigest(typ NavigationType, url string, status int) string {
	return protocolTag + digestSeparator +
		string(typ) + digestSeparator +
		url + digestSeparator +
		strconv.Itoa(status) + digestSeparator
}

// decodeDigest parses a digest produced by encodeDigest. It returns false
// for any string that is not a well-formed directive of this protocol:
// wrong tag, unknown navigation type, too few fields, or a status outside
// the valid redirect set.
func decodeDigest(digest string) (digestPayload, bool) {
	fields := strings.Split(digest, digestSeparator)
	if len(fields) < minDigestFields {
		return digestPayload{}, false
	}
	if fields[0] != protocolTag {
		return digestPayload{}, false
	}
	typ := NavigationType(fields[1])
	if !typ.valid() {
		return digestPayload{}, false
	}
	// The URL may contain the separator. Everything between the second
	// field and the two trailing fields belongs to it; the final field,
	// produced by the terminal separator, is a positional anchor only.
	url := strings.Join(fields[2:len(fields)-2], digestSeparator)
	status, err := strconv.Atoi(fields[len(fields)-2])
	if err != nil || !isValidRedirectStatus(status) {
		return digestPayload{}, false
	}
	return digestPayload{Type: typ, URL: url, Status: status}, true
}

// digestFromValue extracts a digest string from an arbitrary recovered
// value. Wrapped errors are searched with errors.As, so a signal passed
// through fmt.Errorf("...: %w", err) is still found.
func digestFromValue(v any) (string, bool) {
	err, ok := v.(error)
	if !ok || err == nil {
		return "", false
	}
	var d DigestError
	if !errors.As(err, &d) {
		return "", false
	}
	return d.Digest(), true
}
