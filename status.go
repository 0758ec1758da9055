package nextredirect

import "net/http"

// isValidRedirectStatus reports whether status belongs to the closed set of
// redirect status codes this protocol may carry. 303 forces the client to
// re-request the target with GET, which is why it is the default inside
// mutating actions; 307 and 308 preserve the original method.
func isValidRedirectStatus(status int) bool {
	switch status {
	case http.StatusSeeOther, // 303
		http.StatusTemporaryRedirect, // 307
		http.StatusPermanentRedirect: // 308
		return true
	}
	return false
}
