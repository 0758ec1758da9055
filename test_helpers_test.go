package nextredirect

// recoverFrom runs fn and returns the value it panicked with, or nil when
// fn returned normally.
func recoverFrom(fn func()) (v any) {
	defer func() { v = recover() }()
	fn()
	return nil
}

// plainDigestError is an error carrying an arbitrary digest, standing in
// for the other digest-bearing protocols that share the recover boundary.
type plainDigestError struct {
	digest string
}

func (e *plainDigestError) Error() string  { return "digest-bearing error" }
func (e *plainDigestError) Digest() string { return e.digest }
