// Package runtimebridge models the scoped attachment of a native thread to
// the platform's managed runtime. Queries against managed services are only
// valid while the calling thread is attached, and the attachment must be
// released on every exit path.
package runtimebridge

// Session is a live attachment of the calling thread to the managed
// runtime. It is only valid until the release function returned by Attach
// is called, and must never be retained beyond that.
type Session interface {
	// Valid reports whether the session can still be used for calls.
	Valid() bool
}

// Runtime hands out scoped attachments to the managed runtime.
type Runtime interface {
	// Attach pins the calling thread and attaches it to the managed
	// runtime. The returned release function must be called exactly once
	// when the caller is done; it detaches (or returns the attachment to
	// a reuse pool) and unpins the thread.
	Attach() (Session, func(), error)
}

// WithAttached runs fn with the calling thread attached to the managed
// runtime, guaranteeing release on every exit path, including fn failure.
// The attachment wraps exactly the one call; it is never held across
// multiple queries.
func WithAttached[T any](rt Runtime, fn func(Session) (T, error)) (T, error) {
	var zero T
	sess, release, err := rt.Attach()
	if err != nil {
		return zero, err
	}
	defer release()
	return fn(sess)
}
