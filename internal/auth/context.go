package auth

import "context"

type contextKey struct{}

// Session is the request-scoped view of the browser's session. UserID is
// nil for anonymous sessions.
type Session struct {
	ID     int64
	Token  string
	UserID *int64
}

// Authenticated reports whether a user is attached to the session.
func (s Session) Authenticated() bool {
	return s.UserID != nil
}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKey{}).(Session)
	return s, ok
}

// CurrentUser returns the authenticated user's id, or false when the
// session is missing or anonymous.
func CurrentUser(ctx context.Context) (int64, bool) {
	s, ok := FromContext(ctx)
	if !ok || s.UserID == nil {
		return 0, false
	}
	return *s.UserID, true
}
