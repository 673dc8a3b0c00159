package middleware

import (
	"log/slog"
	"net/http"

	"github.com/boy-who-codes/nodeflix/internal/auth"
	"github.com/boy-who-codes/nodeflix/internal/store"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "nodeflix_session"

const sessionCookieMaxAge = 24 * 60 * 60 // matches the store's retention window

// EnsureSession resolves the session cookie and injects an auth.Session
// into the request context. A missing, unknown, or expired token gets a
// fresh anonymous session and a new cookie, so every handler downstream
// can rely on a session existing.
func EnsureSession(sessionStore *store.SessionStore, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				sess, err := sessionStore.GetByToken(cookie.Value)
				if err != nil {
					logger.Error("session lookup", "error", err)
					http.Error(w, "Internal error", http.StatusInternalServerError)
					return
				}
				if sess != nil {
					ctx := auth.WithSession(r.Context(), auth.Session{
						ID:     sess.ID,
						Token:  sess.Token,
						UserID: sess.UserID,
					})
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			sess, err := sessionStore.Create()
			if err != nil {
				logger.Error("create session", "error", err)
				http.Error(w, "Internal error", http.StatusInternalServerError)
				return
			}
			setSessionCookie(w, r, sess.Token)

			ctx := auth.WithSession(r.Context(), auth.Session{
				ID:    sess.ID,
				Token: sess.Token,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth redirects anonymous requests to the auth page.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.CurrentUser(r.Context()); !ok {
			http.Redirect(w, r, "/auth", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})
}
