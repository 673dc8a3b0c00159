package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/boy-who-codes/nodeflix/internal/auth"
	"github.com/boy-who-codes/nodeflix/internal/email"
	"github.com/boy-who-codes/nodeflix/internal/password"
	"github.com/boy-who-codes/nodeflix/internal/store"
	"github.com/boy-who-codes/nodeflix/internal/validate"
)

const flashError = "error"

type AuthHandler struct {
	userStore    *store.UserStore
	sessionStore *store.SessionStore
	flashStore   *store.FlashStore
	emailClient  *email.Client
	renderer     *Renderer
	logger       *slog.Logger
}

func NewAuthHandler(
	us *store.UserStore,
	ss *store.SessionStore,
	fs *store.FlashStore,
	ec *email.Client,
	renderer *Renderer,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		userStore:    us,
		sessionStore: ss,
		flashStore:   fs,
		emailClient:  ec,
		renderer:     renderer,
		logger:       logger,
	}
}

// AuthPage renders the combined signup/login form. An authenticated
// visitor is sent home without touching credentials.
func (h *AuthHandler) AuthPage(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		h.internalError(w, errors.New("no session in context"))
		return
	}
	if sess.Authenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	messages, err := h.flashStore.Drain(sess.ID, flashError)
	if err != nil {
		h.internalError(w, err)
		return
	}

	mode := r.URL.Query().Get("mode")
	if mode != "signup" {
		mode = "login"
	}
	h.renderer.Render(w, "auth.html", map[string]any{
		"Title":    "Sign up / Login",
		"Mode":     mode,
		"Messages": messages,
	})
}

// Signup creates an account from the submitted email and password.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		h.internalError(w, errors.New("no session in context"))
		return
	}
	if sess.Authenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	emailAddr, reason := validate.CheckSignup(r.FormValue("email"), r.FormValue("password"))
	if reason != validate.OK {
		h.flashAndRedirect(w, r, sess.ID, reason.Message(), "/auth?mode=signup")
		return
	}

	// Advisory pre-check for a friendlier message; the unique index is
	// what actually guards against a concurrent insert.
	existing, err := h.userStore.GetByEmail(emailAddr)
	if err != nil {
		h.internalError(w, err)
		return
	}
	if existing != nil {
		h.flashAndRedirect(w, r, sess.ID, store.ErrDuplicateEmail.Error(), "/auth?mode=signup")
		return
	}

	hash, err := password.Hash(r.FormValue("password"))
	if err != nil {
		h.internalError(w, err)
		return
	}

	user, err := h.userStore.Create(emailAddr, hash)
	if errors.Is(err, store.ErrDuplicateEmail) {
		h.flashAndRedirect(w, r, sess.ID, store.ErrDuplicateEmail.Error(), "/auth?mode=signup")
		return
	}
	if err != nil {
		h.internalError(w, err)
		return
	}

	if err := h.sessionStore.AttachUser(sess.ID, user.ID); err != nil {
		h.internalError(w, err)
		return
	}

	// Welcome email is best-effort: it never blocks the redirect and a
	// failure never rolls back the account.
	if h.emailClient != nil && h.emailClient.Configured() {
		go func(to string) {
			if err := h.emailClient.SendWelcome(to); err != nil {
				h.logger.Error("send welcome email", "error", err)
			}
		}(user.Email)
	} else {
		h.logger.Info("welcome email skipped, client not configured", "email", user.Email)
	}

	http.Redirect(w, r, "/listings", http.StatusSeeOther)
}

// Login authenticates an existing account.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		h.internalError(w, errors.New("no session in context"))
		return
	}
	if sess.Authenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	emailAddr, reason := validate.CheckLogin(r.FormValue("email"), r.FormValue("password"))
	if reason != validate.OK {
		h.flashAndRedirect(w, r, sess.ID, reason.Message(), "/auth?mode=login")
		return
	}

	user, err := h.userStore.GetByEmail(emailAddr)
	if err != nil {
		h.internalError(w, err)
		return
	}
	if user == nil {
		h.flashAndRedirect(w, r, sess.ID, "No account found with that email", "/auth?mode=login")
		return
	}

	if !password.Verify(r.FormValue("password"), user.PasswordHash) {
		h.flashAndRedirect(w, r, sess.ID, "Please check your password", "/auth?mode=login")
		return
	}

	if err := h.sessionStore.AttachUser(sess.ID, user.ID); err != nil {
		h.internalError(w, err)
		return
	}

	http.Redirect(w, r, "/listings", http.StatusSeeOther)
}

// Logout detaches the user from the session. The browser keeps its token;
// the session simply becomes anonymous again.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		h.internalError(w, errors.New("no session in context"))
		return
	}

	if sess.Authenticated() {
		if err := h.sessionStore.DetachUser(sess.ID); err != nil {
			h.internalError(w, err)
			return
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) flashAndRedirect(w http.ResponseWriter, r *http.Request, sessionID int64, message, target string) {
	if err := h.flashStore.Push(sessionID, flashError, message); err != nil {
		h.logger.Error("push flash", "error", err)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *AuthHandler) internalError(w http.ResponseWriter, err error) {
	h.logger.Error("auth handler", "error", err)
	h.renderer.Error(w)
}
