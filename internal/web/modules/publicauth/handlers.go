package publicauth

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/ph1234-dev/acme-dashboard/internal/auth"
	apperrors "github.com/ph1234-dev/acme-dashboard/internal/web/platform/errors"
	"github.com/ph1234-dev/acme-dashboard/internal/web/platform/httpx"
	"github.com/ph1234-dev/acme-dashboard/internal/web/platform/sessioncookie"
	"github.com/ph1234-dev/acme-dashboard/internal/web/routepath"
	webtemplates "github.com/ph1234-dev/acme-dashboard/internal/web/templates"
)

type handlers struct {
	provider auth.IdentityProvider
	sessions *auth.Sessions
}

func newHandlers(provider auth.IdentityProvider, sessions *auth.Sessions) handlers {
	return handlers{provider: provider, sessions: sessions}
}

func (h handlers) signedIn(r *http.Request) bool {
	if h.sessions == nil {
		return false
	}
	token, ok := sessioncookie.Read(r)
	if !ok {
		return false
	}
	_, err := h.sessions.Verify(token)
	return err == nil
}

func (h handlers) handleRootGet(w http.ResponseWriter, r *http.Request) {
	if h.signedIn(r) {
		httpx.WriteRedirect(w, r, routepath.Dashboard)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Login)
}

func (h handlers) handleLoginGet(w http.ResponseWriter, r *http.Request) {
	if h.signedIn(r) {
		httpx.WriteRedirect(w, r, routepath.Dashboard)
		return
	}
	h.renderLogin(w, http.StatusOK, "", "")
}

func (h handlers) handleLoginPost(w http.ResponseWriter, r *http.Request) {
	ctx := httpx.RequestContext(r)
	if h.provider == nil || h.sessions == nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindUnavailable, "sign-in is not configured"))
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, apperrors.E(apperrors.KindInvalidInput, "failed to parse login form"))
		return
	}

	email := strings.TrimSpace(r.PostForm.Get("email"))
	creds := auth.Credentials{Email: email, Password: r.PostForm.Get("password")}

	userID, message, err := auth.Authenticate(ctx, h.provider, creds)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	if message != "" {
		h.renderLogin(w, http.StatusUnauthorized, email, message)
		return
	}

	token, err := h.sessions.Issue(userID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	sessioncookie.Write(w, r, token)
	httpx.WriteRedirect(w, r, routepath.Dashboard)
}

func (h handlers) handleLogoutPost(w http.ResponseWriter, r *http.Request) {
	sessioncookie.Clear(w, r)
	httpx.WriteRedirect(w, r, routepath.Login)
}

func (h handlers) renderLogin(w http.ResponseWriter, status int, email, message string) {
	var buf bytes.Buffer
	if err := webtemplates.LoginPage(email, message).Render(context.Background(), &buf); err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteHTML(w, status, buf.String())
}
