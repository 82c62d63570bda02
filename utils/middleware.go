package utils

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/hook"
)

const (
	// SessionCookieName carries the anonymous session identifier. The core
	// treats it as an opaque stable key per browser session.
	SessionCookieName = "uc_session"

	// SessionContextKey is where the middleware stores the session id on
	// the request event.
	SessionContextKey = "session_id"

	sessionCookieMaxAge = 30 * 24 * time.Hour
)

// SessionCookieMiddleware issues an anonymous session id on first contact
// and makes it available to handlers via the request event store.
func SessionCookieMiddleware() *hook.Handler[*core.RequestEvent] {
	return &hook.Handler[*core.RequestEvent]{
		Id:   "SessionCookieMiddleware",
		Func: sessionCookie,
	}
}

func sessionCookie(e *core.RequestEvent) error {
	if cookie, err := e.Request.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		e.Set(SessionContextKey, cookie.Value)
		return e.Next()
	}

	id := uuid.NewString()
	http.SetCookie(e.Response, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(sessionCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	e.Set(SessionContextKey, id)
	return e.Next()
}
