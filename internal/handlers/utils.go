package handlers

import (
	"errors"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/alouani-moncif/secret-word-society-replit/internal/services"
	"github.com/alouani-moncif/secret-word-society-replit/utils"
)

// sessionID returns the caller's opaque session identifier, placed on the
// request by utils.SessionCookieMiddleware.
func sessionID(re *core.RequestEvent) string {
	if v, ok := re.Get(utils.SessionContextKey).(string); ok {
		return v
	}
	if cookie, err := re.Request.Cookie(utils.SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// apiError maps command errors to HTTP responses.
func apiError(re *core.RequestEvent, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrPlayerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrInvalidTarget):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrWrongPhase),
		errors.Is(err, services.ErrInsufficientPlayers),
		errors.Is(err, services.ErrRoomFull):
		status = http.StatusConflict
	case errors.Is(err, services.ErrNotAdmin):
		status = http.StatusForbidden
	}

	return re.JSON(status, map[string]string{"error": err.Error()})
}
