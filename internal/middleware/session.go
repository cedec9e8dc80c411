package middleware

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/money_changer_pos/internal/core/ports/services"
	"github.com/SscSPs/money_changer_pos/internal/utils"
	"github.com/gin-gonic/gin"
)

// SessionCookieConfig controls the cookie that binds a browser to its counter session.
type SessionCookieConfig struct {
	Name   string
	Secret string
	Issuer string
	MaxAge time.Duration
	Secure bool
	Path   string
}

// SessionMiddleware resolves the counter session for every request. The cookie
// holds a signed token whose subject is the session ID; a missing, tampered or
// expired token, or an evicted session, starts a fresh session. The cookie is
// re-issued on every request so active sessions keep sliding forward.
func SessionMiddleware(sessions portssvc.SessionLifecycleSvc, cfg SessionCookieConfig) gin.HandlerFunc {
	path := cfg.Path
	if path == "" {
		path = "/"
	}
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		sessionID := ""
		if raw, err := c.Cookie(cfg.Name); err == nil && raw != "" {
			id, err := utils.SessionIDFromToken(raw, cfg.Secret, cfg.Issuer)
			if err != nil {
				logger.Warn("Discarding invalid session token", slog.String("error", err.Error()))
			} else {
				sessionID = id
			}
		}

		state, started, err := sessions.ResumeSession(c.Request.Context(), sessionID)
		if err != nil {
			logger.Error("Failed to resolve session", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
			return
		}
		if started {
			logger.Info("Started new counter session", slog.String("session_id", state.SessionID))
		}

		token, err := utils.SignSessionToken(state.SessionID, cfg.Secret, cfg.Issuer, cfg.MaxAge)
		if err != nil {
			logger.Error("Failed to sign session token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.Name, token, int(cfg.MaxAge.Seconds()), path, "", cfg.Secure, true)

		enrichedLogger := logger.With(slog.String("session_id", state.SessionID))
		ctx := WithSessionID(c.Request.Context(), state.SessionID)
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
