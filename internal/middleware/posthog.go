package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/money_changer_pos/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks page and API events with PostHog.
// Events are keyed by the counter session ID and never carry form contents.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		sessionID, exists := GetSessionIDFromContext(c)
		if !exists {
			return
		}

		// Create event name from route path (e.g., "/api/v1/session/rows" -> "api_v1_session_rows")
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		eventName = strings.ReplaceAll(eventName, ":", "")
		if eventName == "" {
			eventName = "counter_page"
		}

		posthogClient.Enqueue(sessionID, eventName, map[string]any{
			"method":      c.Request.Method,
			"path":        c.FullPath(),
			"status_code": c.Writer.Status(),
		})
	}
}
