package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/money_changer_pos/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"

	throttledMessage = "Too many requests. Please try again later."
)

// NewIPRateLimiter builds an in-memory limiter from a formatted rate such as "120-M".
func NewIPRateLimiter(formattedRate string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formattedRate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formattedRate, err)
	}
	return limiter.New(memory.NewStore(), rate), nil
}

// RateLimit throttles requests per client IP. Routes listed in exempt are never
// counted. API callers get a JSON error when throttled, counter pages plain text.
func RateLimit(lim *limiter.Limiter, exempt ...string) gin.HandlerFunc {
	skip := make(map[string]bool, len(exempt))
	for _, route := range exempt {
		skip[route] = true
	}

	return func(c *gin.Context) {
		if skip[c.FullPath()] {
			c.Next()
			return
		}

		logger := GetLoggerFromCtx(c.Request.Context())
		ip := c.ClientIP()

		quota, err := lim.Get(c.Request.Context(), ip)
		if err != nil {
			logger.Error("Rate limit store unavailable, request not counted", slog.String("ip", ip), slog.String("error", err.Error()))
			c.Next()
			return
		}

		c.Header(headerRateLimitLimit, strconv.FormatInt(quota.Limit, 10))
		c.Header(headerRateLimitRemaining, strconv.FormatInt(quota.Remaining, 10))
		c.Header(headerRateLimitReset, strconv.FormatInt(quota.Reset, 10))

		if !quota.Reached {
			c.Next()
			return
		}

		logger.Warn("Client throttled", slog.String("ip", ip), slog.String("path", c.Request.URL.Path), slog.Int64("limit", quota.Limit))
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: throttledMessage, Kind: "RateLimited"})
			return
		}
		c.String(http.StatusTooManyRequests, throttledMessage)
		c.Abort()
	}
}
