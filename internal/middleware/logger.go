package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorKindKey is the gin context key handlers use to name the failure they
// responded with.
const ErrorKindKey = "error_kind"

// RequestLogger writes one structured line per request. 4xx responses are
// logged at warn level and 5xx at error level.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}
		if kind := c.GetString(ErrorKindKey); kind != "" {
			attrs = append(attrs, slog.String("error_kind", kind))
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		log.LogAttrs(c.Request.Context(), level, "request", attrs...)
	}
}
