package server

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"menu-engine/internal/logger"
)

var (
	errUnauthorized = errors.New("missing or invalid token")
	errManualOff    = errors.New("manual trigger is disabled in production")
)

// RequireCronSecret rejects requests whose bearer token is not the cron secret.
func RequireCronSecret(secret string, log *logger.Logger) gin.HandlerFunc {
	log = log.With("middleware", "CronSecret")
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			log.Warn("Rejected trigger request", "path", c.FullPath(), "remote", c.ClientIP())
			RespondError(c, http.StatusUnauthorized, "unauthorized", errUnauthorized)
			return
		}
		c.Next()
	}
}

// ManualTriggerGuard blocks GET triggers in production unless explicitly allowed.
func ManualTriggerGuard(production, allowManual bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if production && !allowManual {
			RespondError(c, http.StatusForbidden, "forbidden", errManualOff)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
