package httpapi

import (
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
	"github.com/gin-gonic/gin"
)

// RequireSession is the access gate for protected routes. Requests without
// a token cookie end with 401, requests with a bad or expired token with
// 403; admitted requests carry the user id in their context.
func RequireSession(gate *auth.Gate, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := gate.Admit(sessionToken(c.Request))
		if err != nil {
			logger.Debug(c.Request.Context(), "request rejected by access gate", "path", c.Request.URL.Path, "error", err)
			status, body := ToAPIError(err, "")
			c.AbortWithStatusJSON(status, body)
			return
		}

		c.Request = c.Request.WithContext(auth.WithUserID(c.Request.Context(), userID))
		c.Next()
	}
}

func requestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		)
	}
}
