package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"liyu1981.xyz/ecotrack-service/pkg/common"
	"liyu1981.xyz/ecotrack-service/pkg/observability"
)

const (
	ctxKeyUserID    = "userID"
	ctxKeyRequestID = "requestID"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		var requestID string
		if fromHeader := c.GetHeader(common.HeaderRequestID); fromHeader != "" {
			requestID = fromHeader
		} else {
			requestID = uuid.NewString()
		}

		c.Set(ctxKeyRequestID, requestID)
		c.Header(common.HeaderRequestID, requestID)
		c.Next()
	}
}

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observability.RecordHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

func restLogger(c *gin.Context) *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameRestfulServer,
		zap.String("requestId", c.GetString(ctxKeyRequestID)),
	)
}

// resolveUser reads the caller identity. With an Authenticator configured
// only bearer tokens count, otherwise the X-User-ID header is trusted.
func (rs *RestfulServer) resolveUser(c *gin.Context) (string, error) {
	if rs.Auth != nil {
		return rs.Auth.ParseHeader(c.GetHeader("Authorization"))
	}
	if userID := c.GetHeader(common.HeaderUserID); userID != "" {
		return userID, nil
	}
	return "", ErrMissingToken
}

func (rs *RestfulServer) OptionalUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := rs.resolveUser(c); err == nil {
			c.Set(ctxKeyUserID, userID)
		}
		c.Next()
	}
}

func (rs *RestfulServer) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxKeyUserID) != "" {
			c.Next()
			return
		}

		userID, err := rs.resolveUser(c)
		if err != nil {
			restLogger(c).Debug("Rejected unauthenticated request",
				zap.String("path", c.Request.URL.Path), zap.Error(err))
			fail(c, http.StatusUnauthorized, "No valid credentials, authorization denied")
			c.Abort()
			return
		}
		c.Set(ctxKeyUserID, userID)
		c.Next()
	}
}

// RateLimit buckets by user id, falling back to the client ip for anonymous
// calls.
func (rs *RestfulServer) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString(ctxKeyUserID)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}
		if !rs.CheckLimiter(key) {
			fail(c, http.StatusTooManyRequests, "Too many requests, please slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}

func callerID(c *gin.Context) string {
	return c.GetString(ctxKeyUserID)
}
