package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/princepatel/folio/adapters/persistence"
	"github.com/princepatel/folio/pkg/apperror"
	"github.com/princepatel/folio/pkg/logger"
)

// RateLimitMiddleware guards the contact relay with a per-IP fixed window.
// If the limiter itself fails the request goes through; losing rate limiting
// is better than losing the contact form.
func RateLimitMiddleware(limiter *persistence.RateLimiter, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn("Rate limiter unavailable, allowing request", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			appErr := apperror.NewRateLimited("too many contact submissions from this address")
			c.AbortWithStatusJSON(apperror.ToHTTPStatus(appErr), appErr.ToJSON())
			return
		}
		c.Next()
	}
}
