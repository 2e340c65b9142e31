package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/princepatel/folio/pkg/apperror"
)

// respondError maps an error to its HTTP status and a typed body. Not-found
// is an expected outcome for by-slug lookups; everything else above 4xx is
// retryable from the client's point of view.
func respondError(c *gin.Context, err error) {
	status := apperror.ToHTTPStatus(err)

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		body := appErr.ToJSON()
		body["retryable"] = status >= http.StatusInternalServerError || status == http.StatusBadGateway
		c.JSON(status, body)
		return
	}

	c.JSON(status, gin.H{
		"error":     http.StatusText(status),
		"retryable": status >= http.StatusInternalServerError,
	})
}
