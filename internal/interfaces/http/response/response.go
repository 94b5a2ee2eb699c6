package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainerrors "fulloncrypto.backend/internal/domain/errors"
	"fulloncrypto.backend/pkg/logger"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error maps err to its HTTP status and sends the `{error}` body. A
// non-AppError falls through to 500 with a generic message; the detail
// stays in server-side logs only.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}

	if appErr.Status >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}

	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
