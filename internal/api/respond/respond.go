// Package respond writes the service's JSON envelopes. Errors use the same
// {status_code, error: {name, message}} shape as the Ruangobat API so the
// admin UI handles one contract.
package respond

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"ruangobat-admin/internal/app/lifecycle"
	"ruangobat-admin/internal/domain/access"
	"ruangobat-admin/internal/domain/events"
	"ruangobat-admin/internal/domain/idempotency"
	"ruangobat-admin/internal/infra/logger"
	"ruangobat-admin/internal/infra/ruangobat"
)

// statusClientClosedRequest is nginx's code for a client that went away.
const statusClientClosedRequest = 499

func OK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

// Notify is OK plus the toast the UI should show.
func Notify(c *gin.Context, status int, data interface{}, n lifecycle.Notification) {
	c.JSON(status, gin.H{"data": data, "notification": n})
}

func Error(c *gin.Context, status int, name, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"status_code": status,
		"error":       gin.H{"name": name, "message": message},
	})
}

// Fail maps err onto the error envelope. Unexpected errors are logged.
func Fail(c *gin.Context, log logger.Logger, err error) {
	var apiErr *ruangobat.APIError
	var verrs validator.ValidationErrors

	switch {
	case errors.Is(err, context.Canceled):
		Error(c, statusClientClosedRequest, "ClientClosedRequest", "Permintaan dibatalkan")
	case errors.As(err, &apiErr):
		Error(c, apiErr.StatusCode, apiErr.Name, apiErr.Message)
	case errors.As(err, &verrs):
		Error(c, http.StatusBadRequest, "ValidationError", describe(verrs))
	case errors.Is(err, events.ErrMalformedWindow):
		Error(c, http.StatusBadRequest, "ValidationError", "Jadwal pendaftaran tidak valid")
	case errors.Is(err, lifecycle.ErrValidation):
		msg := lifecycle.ErrorNotification(err).Message
		if msg == lifecycle.FallbackMessage {
			msg = err.Error()
		}
		Error(c, http.StatusBadRequest, "ValidationError", msg)
	case errors.Is(err, lifecycle.ErrActionNotAllowed), errors.Is(err, lifecycle.ErrInFlight):
		Error(c, http.StatusConflict, "Conflict", lifecycle.ErrorNotification(err).Message)
	case errors.Is(err, idempotency.ErrFlowNotFound):
		Error(c, http.StatusNotFound, "NotFound", "Sesi penambahan akses tidak ditemukan")
	case errors.Is(err, access.ErrUnknownStatus):
		log.Error("unexpected data shape from backend", err)
		Error(c, http.StatusBadGateway, "UnexpectedDataShape", "Data akses tidak dikenali")
	default:
		log.Error("request failed", err, map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		})
		Error(c, http.StatusInternalServerError, "InternalServerError", lifecycle.ErrorNotification(err).Message)
	}
}

// BadRequest reports a binding failure, listing offending fields when the
// validator produced them.
func BadRequest(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		Error(c, http.StatusBadRequest, "ValidationError", describe(verrs))
		return
	}
	Error(c, http.StatusBadRequest, "BadRequest", "Invalid request body")
}

func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
