package users

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"ruangobat-admin/internal/api/respond"
	"ruangobat-admin/internal/app/http/middleware"
	"ruangobat-admin/internal/domain/users"
	"ruangobat-admin/internal/infra/logger"
)

const minSearchLength = 3

type Directory interface {
	SearchUsers(ctx context.Context, token, query string) ([]users.User, error)
}

type Handler struct {
	directory Directory
	log       logger.Logger
}

func NewHandler(directory Directory, log logger.Logger) *Handler {
	return &Handler{directory: directory, log: log}
}

// Search feeds the grantee picker. Short queries return nothing rather than
// scanning the whole user base.
func (h *Handler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if utf8.RuneCountInString(q) < minSearchLength {
		respond.OK(c, http.StatusOK, []users.User{})
		return
	}
	_, token := middleware.CurrentAdmin(c)

	result, err := h.directory.SearchUsers(c.Request.Context(), token, q)
	if err != nil {
		respond.Fail(c, h.log, err)
		return
	}
	if result == nil {
		result = []users.User{}
	}
	respond.OK(c, http.StatusOK, result)
}

// GetCurrentAdmin echoes the identity carried by the bearer token.
func GetCurrentAdmin(c *gin.Context) {
	adminID, _ := middleware.CurrentAdmin(c)
	if adminID == "" {
		respond.Error(c, http.StatusUnauthorized, "Unauthorized", "Unauthorized")
		return
	}
	respond.OK(c, http.StatusOK, gin.H{
		"admin_id": adminID,
		"email":    c.GetString("email"),
		"role":     c.GetString("role"),
	})
}
