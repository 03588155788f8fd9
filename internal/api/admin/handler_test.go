package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ruangobat-admin/database"
	"ruangobat-admin/internal/domain/audit"
	"ruangobat-admin/internal/infra/logger"
)

func setup(t *testing.T) (*gin.Engine, *audit.Recorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := database.InitTestDB()
	t.Cleanup(func() { database.CloseTestDB(db) })

	rec := audit.NewRecorder(db)
	h := NewHandler(db, rec, logger.NopLogger{})

	r := gin.New()
	r.GET("/audit-logs", h.ListAuditLogs)
	r.GET("/stats", h.GetAdminStats)
	return r, rec
}

func TestListAuditLogs_Paginates(t *testing.T) {
	r, rec := setup(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, rec.Record(ctx, "admin-1", audit.ActionGrant, "access", "a", nil))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audit-logs?page=2&page_size=2", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data AuditLogPage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Logs, 1)
	assert.Equal(t, int64(3), resp.Data.TotalLogs)
	assert.Equal(t, 2, resp.Data.TotalPages)
}

func TestGetAdminStats(t *testing.T) {
	r, rec := setup(t)
	ctx := context.Background()
	require.NoError(t, rec.Record(ctx, "admin-1", audit.ActionGrant, "access", "a1", nil))
	require.NoError(t, rec.Record(ctx, "admin-1", audit.ActionRevoke, "access", "a1", nil))
	require.NoError(t, rec.Record(ctx, "admin-2", audit.ActionGrant, "access", "a2", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data AdminStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Data.GrantsLast30Days)
	assert.Equal(t, int64(1), resp.Data.RevokesLast30Days)
	assert.Equal(t, int64(2), resp.Data.OperationsPerAdmin["admin-1"])
}
