package admin

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ruangobat-admin/internal/api/respond"
	"ruangobat-admin/internal/domain/audit"
	"ruangobat-admin/internal/infra/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type AuditLister interface {
	List(ctx context.Context, page, pageSize int) ([]audit.OperationLog, int64, error)
}

type AuditLogPage struct {
	Logs       []audit.OperationLog `json:"logs"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalLogs  int64                `json:"total_logs"`
	TotalPages int                  `json:"total_pages"`
}

type AdminStats struct {
	GrantsLast30Days      int64            `json:"grants_last_30_days"`
	RevokesLast30Days     int64            `json:"revokes_last_30_days"`
	PlanChangesLast30Days int64            `json:"plan_changes_last_30_days"`
	OperationsPerAdmin    map[string]int64 `json:"operations_per_admin"`
}

type Handler struct {
	db    *gorm.DB
	audit AuditLister
	log   logger.Logger
}

func NewHandler(db *gorm.DB, auditLister AuditLister, log logger.Logger) *Handler {
	return &Handler{db: db, audit: auditLister, log: log}
}

func (h *Handler) ListAuditLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	logs, total, err := h.audit.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respond.Fail(c, h.log, err)
		return
	}

	respond.OK(c, http.StatusOK, AuditLogPage{
		Logs:       logs,
		Page:       page,
		PageSize:   pageSize,
		TotalLogs:  total,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	})
}

// GetAdminStats summarizes lifecycle operations dispatched through this service.
func (h *Handler) GetAdminStats(c *gin.Context) {
	db := h.db.WithContext(c.Request.Context())
	since := time.Now().AddDate(0, 0, -30)

	type actionCount struct {
		Action string
		Count  int64
	}
	var byAction []actionCount
	if err := db.Model(&audit.OperationLog{}).
		Select("action, COUNT(id) as count").
		Where("created_at >= ?", since).
		Group("action").
		Scan(&byAction).Error; err != nil {
		respond.Fail(c, h.log, err)
		return
	}

	var stats AdminStats
	for _, a := range byAction {
		switch a.Action {
		case audit.ActionGrant:
			stats.GrantsLast30Days = a.Count
		case audit.ActionRevoke:
			stats.RevokesLast30Days = a.Count
		case audit.ActionChangePlan:
			stats.PlanChangesLast30Days = a.Count
		}
	}

	type adminCount struct {
		AdminID string
		Count   int64
	}
	var byAdmin []adminCount
	if err := db.Model(&audit.OperationLog{}).
		Select("admin_id, COUNT(id) as count").
		Group("admin_id").
		Scan(&byAdmin).Error; err != nil {
		respond.Fail(c, h.log, err)
		return
	}
	stats.OperationsPerAdmin = make(map[string]int64, len(byAdmin))
	for _, a := range byAdmin {
		stats.OperationsPerAdmin[a.AdminID] = a.Count
	}

	respond.OK(c, http.StatusOK, stats)
}
