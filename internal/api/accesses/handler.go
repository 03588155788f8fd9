package accesses

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ruangobat-admin/internal/api/respond"
	"ruangobat-admin/internal/app/http/middleware"
	"ruangobat-admin/internal/app/lifecycle"
	"ruangobat-admin/internal/app/readmodel"
	"ruangobat-admin/internal/domain/access"
	"ruangobat-admin/internal/domain/idempotency"
	"ruangobat-admin/internal/infra/logger"
	"ruangobat-admin/internal/infra/ruangobat"
)

type AccessReader interface {
	GetAccess(ctx context.Context, token, accessID string) (*access.Access, error)
}

type FlowStarter interface {
	StartFlow(ctx context.Context, adminID string) (idempotency.GrantFlow, error)
}

type Handler struct {
	list    *readmodel.AccessList
	reader  AccessReader
	flows   FlowStarter
	service *lifecycle.Service
	log     logger.Logger
}

func NewHandler(list *readmodel.AccessList, reader AccessReader, flows FlowStarter, service *lifecycle.Service, log logger.Logger) *Handler {
	return &Handler{list: list, reader: reader, flows: flows, service: service, log: log}
}

// ListVideocourse serves one decorated page of the access table.
func (h *Handler) ListVideocourse(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.BadRequest(c, err)
		return
	}
	_, token := middleware.CurrentAdmin(c)

	page, err := h.list.Get(c.Request.Context(), token, ruangobat.ListQuery{
		Q: q.Q, Filter: q.Filter, Sort: q.Sort, Page: q.Page,
	})
	if err != nil {
		respond.Fail(c, h.log, err)
		return
	}
	respond.OK(c, http.StatusOK, page)
}

func (h *Handler) GetAccess(c *gin.Context) {
	_, token := middleware.CurrentAdmin(c)
	a, err := h.reader.GetAccess(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		respond.Fail(c, h.log, err)
		return
	}
	respond.OK(c, http.StatusOK, readmodel.PresentAccess(*a, h.log))
}

// StartGrantFlow opens a create-access form session and hands out its key.
func (h *Handler) StartGrantFlow(c *gin.Context) {
	adminID, _ := middleware.CurrentAdmin(c)
	flow, err := h.flows.StartFlow(c.Request.Context(), adminID)
	if err != nil {
		respond.Fail(c, h.log, err)
		return
	}
	resp := grantFlowResponse{FlowID: flow.ID}
	if flow.IdempotencyKey != nil {
		resp.IdempotencyKey = *flow.IdempotencyKey
	}
	respond.OK(c, http.StatusCreated, resp)
}

func (h *Handler) SubmitGrant(c *gin.Context) {
	var body grantBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.BadRequest(c, err)
		return
	}

	res, err := h.service.Grant(c.Request.Context(), actor(c), c.Param("id"), lifecycle.GrantInput{
		UserIDs:        body.UserIDs,
		ProductIDs:     body.ProductIDs,
		DiscountAmount: body.DiscountAmount,
		UserTimezone:   body.UserTimezone,
		ProductType:    body.ProductType,
		TypeAccess:     body.TypeAccess,
	})
	if err != nil {
		respond.Fail(c, h.log, err)
		return
	}
	respond.Notify(c, http.StatusCreated, res, res.Notification)
}

func (h *Handler) ChangePlan(c *gin.Context) {
	var body changePlanBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.BadRequest(c, err)
		return
	}

	res, err := h.service.ChangePlan(c.Request.Context(), actor(c), lifecycle.ChangePlanInput{
		AccessID:     c.Param("id"),
		ProductIDs:   body.ProductIDs,
		UserTimezone: body.UserTimezone,
	})
	if err != nil {
		respond.Fail(c, h.log, err)
		return
	}
	respond.Notify(c, http.StatusOK, res, res.Notification)
}

func (h *Handler) Revoke(c *gin.Context) {
	var body revokeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.BadRequest(c, err)
		return
	}

	res, err := h.service.Revoke(c.Request.Context(), actor(c), c.Param("id"), body.Reason)
	if err != nil {
		respond.Fail(c, h.log, err)
		return
	}
	respond.Notify(c, http.StatusOK, res, res.Notification)
}

func actor(c *gin.Context) lifecycle.Actor {
	adminID, token := middleware.CurrentAdmin(c)
	return lifecycle.Actor{AdminID: adminID, Token: token}
}
