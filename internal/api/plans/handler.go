package plans

import (
	"context"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"ruangobat-admin/internal/api/respond"
	"ruangobat-admin/internal/app/http/middleware"
	"ruangobat-admin/internal/domain/plans"
	"ruangobat-admin/internal/infra/logger"
	"ruangobat-admin/internal/infra/ruangobat"
)

type Catalog interface {
	ListProducts(ctx context.Context, token, productType string) ([]plans.Product, error)
}

type Handler struct {
	catalog Catalog
	log     logger.Logger
}

func NewHandler(catalog Catalog, log logger.Logger) *Handler {
	return &Handler{catalog: catalog, log: log}
}

// ListProducts is the package picker of the grant and change-plan forms,
// cheapest first.
func (h *Handler) ListProducts(c *gin.Context) {
	productType, err := plans.NormalizeType(c.Query("type"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "ValidationError", err.Error())
		return
	}
	_, token := middleware.CurrentAdmin(c)

	products, err := h.catalog.ListProducts(c.Request.Context(), token, productType)
	if err != nil {
		respond.Fail(c, h.log, err)
		return
	}
	if products == nil {
		products = []plans.Product{}
	}

	sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	respond.OK(c, http.StatusOK, products)
}

var _ Catalog = (*ruangobat.Client)(nil)
