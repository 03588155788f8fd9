package plans

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ruangobat-admin/internal/domain/plans"
	"ruangobat-admin/internal/infra/logger"
)

type catalogStub struct {
	gotType string
}

func (c *catalogStub) ListProducts(ctx context.Context, token, productType string) ([]plans.Product, error) {
	c.gotType = productType
	return []plans.Product{
		{ProductID: "p12", Price: 900000, Duration: 12},
		{ProductID: "p1", Price: 100000, Duration: 1},
	}, nil
}

func TestListProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cat := &catalogStub{}
	r := gin.New()
	r.GET("/products", NewHandler(cat, logger.NopLogger{}).ListProducts)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, plans.TypeVideoCourse, cat.gotType)

	var resp struct {
		Data []plans.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "p1", resp.Data[0].ProductID)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?type=ebook", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
