package audit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ruangobat-admin/database"
	"ruangobat-admin/internal/domain/audit"
)

func TestRecorder_RecordAndList(t *testing.T) {
	ctx := context.Background()
	db := database.InitTestDB()
	defer database.CloseTestDB(db)

	rec := audit.NewRecorder(db)
	require.NoError(t, rec.Record(ctx, "admin-1", audit.ActionGrant, "access", "acc-1", map[string]string{"product_id": "p1"}))
	require.NoError(t, rec.Record(ctx, "admin-1", audit.ActionRevoke, "access", "acc-1", map[string]string{"reason": "refund"}))
	require.NoError(t, rec.Record(ctx, "admin-2", audit.ActionChangePlan, "access", "acc-2", nil))

	logs, total, err := rec.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, logs, 2)
	assert.Equal(t, audit.ActionChangePlan, logs[0].Action)
	assert.Equal(t, `{"reason":"refund"}`, logs[1].Details)

	logs, _, err = rec.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, audit.ActionGrant, logs[0].Action)
}
