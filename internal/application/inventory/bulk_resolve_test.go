package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/storefront/internal/domain/inventory"
)

func TestBulkAdjustments_PerItemIsolation(t *testing.T) {
	f := newFixture()
	p1 := f.seedProduct("BULK-001", 10, 2, 1)
	p2 := f.seedProduct("BULK-002", 3, 2, 1)
	p3 := f.seedProduct("BULK-003", 20, 2, 1)

	bulkUC := NewBulkAdjustmentsUseCase(f.createUC)

	resp, err := bulkUC.Execute(context.Background(), BulkAdjustmentsRequest{
		CreatedBy: "admin",
		Items: []CreateAdjustmentRequest{
			{ProductID: p1.ID, Type: "sale", Quantity: 5, Reason: "订单"},
			{ProductID: p2.ID, Type: "sale", Quantity: 10, Reason: "订单"}, // 库存不足,失败
			{ProductID: p3.ID, Type: "purchase", Quantity: 7, Reason: "补货"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.Succeeded)
	assert.Equal(t, 1, resp.Failed)

	// 结果顺序与请求顺序一致
	assert.True(t, resp.Results[0].Success)
	assert.False(t, resp.Results[1].Success)
	assert.NotEmpty(t, resp.Results[1].ErrorMessage)
	assert.True(t, resp.Results[2].Success)

	// 失败条目不影响其他条目的落库
	after1, _ := f.products.FindByID(context.Background(), p1.ID)
	after2, _ := f.products.FindByID(context.Background(), p2.ID)
	after3, _ := f.products.FindByID(context.Background(), p3.ID)
	assert.Equal(t, 5, after1.StockQuantity)
	assert.Equal(t, 3, after2.StockQuantity, "失败条目库存不变")
	assert.Equal(t, 27, after3.StockQuantity)

	// 台账只有两条成功记录
	assert.Len(t, f.adjs.adjustments, 2)
}

func TestBulkAdjustments_EmptyRejected(t *testing.T) {
	f := newFixture()
	bulkUC := NewBulkAdjustmentsUseCase(f.createUC)

	_, err := bulkUC.Execute(context.Background(), BulkAdjustmentsRequest{})
	assert.Error(t, err)
}

func TestResolveAlert_Idempotent(t *testing.T) {
	f := newFixture()
	p := f.seedProduct("RSLV-001", 10, 5, 0)

	// 产生一条告警
	_, err := f.createUC.Execute(context.Background(), CreateAdjustmentRequest{
		ProductID: p.ID, Type: "sale", Quantity: 7, Reason: "订单",
	})
	require.NoError(t, err)

	alerts, err := f.alerts.ListOpenByProduct(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	alertID := alerts[0].ID

	resolveUC := NewResolveAlertUseCase(f.alerts, zap.NewNop())

	// 第一次解决
	resp, err := resolveUC.Execute(context.Background(), ResolveAlertRequest{
		AlertID:    alertID,
		Notes:      "已补货",
		ResolvedBy: "admin",
	})
	require.NoError(t, err)
	assert.False(t, resp.AlreadyResolved)
	assert.NotEmpty(t, resp.ResolvedAt)
	firstResolvedAt := resp.ResolvedAt

	// 第二次解决:幂等,解决时间不被改写
	resp2, err := resolveUC.Execute(context.Background(), ResolveAlertRequest{
		AlertID: alertID,
	})
	require.NoError(t, err)
	assert.True(t, resp2.AlreadyResolved)
	assert.Equal(t, firstResolvedAt, resp2.ResolvedAt)

	// 解决后再跌入低库存:允许产生新告警
	_, err = f.createUC.Execute(context.Background(), CreateAdjustmentRequest{
		ProductID: p.ID, Type: "sale", Quantity: 1, Reason: "订单",
	})
	require.NoError(t, err)

	open, err := f.alerts.ListOpenByProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, open, 1)
	assert.NotEqual(t, alertID, open[0].ID)
}

func TestResolveAlert_NotFound(t *testing.T) {
	f := newFixture()
	resolveUC := NewResolveAlertUseCase(f.alerts, zap.NewNop())

	_, err := resolveUC.Execute(context.Background(), ResolveAlertRequest{AlertID: 999})
	assert.ErrorIs(t, err, inventory.ErrAlertNotFound)
}
