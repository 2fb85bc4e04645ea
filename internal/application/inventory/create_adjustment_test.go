package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/storefront/internal/domain/inventory"
	"github.com/xiebiao/storefront/internal/domain/product"
)

func TestCreateAdjustment_PurchaseIncreasesStock(t *testing.T) {
	f := newFixture()
	p := f.seedProduct("SKU-001", 10, 5, 3)

	resp, err := f.createUC.Execute(context.Background(), CreateAdjustmentRequest{
		ProductID: p.ID,
		Type:      "purchase",
		Quantity:  15,
		Reason:    "采购补货",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, resp.PreviousQuantity)
	assert.Equal(t, 25, resp.NewQuantity)
	assert.Equal(t, "in_stock", resp.StockStatus)
	assert.NotZero(t, resp.AdjustmentID)

	// 商品行已更新
	updated, err := f.products.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, updated.StockQuantity)
	assert.Equal(t, product.StockStatusInStock, updated.StockStatus)

	// 台账已写入
	assert.Len(t, f.adjs.adjustments, 1)
	assert.Equal(t, inventory.AdjustmentTypePurchase, f.adjs.adjustments[0].Type)

	// 目录缓存已失效
	assert.Equal(t, []uint{p.ID}, f.cache.productInvalidations)
	assert.Equal(t, 1, f.cache.listInvalidations)
}

func TestCreateAdjustment_SaleToLowStockCreatesAlert(t *testing.T) {
	f := newFixture()
	p := f.seedProduct("SKU-002", 10, 5, 3)

	resp, err := f.createUC.Execute(context.Background(), CreateAdjustmentRequest{
		ProductID: p.ID,
		Type:      "sale",
		Quantity:  6,
		Reason:    "线上订单",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.NewQuantity)
	assert.Equal(t, "low_stock", resp.StockStatus)

	// 低于低库存阈值 → low_stock告警;4>3未到补货点,无reorder告警
	alerts, err := f.alerts.ListOpenByProduct(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, inventory.AlertTypeLowStock, alerts[0].AlertType)
	assert.Equal(t, 4, alerts[0].CurrentQuantity)
	assert.Equal(t, 5, alerts[0].Threshold)
}

func TestCreateAdjustment_SaleBelowReorderCreatesBothAlerts(t *testing.T) {
	f := newFixture()
	p := f.seedProduct("SKU-003", 10, 5, 3)

	_, err := f.createUC.Execute(context.Background(), CreateAdjustmentRequest{
		ProductID: p.ID,
		Type:      "sale",
		Quantity:  8,
		Reason:    "线上订单",
	})
	require.NoError(t, err)

	// 2 <= 5(low) 且 2 <= 3(reorder):两类告警各一条
	alerts, err := f.alerts.ListOpenByProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, alerts, 2)
}

func TestCreateAdjustment_InsufficientStockRejected(t *testing.T) {
	f := newFixture()
	p := f.seedProduct("SKU-004", 3, 5, 3)

	_, err := f.createUC.Execute(context.Background(), CreateAdjustmentRequest{
		ProductID: p.ID,
		Type:      "sale",
		Quantity:  5,
		Reason:    "线上订单",
	})
	assert.ErrorIs(t, err, inventory.ErrInsufficientStock)

	// 库存未变,台账没有记录,缓存不失效
	unchanged, _ := f.products.FindByID(context.Background(), p.ID)
	assert.Equal(t, 3, unchanged.StockQuantity)
	assert.Empty(t, f.adjs.adjustments)
	assert.Empty(t, f.cache.productInvalidations)
}

func TestCreateAdjustment_AdjustmentSetsAbsolute(t *testing.T) {
	f := newFixture()
	p := f.seedProduct("SKU-005", 100, 5, 3)

	resp, err := f.createUC.Execute(context.Background(), CreateAdjustmentRequest{
		ProductID: p.ID,
		Type:      "adjustment",
		Quantity:  0,
		Reason:    "盘点清零",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.NewQuantity)
	assert.Equal(t, "out_of_stock", resp.StockStatus)
}

func TestCreateAdjustment_TransferSignedDelta(t *testing.T) {
	f := newFixture()
	p := f.seedProduct("SKU-006", 10, 2, 1)

	// 负数调出
	resp, err := f.createUC.Execute(context.Background(), CreateAdjustmentRequest{
		ProductID: p.ID,
		Type:      "transfer",
		Quantity:  -4,
		Reason:    "调拨至门店",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, resp.NewQuantity)

	// 调拨数量为0被拒绝
	_, err = f.createUC.Execute(context.Background(), CreateAdjustmentRequest{
		ProductID: p.ID,
		Type:      "transfer",
		Quantity:  0,
		Reason:    "无效调拨",
	})
	assert.ErrorIs(t, err, inventory.ErrInvalidQuantity)
}

func TestCreateAdjustment_InvalidTypeRejected(t *testing.T) {
	f := newFixture()
	p := f.seedProduct("SKU-007", 10, 5, 3)

	_, err := f.createUC.Execute(context.Background(), CreateAdjustmentRequest{
		ProductID: p.ID,
		Type:      "giveaway",
		Quantity:  1,
		Reason:    "x",
	})
	assert.ErrorIs(t, err, inventory.ErrInvalidAdjustmentType)
}

func TestCreateAdjustment_ProductNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.createUC.Execute(context.Background(), CreateAdjustmentRequest{
		ProductID: 999,
		Type:      "purchase",
		Quantity:  1,
		Reason:    "x",
	})
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

func TestCreateAdjustment_ReasonRequired(t *testing.T) {
	f := newFixture()
	p := f.seedProduct("SKU-008", 10, 5, 3)

	_, err := f.createUC.Execute(context.Background(), CreateAdjustmentRequest{
		ProductID: p.ID,
		Type:      "purchase",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, inventory.ErrReasonRequired)
}

func TestCreateAdjustment_LedgerFailureRollsBackStock(t *testing.T) {
	f := newFixture()
	p := f.seedProduct("SKU-009", 10, 5, 3)

	// 注入台账写入失败:库存写回必须一并回滚
	injected := errors.New("disk full")
	f.adjs.createErr = injected

	_, err := f.createUC.Execute(context.Background(), CreateAdjustmentRequest{
		ProductID: p.ID,
		Type:      "sale",
		Quantity:  2,
		Reason:    "线上订单",
	})
	require.Error(t, err)

	unchanged, _ := f.products.FindByID(context.Background(), p.ID)
	assert.Equal(t, 10, unchanged.StockQuantity, "台账失败后库存不应变化")
	assert.Empty(t, f.adjs.adjustments)
}

func TestCreateAdjustment_NoDuplicateOpenAlert(t *testing.T) {
	f := newFixture()
	p := f.seedProduct("SKU-010", 10, 5, 0)

	// 第一次:10 → 4,产生告警
	_, err := f.createUC.Execute(context.Background(), CreateAdjustmentRequest{
		ProductID: p.ID, Type: "sale", Quantity: 6, Reason: "线上订单",
	})
	require.NoError(t, err)

	// 第二次:4 → 2,仍在低库存区间,不重复产生
	_, err = f.createUC.Execute(context.Background(), CreateAdjustmentRequest{
		ProductID: p.ID, Type: "sale", Quantity: 2, Reason: "线上订单",
	})
	require.NoError(t, err)

	alerts, err := f.alerts.ListOpenByProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
	// 告警保留首次触发时的数量快照
	assert.Equal(t, 4, alerts[0].CurrentQuantity)
}

func TestCreateAdjustment_AlertIsStickyAfterRestock(t *testing.T) {
	f := newFixture()
	p := f.seedProduct("SKU-011", 10, 5, 0)

	// 跌入低库存产生告警
	_, err := f.createUC.Execute(context.Background(), CreateAdjustmentRequest{
		ProductID: p.ID, Type: "sale", Quantity: 7, Reason: "线上订单",
	})
	require.NoError(t, err)

	// 补货回升到安全水位:告警保持未解决(粘性)
	resp, err := f.createUC.Execute(context.Background(), CreateAdjustmentRequest{
		ProductID: p.ID, Type: "purchase", Quantity: 50, Reason: "采购补货",
	})
	require.NoError(t, err)
	assert.Equal(t, "in_stock", resp.StockStatus)

	alerts, err := f.alerts.ListOpenByProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, alerts, 1, "库存回升不自动关闭告警")
}
