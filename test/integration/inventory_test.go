package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 库存子系统集成测试
//
// 场景覆盖:
// 1. 调整改变库存与派生状态
// 2. 出库超量被拒且库存不变
// 3. 跌破阈值产生告警,补货后告警仍在(粘性),解决是幂等的
// 4. 台账记录每一次调整

// TestInventoryAdjustmentFlow 库存调整主流程
func TestInventoryAdjustmentFlow(t *testing.T) {
	requireServer(t)
	token := LoginTestAdmin(t)

	t.Run("采购入库增加库存", func(t *testing.T) {
		p := CreateTestProduct(t, token, "集成测试-入库", 10, 5, 3)

		resp := PostJSON(t, BaseURL+"/admin/inventory/adjustments", map[string]interface{}{
			"product_id": p.ID,
			"type":       "purchase",
			"quantity":   40,
			"reason":     "集成测试采购",
		}, token)
		require.Equal(t, 0, resp.Code, "调整失败: %s", resp.Message)

		var data AdjustmentData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, 10, data.PreviousQuantity)
		assert.Equal(t, 50, data.NewQuantity)
		assert.Equal(t, "in_stock", data.StockStatus)
	})

	t.Run("出库超量被拒且库存不变", func(t *testing.T) {
		p := CreateTestProduct(t, token, "集成测试-超量出库", 5, 2, 1)

		resp := PostJSON(t, BaseURL+"/admin/inventory/adjustments", map[string]interface{}{
			"product_id": p.ID,
			"type":       "sale",
			"quantity":   8,
			"reason":     "集成测试销售",
		}, token)
		assert.NotEqual(t, 0, resp.Code, "超量出库应该失败")

		// 库存档案确认没有变化
		snapResp := GetJSON(t, fmt.Sprintf("%s/admin/inventory/products/%d", BaseURL, p.ID), token)
		require.Equal(t, 0, snapResp.Code, "查询库存档案失败: %s", snapResp.Message)

		var snap struct {
			StockQuantity     int               `json:"stock_quantity"`
			RecentAdjustments []json.RawMessage `json:"recent_adjustments"`
		}
		require.NoError(t, json.Unmarshal(snapResp.Data, &snap))
		assert.Equal(t, 5, snap.StockQuantity, "失败的调整不应该改变库存")
		assert.Empty(t, snap.RecentAdjustments, "失败的调整不应该进台账")
	})

	t.Run("盘点设置绝对值并允许清零", func(t *testing.T) {
		p := CreateTestProduct(t, token, "集成测试-盘点", 30, 5, 3)

		resp := PostJSON(t, BaseURL+"/admin/inventory/adjustments", map[string]interface{}{
			"product_id": p.ID,
			"type":       "adjustment",
			"quantity":   0,
			"reason":     "集成测试盘点清零",
		}, token)
		require.Equal(t, 0, resp.Code, "盘点失败: %s", resp.Message)

		var data AdjustmentData
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, 0, data.NewQuantity)
		assert.Equal(t, "out_of_stock", data.StockStatus)
	})
}

// TestBulkAdjustmentsEndpoint 批量调整:单条失败不拖垮整批
func TestBulkAdjustmentsEndpoint(t *testing.T) {
	requireServer(t)
	token := LoginTestAdmin(t)

	p1 := CreateTestProduct(t, token, "集成测试-批量1", 10, 2, 1)
	p2 := CreateTestProduct(t, token, "集成测试-批量2", 10, 2, 1)
	p3 := CreateTestProduct(t, token, "集成测试-批量3", 20, 2, 1)

	resp := PostJSON(t, BaseURL+"/admin/inventory/adjustments/bulk", map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": p1.ID, "type": "sale", "quantity": 5, "reason": "批量出库"},
			{"product_id": p2.ID, "type": "giveaway", "quantity": 1, "reason": "非法类型"},
			{"product_id": p3.ID, "type": "purchase", "quantity": 7, "reason": "批量入库"},
		},
	}, token)
	require.Equal(t, 0, resp.Code, "批量请求本身不应该失败: %s", resp.Message)

	var data struct {
		Total     int `json:"total"`
		Succeeded int `json:"succeeded"`
		Failed    int `json:"failed"`
		Results   []struct {
			ProductID    uint   `json:"product_id"`
			Success      bool   `json:"success"`
			NewQuantity  int    `json:"new_quantity"`
			ErrorMessage string `json:"error_message"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))

	assert.Equal(t, 3, data.Total)
	assert.Equal(t, 2, data.Succeeded)
	assert.Equal(t, 1, data.Failed)

	require.Len(t, data.Results, 3)
	assert.True(t, data.Results[0].Success)
	assert.Equal(t, 5, data.Results[0].NewQuantity)
	assert.False(t, data.Results[1].Success, "非法类型条目应该标记失败")
	assert.NotEmpty(t, data.Results[1].ErrorMessage)
	assert.True(t, data.Results[2].Success)
	assert.Equal(t, 27, data.Results[2].NewQuantity)

	// 失败条目的商品库存不变
	snapResp := GetJSON(t, fmt.Sprintf("%s/admin/inventory/products/%d", BaseURL, p2.ID), token)
	require.Equal(t, 0, snapResp.Code, "查询库存档案失败: %s", snapResp.Message)

	var snap struct {
		StockQuantity int `json:"stock_quantity"`
	}
	require.NoError(t, json.Unmarshal(snapResp.Data, &snap))
	assert.Equal(t, 10, snap.StockQuantity)
}

// TestLowStockAlertLifecycle 告警生命周期:产生、粘性、幂等解决
func TestLowStockAlertLifecycle(t *testing.T) {
	requireServer(t)
	token := LoginTestAdmin(t)

	p := CreateTestProduct(t, token, "集成测试-告警", 10, 5, 2)

	// 1. 销售跌破低库存阈值,产生告警
	resp := PostJSON(t, BaseURL+"/admin/inventory/adjustments", map[string]interface{}{
		"product_id": p.ID,
		"type":       "sale",
		"quantity":   6,
		"reason":     "集成测试销售",
	}, token)
	require.Equal(t, 0, resp.Code, "调整失败: %s", resp.Message)

	alert := findOpenAlert(t, token, p.ID, "low_stock")
	require.NotNil(t, alert, "跌破阈值应该产生low_stock告警")
	assert.Equal(t, 4, alert.CurrentQuantity)
	assert.Equal(t, 5, alert.Threshold)

	// 2. 补货回到阈值之上,告警仍然未解决(粘性)
	resp = PostJSON(t, BaseURL+"/admin/inventory/adjustments", map[string]interface{}{
		"product_id": p.ID,
		"type":       "purchase",
		"quantity":   50,
		"reason":     "集成测试补货",
	}, token)
	require.Equal(t, 0, resp.Code, "补货失败: %s", resp.Message)

	sticky := findOpenAlert(t, token, p.ID, "low_stock")
	require.NotNil(t, sticky, "补货不应该自动解决告警")
	assert.Equal(t, alert.ID, sticky.ID)

	// 3. 显式解决
	resolveURL := fmt.Sprintf("%s/admin/inventory/alerts/%d/resolve", BaseURL, alert.ID)
	resolveResp := PutJSON(t, resolveURL, map[string]string{"notes": "已确认补货"}, token)
	require.Equal(t, 0, resolveResp.Code, "解决告警失败: %s", resolveResp.Message)

	var resolved struct {
		AlreadyResolved bool   `json:"already_resolved"`
		ResolvedAt      string `json:"resolved_at"`
	}
	require.NoError(t, json.Unmarshal(resolveResp.Data, &resolved))
	assert.False(t, resolved.AlreadyResolved)
	assert.NotEmpty(t, resolved.ResolvedAt)

	// 4. 重复解决是幂等的(notes可选,这里不带请求体)
	againResp := PutJSON(t, resolveURL, nil, token)
	require.Equal(t, 0, againResp.Code, "重复解决不应该报错: %s", againResp.Message)

	var again struct {
		AlreadyResolved bool   `json:"already_resolved"`
		ResolvedAt      string `json:"resolved_at"`
	}
	require.NoError(t, json.Unmarshal(againResp.Data, &again))
	assert.True(t, again.AlreadyResolved)
	assert.Equal(t, resolved.ResolvedAt, again.ResolvedAt, "重复解决不应该改写解决时间")

	// 5. 解决后告警从未解决列表消失
	assert.Nil(t, findOpenAlert(t, token, p.ID, "low_stock"))
}

// TestAdjustmentAuthRequired 库存接口需要登录
func TestAdjustmentAuthRequired(t *testing.T) {
	requireServer(t)

	resp := PostJSON(t, BaseURL+"/admin/inventory/adjustments", map[string]interface{}{
		"product_id": 1,
		"type":       "purchase",
		"quantity":   1,
		"reason":     "未登录测试",
	}, "")
	assert.NotEqual(t, 0, resp.Code, "未登录应该被拒绝")
}

// findOpenAlert 在未解决告警列表中按商品和类型查找
func findOpenAlert(t *testing.T, token string, productID uint, alertType string) *AlertData {
	t.Helper()

	resp := GetJSON(t, BaseURL+"/admin/inventory/alerts", token)
	require.Equal(t, 0, resp.Code, "查询告警失败: %s", resp.Message)

	var alerts []AlertData
	require.NoError(t, json.Unmarshal(resp.Data, &alerts))

	for i := range alerts {
		if alerts[i].ProductID == productID && alerts[i].AlertType == alertType {
			return &alerts[i]
		}
	}
	return nil
}
