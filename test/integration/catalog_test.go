package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 商品目录与购物车集成测试

// TestPublicCatalog 公开目录接口
func TestPublicCatalog(t *testing.T) {
	requireServer(t)
	token := LoginTestAdmin(t)

	p := CreateTestProduct(t, token, "集成测试-目录商品", 20, 5, 3)

	t.Run("商品列表公开访问", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/products?page=1&page_size=20", "")
		assert.Equal(t, 0, resp.Code, "公开接口应该可以访问: %s", resp.Message)
	})

	t.Run("商品详情带库存状态", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/products/%d", BaseURL, p.ID), "")
		require.Equal(t, 0, resp.Code, "查询详情失败: %s", resp.Message)

		var detail struct {
			ID          uint   `json:"id"`
			SKU         string `json:"sku"`
			StockStatus string `json:"stock_status"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &detail))
		assert.Equal(t, p.ID, detail.ID)
		assert.Equal(t, "in_stock", detail.StockStatus)
	})

	t.Run("不存在的商品返回404", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/products/999999999", "")
		assert.NotEqual(t, 0, resp.Code, "不存在的商品应该报错")
	})

	t.Run("分类树公开访问", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/categories/tree", "")
		assert.Equal(t, 0, resp.Code, "分类树应该可以访问: %s", resp.Message)
	})
}

// TestCartSessionFlow 购物车会话流程
// X-Session-ID由服务端下发,后续请求带回同一个ID才能看到自己的购物车
func TestCartSessionFlow(t *testing.T) {
	requireServer(t)
	token := LoginTestAdmin(t)

	p := CreateTestProduct(t, token, "集成测试-购物车商品", 10, 3, 1)

	// 1. 首次访问拿到会话ID
	sessionID := getSessionID(t)
	require.NotEmpty(t, sessionID, "服务端应该下发会话ID")

	// 2. 加购
	addResp := cartRequest(t, http.MethodPost, BaseURL+"/cart/items", sessionID, map[string]interface{}{
		"product_id": p.ID,
		"quantity":   2,
	})
	require.Equal(t, 0, addResp.Code, "加购失败: %s", addResp.Message)

	var cart struct {
		Items []struct {
			ID        uint  `json:"id"`
			ProductID uint  `json:"product_id"`
			Quantity  int   `json:"quantity"`
			Subtotal  int64 `json:"subtotal"`
		} `json:"items"`
		TotalItems int   `json:"total_items"`
		TotalPrice int64 `json:"total_price"`
	}
	require.NoError(t, json.Unmarshal(addResp.Data, &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.TotalItems)
	assert.Equal(t, int64(2*9900), cart.TotalPrice)

	// 3. 重复加购同一商品合并数量
	mergeResp := cartRequest(t, http.MethodPost, BaseURL+"/cart/items", sessionID, map[string]interface{}{
		"product_id": p.ID,
		"quantity":   1,
	})
	require.Equal(t, 0, mergeResp.Code, "重复加购失败: %s", mergeResp.Message)
	require.NoError(t, json.Unmarshal(mergeResp.Data, &cart))
	require.Len(t, cart.Items, 1, "同一商品应该合并为一条")
	assert.Equal(t, 3, cart.Items[0].Quantity)

	// 4. 另一个会话看不到这个购物车
	otherSession := getSessionID(t)
	require.NotEqual(t, sessionID, otherSession)
	otherResp := cartRequest(t, http.MethodGet, BaseURL+"/cart", otherSession, nil)
	require.Equal(t, 0, otherResp.Code)
	require.NoError(t, json.Unmarshal(otherResp.Data, &cart))
	assert.Empty(t, cart.Items, "购物车应该按会话隔离")
}

// getSessionID 发起一次购物车请求,取服务端回写的X-Session-ID
func getSessionID(t *testing.T) string {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, BaseURL+"/cart", nil)
	require.NoError(t, err)

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.Header.Get("X-Session-ID")
}

// cartRequest 带会话ID的购物车请求
func cartRequest(t *testing.T, method, url, sessionID string, data interface{}) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err)
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", sessionID)

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result Response
	require.NoError(t, json.Unmarshal(raw, &result), "解析响应失败: %s", string(raw))
	return &result
}
