package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 绑定层校验边界测试
// 绑定只拦截结构性错误;数量与类型的搭配、批量条目的合法性都由领域层判定

func bindJSON(t *testing.T, body string, obj interface{}) error {
	t.Helper()
	return binding.JSON.BindBody([]byte(body), obj)
}

func TestCreateAdjustmentRequest_Binding(t *testing.T) {
	t.Run("盘点清零quantity为0通过绑定", func(t *testing.T) {
		var req CreateAdjustmentRequest
		err := bindJSON(t, `{"product_id":1,"type":"adjustment","quantity":0,"reason":"盘点清零"}`, &req)
		require.NoError(t, err, "quantity=0是合法的盘点输入,不能在绑定层被拦截")
		assert.Equal(t, 0, req.Quantity)
		assert.Equal(t, "adjustment", req.Type)
	})

	t.Run("调拨负数通过绑定", func(t *testing.T) {
		var req CreateAdjustmentRequest
		err := bindJSON(t, `{"product_id":1,"type":"transfer","quantity":-4,"reason":"调拨至门店"}`, &req)
		require.NoError(t, err)
		assert.Equal(t, -4, req.Quantity)
	})

	t.Run("缺少reason被拒绝", func(t *testing.T) {
		var req CreateAdjustmentRequest
		err := bindJSON(t, `{"product_id":1,"type":"purchase","quantity":5}`, &req)
		assert.Error(t, err)
	})

	t.Run("非法类型被拒绝", func(t *testing.T) {
		var req CreateAdjustmentRequest
		err := bindJSON(t, `{"product_id":1,"type":"giveaway","quantity":5,"reason":"x"}`, &req)
		assert.Error(t, err)
	})
}

func TestBulkAdjustmentsRequest_Binding(t *testing.T) {
	t.Run("单条类型非法不拖垮整批绑定", func(t *testing.T) {
		body := `{"items":[
			{"product_id":1,"type":"sale","quantity":5,"reason":"订单"},
			{"product_id":2,"type":"giveaway","quantity":1,"reason":"无效类型"},
			{"product_id":3,"type":"purchase","quantity":7,"reason":"补货"}
		]}`

		var req BulkAdjustmentsRequest
		err := bindJSON(t, body, &req)
		require.NoError(t, err, "条目级错误由领域层逐条结算,绑定层必须放行")
		require.Len(t, req.Items, 3)
		assert.Equal(t, "giveaway", req.Items[1].Type)
	})

	t.Run("条目quantity为0通过绑定", func(t *testing.T) {
		var req BulkAdjustmentsRequest
		err := bindJSON(t, `{"items":[{"product_id":1,"type":"adjustment","quantity":0,"reason":"盘点"}]}`, &req)
		require.NoError(t, err)
	})

	t.Run("空批次被拒绝", func(t *testing.T) {
		var req BulkAdjustmentsRequest
		assert.Error(t, bindJSON(t, `{"items":[]}`, &req))
		assert.Error(t, bindJSON(t, `{}`, &req))
	})
}
