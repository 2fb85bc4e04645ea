package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		threshold int
		want      StockStatus
	}{
		{"数量为0是缺货", 0, 5, StockStatusOutOfStock},
		{"阈值为0时数量0仍是缺货", 0, 0, StockStatusOutOfStock},
		{"数量等于阈值是低库存", 5, 5, StockStatusLowStock},
		{"数量低于阈值是低库存", 3, 5, StockStatusLowStock},
		{"数量刚好超过阈值是有货", 6, 5, StockStatusInStock},
		{"阈值为0时有1件就是有货", 1, 0, StockStatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.quantity, tt.threshold))
		})
	}
}

func TestProduct_SetStockQuantity(t *testing.T) {
	p := NewProduct("SKU-001", "测试商品", "", 9900, nil, 100, 10, 5)
	require.Equal(t, StockStatusInStock, p.StockStatus)

	t.Run("设置后状态同步重算", func(t *testing.T) {
		require.NoError(t, p.SetStockQuantity(8))
		assert.Equal(t, 8, p.StockQuantity)
		assert.Equal(t, StockStatusLowStock, p.StockStatus)

		require.NoError(t, p.SetStockQuantity(0))
		assert.Equal(t, StockStatusOutOfStock, p.StockStatus)
	})

	t.Run("负库存被拒绝", func(t *testing.T) {
		before := p.StockQuantity
		err := p.SetStockQuantity(-1)
		assert.ErrorIs(t, err, ErrNegativeStock)
		assert.Equal(t, before, p.StockQuantity, "失败时不应该改变库存")
	})
}

func TestProduct_UpdateThresholds(t *testing.T) {
	p := NewProduct("SKU-002", "测试商品", "", 9900, nil, 8, 5, 3)
	require.Equal(t, StockStatusInStock, p.StockStatus)

	t.Run("上调阈值后状态重算", func(t *testing.T) {
		require.NoError(t, p.UpdateThresholds(10, 3))
		assert.Equal(t, StockStatusLowStock, p.StockStatus, "数量8在新阈值10之内")
	})

	t.Run("负阈值被拒绝", func(t *testing.T) {
		assert.ErrorIs(t, p.UpdateThresholds(-1, 3), ErrInvalidThreshold)
		assert.ErrorIs(t, p.UpdateThresholds(5, -1), ErrInvalidThreshold)
	})
}

func TestProduct_Available(t *testing.T) {
	p := NewProduct("SKU-003", "测试商品", "", 9900, nil, 10, 5, 3)
	assert.True(t, p.Available())

	p.IsActive = false
	assert.False(t, p.Available(), "下架商品不可购买")

	p.IsActive = true
	require.NoError(t, p.SetStockQuantity(0))
	assert.False(t, p.Available(), "售罄商品不可购买")
}
