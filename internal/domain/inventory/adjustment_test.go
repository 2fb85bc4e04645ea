package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustmentType_Apply(t *testing.T) {
	tests := []struct {
		name     string
		typ      AdjustmentType
		current  int
		quantity int
		want     int
		wantErr  error
	}{
		{"采购入库", AdjustmentTypePurchase, 10, 5, 15, nil},
		{"退货入库", AdjustmentTypeReturn, 0, 3, 3, nil},
		{"销售出库", AdjustmentTypeSale, 10, 4, 6, nil},
		{"销售清空库存", AdjustmentTypeSale, 5, 5, 0, nil},
		{"销售超出库存", AdjustmentTypeSale, 3, 5, 0, ErrInsufficientStock},
		{"损坏出库", AdjustmentTypeDamage, 10, 2, 8, nil},
		{"损坏超出库存", AdjustmentTypeDamage, 1, 2, 0, ErrInsufficientStock},
		{"丢失出库", AdjustmentTypeTheft, 10, 10, 0, nil},
		{"盘点校正为绝对值", AdjustmentTypeAdjustment, 100, 42, 42, nil},
		{"盘点清零", AdjustmentTypeAdjustment, 100, 0, 0, nil},
		{"调拨入库", AdjustmentTypeTransfer, 10, 5, 15, nil},
		{"调拨出库", AdjustmentTypeTransfer, 10, -5, 5, nil},
		{"调拨超出库存", AdjustmentTypeTransfer, 3, -5, 0, ErrInsufficientStock},
		{"非法类型", AdjustmentType("giveaway"), 10, 5, 0, ErrInvalidAdjustmentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.typ.Apply(tt.current, tt.quantity)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdjustmentType_ValidateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		typ      AdjustmentType
		quantity int
		wantErr  bool
	}{
		{"采购数量为正", AdjustmentTypePurchase, 1, false},
		{"采购数量为0", AdjustmentTypePurchase, 0, true},
		{"采购数量为负", AdjustmentTypePurchase, -1, true},
		{"销售数量为负", AdjustmentTypeSale, -3, true},
		{"盘点允许0", AdjustmentTypeAdjustment, 0, false},
		{"盘点不允许负数", AdjustmentTypeAdjustment, -1, true},
		{"调拨允许负数", AdjustmentTypeTransfer, -10, false},
		{"调拨不允许0", AdjustmentTypeTransfer, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.typ.ValidateQuantity(tt.quantity)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidQuantity)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseAdjustmentType(t *testing.T) {
	for _, typ := range AdjustmentTypes {
		got, err := ParseAdjustmentType(string(typ))
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	_, err := ParseAdjustmentType("unknown")
	assert.ErrorIs(t, err, ErrInvalidAdjustmentType)

	// 类型区分大小写
	_, err = ParseAdjustmentType("Purchase")
	assert.ErrorIs(t, err, ErrInvalidAdjustmentType)
}

func TestNewAdjustment(t *testing.T) {
	t.Run("正常创建", func(t *testing.T) {
		adj, err := NewAdjustment(1, AdjustmentTypePurchase, 10, "采购补货", "供应商A", "admin")
		require.NoError(t, err)
		assert.Equal(t, uint(1), adj.ProductID)
		assert.Equal(t, AdjustmentTypePurchase, adj.Type)
		assert.Equal(t, 10, adj.Quantity)
		assert.False(t, adj.CreatedAt.IsZero())
	})

	t.Run("原因必填", func(t *testing.T) {
		_, err := NewAdjustment(1, AdjustmentTypeSale, 2, "", "", "")
		assert.ErrorIs(t, err, ErrReasonRequired)
	})

	t.Run("类型非法", func(t *testing.T) {
		_, err := NewAdjustment(1, AdjustmentType("bad"), 2, "x", "", "")
		assert.ErrorIs(t, err, ErrInvalidAdjustmentType)
	})

	t.Run("数量非法", func(t *testing.T) {
		_, err := NewAdjustment(1, AdjustmentTypeSale, 0, "x", "", "")
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}
