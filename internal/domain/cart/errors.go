package cart

import (
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrInvalidQuantity 数量超出1-99范围
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidQuantity, "商品数量必须在1-99之间")

	// ErrItemNotFound 购物车条目不存在
	ErrItemNotFound = apperrors.New(apperrors.ErrCodeCartItemNotFound, "购物车条目不存在")

	// ErrProductUnavailable 商品不可购买(已下架或缺货)
	ErrProductUnavailable = apperrors.New(apperrors.ErrCodeProductOutOfStock, "商品已下架或缺货")
)
