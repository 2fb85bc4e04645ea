package inventory

import (
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// 库存领域错误定义
var (
	// ErrInvalidAdjustmentType 调整类型不在七种之内
	ErrInvalidAdjustmentType = apperrors.New(apperrors.ErrCodeInvalidAdjustmentType, "无效的库存调整类型")

	// ErrInvalidQuantity 数量与调整类型不匹配
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidQuantity, "无效的调整数量")

	// ErrReasonRequired 调整原因必填
	ErrReasonRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "调整原因不能为空")

	// ErrInsufficientStock 出库调整会导致库存为负
	ErrInsufficientStock = apperrors.New(apperrors.ErrCodeInsufficientStock, "库存不足")

	// ErrAlertNotFound 告警不存在
	ErrAlertNotFound = apperrors.New(apperrors.ErrCodeAlertNotFound, "库存告警不存在")
)
