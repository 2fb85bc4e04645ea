package review

import (
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// 评论领域错误定义
var (
	// ErrInvalidRating 评分超出1-5范围
	ErrInvalidRating = apperrors.New(apperrors.ErrCodeInvalidRating, "评分必须在1-5之间")

	// ErrMissingFields 缺少必填字段
	ErrMissingFields = apperrors.New(apperrors.ErrCodeInvalidParams, "昵称和评论内容不能为空")

	// ErrReviewNotFound 评论不存在
	ErrReviewNotFound = apperrors.New(apperrors.ErrCodeNotFound, "评论不存在")
)
