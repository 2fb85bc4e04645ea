package category

import (
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// 分类领域错误定义
var (
	// ErrCategoryNotFound 分类不存在
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrSlugDuplicate slug已存在
	ErrSlugDuplicate = apperrors.New(apperrors.ErrCodeSlugDuplicate, "分类slug已存在")

	// ErrCategoryNotEmpty 分类下仍有商品或子分类
	ErrCategoryNotEmpty = apperrors.New(apperrors.ErrCodeCategoryNotEmpty, "分类下仍有商品或子分类,不能删除")

	// ErrInvalidParent 父分类不合法(不存在或形成环)
	ErrInvalidParent = apperrors.New(apperrors.ErrCodeInvalidParams, "无效的父分类")

	// ErrInvalidSlug slug格式不正确
	ErrInvalidSlug = apperrors.New(apperrors.ErrCodeInvalidParams, "slug格式不正确(小写字母数字和连字符)")
)
