package sqlite

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 判断是否为SQLite唯一索引冲突错误
// SQLite的错误信息形如:
//
//	UNIQUE constraint failed: products.sku
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	// GORM v2的错误判断
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// 兼容检查:错误信息包含"UNIQUE constraint failed"
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// getDB 从context获取事务DB,如果没有则使用默认DB
// 各Repository共用的事务传递机制,配合TxManager使用
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
