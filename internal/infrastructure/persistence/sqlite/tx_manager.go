package sqlite

import (
	"context"

	"gorm.io/gorm"
)

// TxManager 事务管理器
// 设计说明:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. 库存调整的"读商品-算新值-写回-记台账-查告警"必须整体在一个事务里,
//    任何一步失败全部回滚
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn函数内的所有Repository操作都会在同一事务中执行:
// fn返回error时自动ROLLBACK,返回nil时自动COMMIT
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    // 1. 读取商品当前库存
//	    p, err := productRepo.FindByIDForUpdate(ctx, productID)
//	    if err != nil {
//	        return err
//	    }
//	    // 2. 写回新库存
//	    if err := productRepo.UpdateStock(ctx, p.ID, next, status); err != nil {
//	        return err // 自动回滚
//	    }
//	    // 3. 写入台账
//	    return adjustmentRepo.Create(ctx, adj) // nil则提交,非nil则回滚
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 将事务DB注入到Context中
		// Repository的getDB方法会从context提取事务DB
		txCtx := context.WithValue(ctx, "tx", tx)
		return fn(txCtx)
	})
}
