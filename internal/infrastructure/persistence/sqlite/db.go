package sqlite

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/storefront/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2 + SQLite驱动,单文件嵌入式存储
// 2. SQLite是单写者模型:MaxOpenConns建议设为1,
//    配合DSN中的_busy_timeout避免"database is locked"
// 3. 开发环境开启SQL日志,生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 确保数据目录存在
	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("创建数据目录失败: %w", err)
		}
	}

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(sqlite.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	// SQLite写锁是库级别的,连接数设为1可以从源头避免写冲突
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	// 6. 自动迁移表结构（开发环境）
	// 注意：生产环境应使用版本化的迁移脚本,不要依赖AutoMigrate
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
func autoMigrate(db *gorm.DB) error {
	// 注意：这里使用GORM的模型定义（带tag）,不是domain层的实体
	return db.AutoMigrate(
		&CategoryModel{},
		&ProductModel{},
		&InventoryAdjustmentModel{},
		&LowStockAlertModel{},
		&CartItemModel{},
		&WishlistItemModel{},
		&ReviewModel{},
		&AdminUserModel{},
	)
}

// ProductModel GORM商品模型
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. SKU有唯一索引,防止重复
// 3. stock_status是冗余存储的派生列,列表按状态过滤时直接走索引
type ProductModel struct {
	ID                uint           `gorm:"primaryKey"`
	SKU               string         `gorm:"uniqueIndex;size:64;not null;comment:商品编码"`
	Name              string         `gorm:"index:idx_search;size:200;not null;comment:商品名称"`
	Description       string         `gorm:"type:text;comment:商品描述"`
	Price             int64          `gorm:"index:idx_list;not null;comment:价格(分)"`
	CategoryID        *uint          `gorm:"index;comment:分类ID"`
	StockQuantity     int            `gorm:"default:0;comment:库存数量"`
	StockStatus       string         `gorm:"index;size:20;not null;comment:库存状态(派生)"`
	LowStockThreshold int            `gorm:"default:10;comment:低库存阈值"`
	ReorderLevel      int            `gorm:"default:5;comment:补货点"`
	IsActive          bool           `gorm:"index;default:true;comment:是否上架"`
	CreatedAt         time.Time      `gorm:"index:idx_list;comment:创建时间"`
	UpdatedAt         time.Time      `gorm:"comment:更新时间"`
	DeletedAt         gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel GORM分类模型
type CategoryModel struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"size:100;not null;comment:分类名称"`
	Slug        string         `gorm:"uniqueIndex;size:100;not null;comment:URL标识"`
	Description string         `gorm:"type:text;comment:分类描述"`
	ParentID    *uint          `gorm:"index;comment:父分类ID"`
	CreatedAt   time.Time      `gorm:"comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// InventoryAdjustmentModel GORM库存调整台账模型
// 设计说明:
// 1. 台账只增不改,没有UpdatedAt/DeletedAt
// 2. (product_id, created_at)复合索引服务商品维度的历史查询
type InventoryAdjustmentModel struct {
	ID        uint      `gorm:"primaryKey"`
	ProductID uint      `gorm:"index:idx_product_time;not null;comment:商品ID"`
	Type      string    `gorm:"index;size:20;not null;comment:调整类型"`
	Quantity  int       `gorm:"not null;comment:调整数量"`
	Reason    string    `gorm:"size:200;not null;comment:调整原因"`
	Notes     string    `gorm:"type:text;comment:备注"`
	CreatedBy string    `gorm:"size:100;comment:操作人"`
	CreatedAt time.Time `gorm:"index:idx_product_time;index;comment:创建时间"`
}

// TableName 指定表名
func (InventoryAdjustmentModel) TableName() string {
	return "inventory_adjustments"
}

// LowStockAlertModel GORM库存告警模型
// 设计说明:
// 1. 告警是粘性的:库存回升不会自动解决,只能人工Resolve
// 2. (product_id, alert_type, is_resolved)索引服务"同类型未解决告警唯一"检查
type LowStockAlertModel struct {
	ID              uint       `gorm:"primaryKey"`
	ProductID       uint       `gorm:"index:idx_open_alert;not null;comment:商品ID"`
	AlertType       string     `gorm:"index:idx_open_alert;size:20;not null;comment:告警类型"`
	CurrentQuantity int        `gorm:"not null;comment:触发时库存"`
	Threshold       int        `gorm:"not null;comment:触发阈值"`
	IsResolved      bool       `gorm:"index:idx_open_alert;default:false;comment:是否已解决"`
	ResolvedAt      *time.Time `gorm:"comment:解决时间"`
	CreatedAt       time.Time  `gorm:"index;comment:创建时间"`
}

// TableName 指定表名
func (LowStockAlertModel) TableName() string {
	return "low_stock_alerts"
}

// CartItemModel GORM购物车条目模型
// (session_id, product_id)唯一:同一商品重复加购走数量合并
type CartItemModel struct {
	ID        uint      `gorm:"primaryKey"`
	SessionID string    `gorm:"uniqueIndex:idx_session_product;size:64;not null;comment:会话ID"`
	ProductID uint      `gorm:"uniqueIndex:idx_session_product;not null;comment:商品ID"`
	Quantity  int       `gorm:"not null;comment:数量"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CartItemModel) TableName() string {
	return "cart_items"
}

// WishlistItemModel GORM心愿单条目模型
type WishlistItemModel struct {
	ID        uint      `gorm:"primaryKey"`
	SessionID string    `gorm:"uniqueIndex:idx_wish_session_product;size:64;not null;comment:会话ID"`
	ProductID uint      `gorm:"uniqueIndex:idx_wish_session_product;not null;comment:商品ID"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}

// ReviewModel GORM评论模型
type ReviewModel struct {
	ID        uint      `gorm:"primaryKey"`
	ProductID uint      `gorm:"index:idx_review_product_time;not null;comment:商品ID"`
	Author    string    `gorm:"size:100;not null;comment:昵称"`
	Rating    int       `gorm:"not null;comment:评分(1-5)"`
	Title     string    `gorm:"size:200;comment:标题"`
	Content   string    `gorm:"type:text;not null;comment:评论正文"`
	CreatedAt time.Time `gorm:"index:idx_review_product_time;comment:创建时间"`
}

// TableName 指定表名
func (ReviewModel) TableName() string {
	return "reviews"
}

// AdminUserModel GORM管理员模型
type AdminUserModel struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string    `gorm:"size:255;not null;comment:密码(bcrypt加密)"`
	Nickname  string    `gorm:"size:50;not null;comment:昵称"`
	IsActive  bool      `gorm:"default:true;comment:是否启用"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (AdminUserModel) TableName() string {
	return "admin_users"
}
