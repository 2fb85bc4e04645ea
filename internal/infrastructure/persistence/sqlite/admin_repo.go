package sqlite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/storefront/internal/domain/admin"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// adminRepository 管理员仓储实现(SQLite)
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository 创建管理员仓储
func NewAdminRepository(db *gorm.DB) admin.Repository {
	return &adminRepository{db: db}
}

// Create 创建管理员
func (r *adminRepository) Create(ctx context.Context, a *admin.Admin) error {
	model := &AdminUserModel{
		Email:    a.Email,
		Password: a.Password,
		Nickname: a.Nickname,
		IsActive: a.IsActive,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.New(apperrors.ErrCodeDuplicateEntry, "邮箱已被注册")
		}
		return apperrors.Wrap(err, "创建管理员失败")
	}

	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 按ID查询
func (r *adminRepository) FindByID(ctx context.Context, id uint) (*admin.Admin, error) {
	var model AdminUserModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, admin.ErrAdminNotFound
		}
		return nil, apperrors.Wrap(err, "查询管理员失败")
	}

	return toAdminEntity(&model), nil
}

// FindByEmail 按邮箱查询
func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	var model AdminUserModel
	err := getDB(ctx, r.db).Where("email = ?", email).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, admin.ErrAdminNotFound
		}
		return nil, apperrors.Wrap(err, "查询管理员失败")
	}

	return toAdminEntity(&model), nil
}

// toAdminEntity GORM模型 → 领域实体
func toAdminEntity(model *AdminUserModel) *admin.Admin {
	return &admin.Admin{
		ID:        model.ID,
		Email:     model.Email,
		Password:  model.Password,
		Nickname:  model.Nickname,
		IsActive:  model.IsActive,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
