package category

import (
	"context"
	"regexp"
)

// Service 分类领域服务接口
type Service interface {
	// CreateCategory 创建分类
	// 业务规则:slug格式合法且唯一;父分类必须存在
	CreateCategory(ctx context.Context, name, slug, description string, parentID *uint) (*Category, error)

	// GetCategory 根据ID获取分类
	GetCategory(ctx context.Context, id uint) (*Category, error)

	// UpdateCategory 更新分类
	// 业务规则:不能把自己设置为父分类(防止环)
	UpdateCategory(ctx context.Context, id uint, name, slug, description string, parentID *uint) (*Category, error)

	// DeleteCategory 删除分类
	// 业务规则:分类下仍有商品或子分类时拒绝删除
	DeleteCategory(ctx context.Context, id uint) error

	// ListAll 加载全部分类
	ListAll(ctx context.Context) ([]*Category, error)

	// DescendantIDs 展开分类及其所有子孙分类的ID
	DescendantIDs(ctx context.Context, id uint) ([]uint, error)
}

type service struct {
	repo Repository
}

// NewService 创建分类领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// slugPattern slug格式:小写字母数字和连字符
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// CreateCategory 创建分类
func (s *service) CreateCategory(ctx context.Context, name, slug, description string, parentID *uint) (*Category, error) {
	if !slugPattern.MatchString(slug) {
		return nil, ErrInvalidSlug
	}

	// slug唯一性检查
	existing, err := s.repo.FindBySlug(ctx, slug)
	if err == nil && existing != nil {
		return nil, ErrSlugDuplicate
	}
	if err != nil && err != ErrCategoryNotFound {
		return nil, err
	}

	// 父分类存在性检查
	if parentID != nil {
		if _, err := s.repo.FindByID(ctx, *parentID); err != nil {
			return nil, ErrInvalidParent
		}
	}

	c := NewCategory(name, slug, description, parentID)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetCategory 根据ID获取分类
func (s *service) GetCategory(ctx context.Context, id uint) (*Category, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateCategory 更新分类
func (s *service) UpdateCategory(ctx context.Context, id uint, name, slug, description string, parentID *uint) (*Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 防环:不能以自己(或自己的子孙)为父
	if parentID != nil {
		if *parentID == id {
			return nil, ErrInvalidParent
		}
		descendants, err := s.DescendantIDs(ctx, id)
		if err != nil {
			return nil, err
		}
		for _, d := range descendants {
			if d == *parentID {
				return nil, ErrInvalidParent
			}
		}
		if _, err := s.repo.FindByID(ctx, *parentID); err != nil {
			return nil, ErrInvalidParent
		}
	}

	c.UpdateInfo(name, slug, description, parentID)
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory 删除分类
func (s *service) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	hasChildren, err := s.repo.HasChildren(ctx, id)
	if err != nil {
		return err
	}
	hasProducts, err := s.repo.HasProducts(ctx, id)
	if err != nil {
		return err
	}
	if hasChildren || hasProducts {
		return ErrCategoryNotEmpty
	}

	return s.repo.Delete(ctx, id)
}

// ListAll 加载全部分类
func (s *service) ListAll(ctx context.Context) ([]*Category, error) {
	return s.repo.ListAll(ctx)
}

// DescendantIDs 展开分类及其所有子孙分类的ID
func (s *service) DescendantIDs(ctx context.Context, id uint) ([]uint, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return ExpandDescendants(all, id), nil
}
