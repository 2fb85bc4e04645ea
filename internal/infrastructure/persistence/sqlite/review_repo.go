package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/storefront/internal/domain/review"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// reviewRepository 评论仓储实现(SQLite)
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评论仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

// Create 创建评论
func (r *reviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := &ReviewModel{
		ProductID: rv.ProductID,
		Author:    rv.Author,
		Rating:    rv.Rating,
		Title:     rv.Title,
		Content:   rv.Content,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建评论失败")
	}

	rv.ID = model.ID
	rv.CreatedAt = model.CreatedAt

	return nil
}

// ListByProduct 分页查询商品评论(按时间倒序)
func (r *reviewRepository) ListByProduct(ctx context.Context, productID uint, page, pageSize int) ([]*review.Review, int64, error) {
	var models []ReviewModel
	var total int64

	query := getDB(ctx, r.db).Model(&ReviewModel{}).
		Where("product_id = ?", productID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询评论总数失败")
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").
		Limit(pageSize).Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询评论列表失败")
	}

	reviews := make([]*review.Review, len(models))
	for i := range models {
		reviews[i] = &review.Review{
			ID:        models[i].ID,
			ProductID: models[i].ProductID,
			Author:    models[i].Author,
			Rating:    models[i].Rating,
			Title:     models[i].Title,
			Content:   models[i].Content,
			CreatedAt: models[i].CreatedAt,
		}
	}

	return reviews, total, nil
}

// SummaryByProduct 统计商品评论数与平均分
func (r *reviewRepository) SummaryByProduct(ctx context.Context, productID uint) (*review.Summary, error) {
	var summary review.Summary

	err := getDB(ctx, r.db).Model(&ReviewModel{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS average_rating").
		Where("product_id = ?", productID).
		Scan(&summary).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询评论统计失败")
	}

	return &summary, nil
}
