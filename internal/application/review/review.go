package review

import (
	"context"
	"time"

	"github.com/xiebiao/storefront/internal/domain/product"
	"github.com/xiebiao/storefront/internal/domain/review"
)

// UseCase 商品评论用例
// 评论是公开提交的(无需登录),评分1-5星;商品必须存在才能评论
type UseCase struct {
	reviewRepo  review.Repository
	productRepo product.Repository
}

// NewUseCase 创建评论用例
func NewUseCase(reviewRepo review.Repository, productRepo product.Repository) *UseCase {
	return &UseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// CreateRequest 创建评论请求DTO
type CreateRequest struct {
	ProductID uint
	Author    string
	Rating    int
	Title     string
	Content   string
}

// View 评论视图DTO
type View struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"product_id"`
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Title     string `json:"title,omitempty"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// Create 创建评论
func (uc *UseCase) Create(ctx context.Context, req CreateRequest) (*View, error) {
	// 商品存在性检查
	if _, err := uc.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	r, err := review.NewReview(req.ProductID, req.Author, req.Rating, req.Title, req.Content)
	if err != nil {
		return nil, err
	}

	if err := uc.reviewRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	return toView(r), nil
}

// ListResponse 评论列表响应DTO
type ListResponse struct {
	List          []*View `json:"list"`
	Total         int64   `json:"total"`
	AverageRating float64 `json:"average_rating"`
	Page          int     `json:"page"`
	PageSize      int     `json:"page_size"`
}

// ListByProduct 分页查询商品评论
func (uc *UseCase) ListByProduct(ctx context.Context, productID uint, page, pageSize int) (*ListResponse, error) {
	if _, err := uc.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	reviews, total, err := uc.reviewRepo.ListByProduct(ctx, productID, page, pageSize)
	if err != nil {
		return nil, err
	}

	summary, err := uc.reviewRepo.SummaryByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	views := make([]*View, len(reviews))
	for i, r := range reviews {
		views[i] = toView(r)
	}

	return &ListResponse{
		List:          views,
		Total:         total,
		AverageRating: summary.AverageRating,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// toView 领域实体 → 视图DTO
func toView(r *review.Review) *View {
	return &View{
		ID:        r.ID,
		ProductID: r.ProductID,
		Author:    r.Author,
		Rating:    r.Rating,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}
