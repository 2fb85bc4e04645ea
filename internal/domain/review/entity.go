package review

import "time"

// 评分范围
const (
	MinRating = 1
	MaxRating = 5
)

// Review 商品评论
type Review struct {
	ID        uint
	ProductID uint
	Author    string // 昵称(必填)
	Rating    int    // 1-5星
	Title     string
	Content   string // 评论正文(必填)
	CreatedAt time.Time
}

// NewReview 创建评论(工厂方法)
func NewReview(productID uint, author string, rating int, title, content string) (*Review, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, ErrInvalidRating
	}
	if author == "" || content == "" {
		return nil, ErrMissingFields
	}

	return &Review{
		ProductID: productID,
		Author:    author,
		Rating:    rating,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now(),
	}, nil
}

// Summary 商品评论聚合(详情页展示用)
type Summary struct {
	Count         int64   `json:"count"`
	AverageRating float64 `json:"average_rating"`
}
