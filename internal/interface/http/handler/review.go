package handler

import (
	"github.com/gin-gonic/gin"

	appreview "github.com/xiebiao/storefront/internal/application/review"
	"github.com/xiebiao/storefront/internal/interface/http/dto"
	"github.com/xiebiao/storefront/pkg/response"
)

// ReviewHandler 商品评论HTTP处理器
type ReviewHandler struct {
	reviewUC *appreview.UseCase
}

// NewReviewHandler 创建评论处理器
func NewReviewHandler(reviewUC *appreview.UseCase) *ReviewHandler {
	return &ReviewHandler{reviewUC: reviewUC}
}

// ListReviews 商品评论列表
// @Summary      商品评论列表
// @Tags         评论
// @Produce      json
// @Param        id path int true "商品ID"
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Success      200 {object} response.Response{data=appreview.ListResponse}
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/products/{id}/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var query struct {
		Page     int `form:"page" binding:"omitempty,min=1"`
		PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.reviewUC.ListByProduct(c.Request.Context(), productID, query.Page, query.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreateReview 发表评论
// @Summary      发表评论
// @Description  评分1-5星,无需登录
// @Tags         评论
// @Accept       json
// @Produce      json
// @Param        id path int true "商品ID"
// @Param        request body dto.CreateReviewRequest true "评论内容"
// @Success      200 {object} response.Response{data=appreview.View}
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/products/{id}/reviews [post]
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.reviewUC.Create(c.Request.Context(), appreview.CreateRequest{
		ProductID: productID,
		Author:    req.Author,
		Rating:    req.Rating,
		Title:     req.Title,
		Content:   req.Content,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
