package handler

import (
	"github.com/gin-gonic/gin"

	appwishlist "github.com/xiebiao/storefront/internal/application/wishlist"
	"github.com/xiebiao/storefront/internal/interface/http/dto"
	"github.com/xiebiao/storefront/internal/interface/http/middleware"
	"github.com/xiebiao/storefront/pkg/response"
)

// WishlistHandler 心愿单HTTP处理器
type WishlistHandler struct {
	wishlistUC *appwishlist.UseCase
}

// NewWishlistHandler 创建心愿单处理器
func NewWishlistHandler(wishlistUC *appwishlist.UseCase) *WishlistHandler {
	return &WishlistHandler{wishlistUC: wishlistUC}
}

// List 查询心愿单
// @Summary      查询心愿单
// @Tags         心愿单
// @Produce      json
// @Param        X-Session-ID header string false "会话ID"
// @Success      200 {object} response.Response{data=[]appwishlist.ItemView}
// @Router       /api/v1/wishlist [get]
func (h *WishlistHandler) List(c *gin.Context) {
	result, err := h.wishlistUC.List(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Add 收藏商品
// @Summary      收藏商品
// @Description  幂等操作:重复收藏不报错;下架商品也可以收藏
// @Tags         心愿单
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "会话ID"
// @Param        request body dto.WishlistRequest true "商品ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/wishlist [post]
func (h *WishlistHandler) Add(c *gin.Context) {
	var req dto.WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	if err := h.wishlistUC.Add(c.Request.Context(), middleware.GetSessionID(c), req.ProductID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// Remove 取消收藏
// @Summary      取消收藏
// @Tags         心愿单
// @Produce      json
// @Param        X-Session-ID header string false "会话ID"
// @Param        product_id path int true "商品ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/wishlist/{product_id} [delete]
func (h *WishlistHandler) Remove(c *gin.Context) {
	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	if err := h.wishlistUC.Remove(c.Request.Context(), middleware.GetSessionID(c), productID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
