package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/storefront/internal/application/cart"
	"github.com/xiebiao/storefront/internal/interface/http/dto"
	"github.com/xiebiao/storefront/internal/interface/http/middleware"
	"github.com/xiebiao/storefront/pkg/response"
)

// CartHandler 购物车HTTP处理器
// 所有接口按X-Session-ID归属会话,变更接口都返回完整购物车,
// 前端不用再发一次GET
type CartHandler struct {
	cartUC *appcart.UseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(cartUC *appcart.UseCase) *CartHandler {
	return &CartHandler{cartUC: cartUC}
}

// GetCart 查询购物车
// @Summary      查询购物车
// @Tags         购物车
// @Produce      json
// @Param        X-Session-ID header string false "会话ID"
// @Success      200 {object} response.Response{data=appcart.CartResponse}
// @Router       /api/v1/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	result, err := h.cartUC.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// AddItem 加购商品
// @Summary      加购商品
// @Description  已在购物车中的商品合并数量;下架或售罄商品拒绝加购
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "会话ID"
// @Param        request body dto.AddCartItemRequest true "加购信息"
// @Success      200 {object} response.Response{data=appcart.CartResponse}
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.cartUC.AddItem(c.Request.Context(), appcart.AddItemRequest{
		SessionID: middleware.GetSessionID(c),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateItem 修改条目数量
// @Summary      修改购物车条目数量
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "会话ID"
// @Param        id path int true "条目ID"
// @Param        request body dto.UpdateCartItemRequest true "数量"
// @Success      200 {object} response.Response{data=appcart.CartResponse}
// @Failure      404 {object} response.Response "条目不存在"
// @Router       /api/v1/cart/items/{id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.cartUC.UpdateItem(c.Request.Context(), middleware.GetSessionID(c), id, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// RemoveItem 删除条目
// @Summary      删除购物车条目
// @Tags         购物车
// @Produce      json
// @Param        X-Session-ID header string false "会话ID"
// @Param        id path int true "条目ID"
// @Success      200 {object} response.Response{data=appcart.CartResponse}
// @Router       /api/v1/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.cartUC.RemoveItem(c.Request.Context(), middleware.GetSessionID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ClearCart 清空购物车
// @Summary      清空购物车
// @Tags         购物车
// @Produce      json
// @Param        X-Session-ID header string false "会话ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartUC.Clear(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
