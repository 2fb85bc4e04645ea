package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/storefront/internal/application/catalog"
	"github.com/xiebiao/storefront/internal/interface/http/dto"
	"github.com/xiebiao/storefront/pkg/response"
)

// ProductHandler 商品HTTP处理器
// 公开接口只看上架商品;管理端接口走ManageProductsUseCase
type ProductHandler struct {
	listUC   *appcatalog.ListProductsUseCase
	detailUC *appcatalog.ProductDetailUseCase
	manageUC *appcatalog.ManageProductsUseCase
}

// NewProductHandler 创建商品处理器
func NewProductHandler(
	listUC *appcatalog.ListProductsUseCase,
	detailUC *appcatalog.ProductDetailUseCase,
	manageUC *appcatalog.ManageProductsUseCase,
) *ProductHandler {
	return &ProductHandler{
		listUC:   listUC,
		detailUC: detailUC,
		manageUC: manageUC,
	}
}

// ListProducts 商品列表(公开)
// @Summary      商品列表
// @Description  分页查询上架商品,支持搜索、分类、库存状态、价格区间过滤
// @Tags         商品
// @Produce      json
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Param        keyword query string false "搜索关键词"
// @Param        category_id query int false "分类ID(自动包含子分类)"
// @Param        stock_status query string false "库存状态" Enums(in_stock, low_stock, out_of_stock)
// @Param        sort_by query string false "排序" Enums(price_asc, price_desc, name_asc, created_at_desc)
// @Success      200 {object} response.Response{data=appcatalog.ListProductsResponse}
// @Router       /api/v1/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var req dto.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), appcatalog.ListProductsRequest{
		Page:        req.Page,
		PageSize:    req.PageSize,
		Keyword:     req.Keyword,
		CategoryID:  req.CategoryID,
		StockStatus: req.StockStatus,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		SortBy:      req.SortBy,
		OnlyActive:  true, // 公开接口只看上架商品
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetProduct 商品详情(公开)
// @Summary      商品详情
// @Description  商品信息+所属分类+评论聚合
// @Tags         商品
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response{data=appcatalog.ProductDetailResponse}
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.detailUC.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreateProduct 创建商品(管理端)
// @Summary      创建商品
// @Tags         商品管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.SaveProductRequest true "商品信息"
// @Success      200 {object} response.Response{data=appcatalog.ProductView}
// @Failure      409 {object} response.Response "SKU已存在"
// @Router       /api/v1/admin/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.manageUC.Create(c.Request.Context(), appcatalog.SaveProductRequest{
		SKU:               req.SKU,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		CategoryID:        req.CategoryID,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: req.LowStockThreshold,
		ReorderLevel:      req.ReorderLevel,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateProduct 更新商品(管理端)
// @Summary      更新商品
// @Description  更新基本信息与阈值;库存数量只能通过库存调整接口修改
// @Tags         商品管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "商品ID"
// @Param        request body dto.SaveProductRequest true "商品信息"
// @Success      200 {object} response.Response{data=appcatalog.ProductView}
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/admin/products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.manageUC.Update(c.Request.Context(), id, appcatalog.SaveProductRequest{
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		CategoryID:        req.CategoryID,
		LowStockThreshold: req.LowStockThreshold,
		ReorderLevel:      req.ReorderLevel,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteProduct 删除商品(管理端)
// @Summary      删除商品
// @Tags         商品管理
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/admin/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.manageUC.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// SetProductActive 上架/下架商品(管理端)
// @Summary      上架/下架商品
// @Tags         商品管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "商品ID"
// @Param        request body dto.SetActiveRequest true "上下架状态"
// @Success      200 {object} response.Response{data=appcatalog.ProductView}
// @Router       /api/v1/admin/products/{id}/active [put]
func (h *ProductHandler) SetProductActive(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.manageUC.SetActive(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetAdminProduct 商品详情(管理端)
// @Summary      商品详情(管理端)
// @Description  不过滤下架商品,管理端编辑页用
// @Tags         商品管理
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response{data=appcatalog.ProductView}
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/admin/products/{id} [get]
func (h *ProductHandler) GetAdminProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.manageUC.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// parseIDParam 解析路径中的数字ID参数
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, 40900, "无效的ID参数")
		return 0, false
	}
	return uint(id), true
}
