package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/storefront/internal/application/catalog"
	"github.com/xiebiao/storefront/internal/interface/http/dto"
	"github.com/xiebiao/storefront/pkg/response"
)

// CategoryHandler 分类HTTP处理器
type CategoryHandler struct {
	treeUC   *appcatalog.CategoryTreeUseCase
	manageUC *appcatalog.ManageCategoriesUseCase
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(
	treeUC *appcatalog.CategoryTreeUseCase,
	manageUC *appcatalog.ManageCategoriesUseCase,
) *CategoryHandler {
	return &CategoryHandler{
		treeUC:   treeUC,
		manageUC: manageUC,
	}
}

// GetTree 分类树(公开)
// @Summary      分类树
// @Description  全部分类组装成树,节点含(子孙累加的)商品数
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response{data=appcatalog.CategoryTreeResponse}
// @Router       /api/v1/categories/tree [get]
func (h *CategoryHandler) GetTree(c *gin.Context) {
	result, err := h.treeUC.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListCategories 分类列表(管理端,平铺)
// @Summary      分类列表
// @Tags         分类管理
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]appcatalog.CategoryView}
// @Router       /api/v1/admin/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.manageUC.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetCategory 分类详情(管理端)
// @Summary      分类详情
// @Tags         分类管理
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response{data=appcatalog.CategoryView}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/admin/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
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

// CreateCategory 创建分类(管理端)
// @Summary      创建分类
// @Tags         分类管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.SaveCategoryRequest true "分类信息"
// @Success      200 {object} response.Response{data=appcatalog.CategoryView}
// @Failure      409 {object} response.Response "slug已存在"
// @Router       /api/v1/admin/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.SaveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.manageUC.Create(c.Request.Context(), appcatalog.SaveCategoryRequest{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateCategory 更新分类(管理端)
// @Summary      更新分类
// @Tags         分类管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Param        request body dto.SaveCategoryRequest true "分类信息"
// @Success      200 {object} response.Response{data=appcatalog.CategoryView}
// @Failure      404 {object} response.Response "分类不存在"
// @Router       /api/v1/admin/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SaveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.manageUC.Update(c.Request.Context(), id, appcatalog.SaveCategoryRequest{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteCategory 删除分类(管理端)
// @Summary      删除分类
// @Description  分类下存在商品或子分类时拒绝删除
// @Tags         分类管理
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "分类不存在"
// @Failure      409 {object} response.Response "分类非空"
// @Router       /api/v1/admin/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
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
