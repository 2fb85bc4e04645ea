package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	appinventory "github.com/xiebiao/storefront/internal/application/inventory"
	"github.com/xiebiao/storefront/internal/interface/http/dto"
	"github.com/xiebiao/storefront/internal/interface/http/middleware"
	"github.com/xiebiao/storefront/pkg/response"
)

// InventoryHandler 库存HTTP处理器(管理端)
// 调整、告警、报表、导出都挂在这里
type InventoryHandler struct {
	createUC  *appinventory.CreateAdjustmentUseCase
	bulkUC    *appinventory.BulkAdjustmentsUseCase
	resolveUC *appinventory.ResolveAlertUseCase
	queriesUC *appinventory.QueriesUseCase
	exportUC  *appinventory.ExportUseCase
}

// NewInventoryHandler 创建库存处理器
func NewInventoryHandler(
	createUC *appinventory.CreateAdjustmentUseCase,
	bulkUC *appinventory.BulkAdjustmentsUseCase,
	resolveUC *appinventory.ResolveAlertUseCase,
	queriesUC *appinventory.QueriesUseCase,
	exportUC *appinventory.ExportUseCase,
) *InventoryHandler {
	return &InventoryHandler{
		createUC:  createUC,
		bulkUC:    bulkUC,
		resolveUC: resolveUC,
		queriesUC: queriesUC,
		exportUC:  exportUC,
	}
}

// CreateAdjustment 库存调整
// @Summary      库存调整
// @Description  按类型调整商品库存,同一事务内更新库存、写台账、检查告警
// @Tags         库存管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAdjustmentRequest true "调整信息"
// @Success      200 {object} response.Response{data=appinventory.CreateAdjustmentResponse}
// @Failure      404 {object} response.Response "商品不存在"
// @Failure      409 {object} response.Response "库存不足"
// @Router       /api/v1/admin/inventory/adjustments [post]
func (h *InventoryHandler) CreateAdjustment(c *gin.Context) {
	var req dto.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), appinventory.CreateAdjustmentRequest{
		ProductID: req.ProductID,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Reason:    req.Reason,
		Notes:     req.Notes,
		CreatedBy: middleware.GetAdminEmail(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// BulkAdjustments 批量库存调整
// @Summary      批量库存调整
// @Description  最多100条;每条独立事务,单条失败不影响其他条目
// @Tags         库存管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.BulkAdjustmentsRequest true "调整条目列表"
// @Success      200 {object} response.Response{data=appinventory.BulkAdjustmentsResponse}
// @Router       /api/v1/admin/inventory/adjustments/bulk [post]
func (h *InventoryHandler) BulkAdjustments(c *gin.Context) {
	var req dto.BulkAdjustmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	items := make([]appinventory.CreateAdjustmentRequest, len(req.Items))
	for i, item := range req.Items {
		items[i] = appinventory.CreateAdjustmentRequest{
			ProductID: item.ProductID,
			Type:      item.Type,
			Quantity:  item.Quantity,
			Reason:    item.Reason,
			Notes:     item.Notes,
		}
	}

	result, err := h.bulkUC.Execute(c.Request.Context(), appinventory.BulkAdjustmentsRequest{
		Items:     items,
		CreatedBy: middleware.GetAdminEmail(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListAdjustments 查询调整台账
// @Summary      查询调整台账
// @Description  分页查询库存调整记录,支持商品、类型、时间范围过滤
// @Tags         库存管理
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Param        product_id query int false "商品ID"
// @Param        type query string false "调整类型"
// @Param        from query string false "起始时间(RFC3339)"
// @Param        to query string false "截止时间(RFC3339)"
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /api/v1/admin/inventory/adjustments [get]
func (h *InventoryHandler) ListAdjustments(c *gin.Context) {
	var req dto.ListAdjustmentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	ucReq := appinventory.ListAdjustmentsRequest{
		Page:      req.Page,
		PageSize:  req.PageSize,
		ProductID: req.ProductID,
		Type:      req.Type,
	}
	if req.Page == 0 {
		ucReq.Page = 1
	}
	if req.PageSize == 0 {
		ucReq.PageSize = 20
	}

	from, ok := parseTimeParam(c, "from", req.From)
	if !ok {
		return
	}
	to, ok := parseTimeParam(c, "to", req.To)
	if !ok {
		return
	}
	ucReq.From = from
	ucReq.To = to

	list, total, err := h.queriesUC.ListAdjustments(c.Request.Context(), ucReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, list, total, ucReq.Page, ucReq.PageSize)
}

// GetProductInventory 单商品库存档案
// @Summary      单商品库存档案
// @Description  当前库存快照+最近调整记录+未解决告警
// @Tags         库存管理
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response{data=appinventory.ProductInventoryResponse}
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/admin/inventory/products/{id} [get]
func (h *InventoryHandler) GetProductInventory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.queriesUC.GetProductInventory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListAlerts 未解决告警列表
// @Summary      未解决告警列表
// @Tags         库存管理
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]appinventory.AlertView}
// @Router       /api/v1/admin/inventory/alerts [get]
func (h *InventoryHandler) ListAlerts(c *gin.Context) {
	result, err := h.queriesUC.ListActiveAlerts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ResolveAlert 解决告警
// @Summary      解决告警
// @Description  幂等操作:重复解决返回already_resolved=true
// @Tags         库存管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "告警ID"
// @Param        request body dto.ResolveAlertRequest false "处理说明(可省略)"
// @Success      200 {object} response.Response{data=appinventory.ResolveAlertResponse}
// @Failure      404 {object} response.Response "告警不存在"
// @Router       /api/v1/admin/inventory/alerts/{id}/resolve [put]
func (h *InventoryHandler) ResolveAlert(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	// notes可选,不带请求体直接解决
	var req dto.ResolveAlertRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
			return
		}
	}

	result, err := h.resolveUC.Execute(c.Request.Context(), appinventory.ResolveAlertRequest{
		AlertID:    id,
		Notes:      req.Notes,
		ResolvedBy: middleware.GetAdminEmail(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Stats 库存总览统计
// @Summary      库存总览统计
// @Description  商品数、总件数、总货值、各库存状态数量、未解决告警数
// @Tags         库存报表
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=inventory.Stats}
// @Router       /api/v1/admin/inventory/stats [get]
func (h *InventoryHandler) Stats(c *gin.Context) {
	result, err := h.queriesUC.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ValueByCategory 按分类汇总货值
// @Summary      按分类汇总货值
// @Tags         库存报表
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]inventory.CategoryValue}
// @Router       /api/v1/admin/inventory/value-by-category [get]
func (h *InventoryHandler) ValueByCategory(c *gin.Context) {
	result, err := h.queriesUC.ValueByCategory(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// LowStock 低库存商品清单
// @Summary      低库存商品清单
// @Tags         库存报表
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]inventory.ProductStock}
// @Router       /api/v1/admin/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *gin.Context) {
	result, err := h.queriesUC.LowStockProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Reorder 到达补货点的商品清单
// @Summary      补货清单
// @Tags         库存报表
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]inventory.ProductStock}
// @Router       /api/v1/admin/inventory/reorder [get]
func (h *InventoryHandler) Reorder(c *gin.Context) {
	result, err := h.queriesUC.ReorderProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Export 导出库存快照
// @Summary      导出库存快照
// @Description  format=json返回标准响应包裹的快照;format=csv直接流式下载文件
// @Tags         库存报表
// @Produce      json
// @Produce      text/csv
// @Security     BearerAuth
// @Param        format query string false "导出格式" Enums(json, csv) default(json)
// @Success      200 {object} response.Response{data=appinventory.ExportSnapshot}
// @Router       /api/v1/admin/inventory/export [get]
func (h *InventoryHandler) Export(c *gin.Context) {
	format, err := appinventory.ParseExportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	switch format {
	case appinventory.ExportFormatCSV:
		filename := fmt.Sprintf("inventory_%s.csv", time.Now().Format("20060102_150405"))
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		if err := h.exportUC.WriteCSV(c.Request.Context(), c.Writer); err != nil {
			// 响应头已发出,只能中断写入并记录错误
			_ = c.Error(err)
		}
	default:
		snapshot, err := h.exportUC.Snapshot(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, snapshot)
	}
}

// parseTimeParam 解析RFC3339时间查询参数(空串返回nil)
func parseTimeParam(c *gin.Context, name, value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		response.ErrorWithCode(c, 40900, "参数"+name+"必须是RFC3339格式时间")
		return nil, false
	}
	return &t, true
}
