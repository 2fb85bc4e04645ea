package dto

// CreateAdjustmentRequest HTTP库存调整请求
// validator tag说明:
// - type必须是七种调整类型之一
// - quantity不加required:validator把0当缺失,而盘点(adjustment)清零
//   必须允许quantity=0;数量与类型的搭配校验在领域层
type CreateAdjustmentRequest struct {
	ProductID uint   `json:"product_id" binding:"required" example:"1"`
	Type      string `json:"type" binding:"required,oneof=purchase sale return damage theft adjustment transfer" example:"purchase"`
	Quantity  int    `json:"quantity" example:"50"`
	Reason    string `json:"reason" binding:"required,max=200" example:"采购入库"`
	Notes     string `json:"notes" binding:"max=2000" example:"供应商A,批次20260825"`
}

// BulkAdjustmentItem 批量调整条目
// 条目不做字段级校验:批量语义是逐条独立结算,单条非法(类型错误、
// reason缺失等)由领域层逐条拒绝并记入该条的失败结果,不能拖垮整批
type BulkAdjustmentItem struct {
	ProductID uint   `json:"product_id" example:"1"`
	Type      string `json:"type" example:"purchase"`
	Quantity  int    `json:"quantity" example:"50"`
	Reason    string `json:"reason" example:"采购入库"`
	Notes     string `json:"notes" example:"供应商A,批次20260825"`
}

// BulkAdjustmentsRequest HTTP批量库存调整请求
// 只校验批次本身(非空、不超过100条)
type BulkAdjustmentsRequest struct {
	Items []BulkAdjustmentItem `json:"items" binding:"required,min=1,max=100"`
}

// ListAdjustmentsRequest HTTP台账查询请求
// from/to接受RFC3339格式时间
type ListAdjustmentsRequest struct {
	Page      int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
	ProductID uint   `form:"product_id" binding:"omitempty" example:"1"`
	Type      string `form:"type" binding:"omitempty" example:"sale"`
	From      string `form:"from" binding:"omitempty" example:"2026-08-01T00:00:00Z"`
	To        string `form:"to" binding:"omitempty" example:"2026-08-31T23:59:59Z"`
}

// ResolveAlertRequest HTTP解决告警请求
// notes只进日志不落库
type ResolveAlertRequest struct {
	Notes string `json:"notes" binding:"max=2000" example:"已向供应商下补货单"`
}
