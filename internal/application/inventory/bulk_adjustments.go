package inventory

import (
	"context"

	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// BulkAdjustmentsUseCase 批量库存调整用例
// 设计说明:
// 1. 每个条目独立开事务:一个条目失败不影响其他条目
//    (到货清点场景:一箱里有一件对不上,不应该拦住其他几十件入库)
// 2. 响应逐条返回成败,调用方据此重试失败项
type BulkAdjustmentsUseCase struct {
	createUC *CreateAdjustmentUseCase
}

// NewBulkAdjustmentsUseCase 创建批量调整用例
func NewBulkAdjustmentsUseCase(createUC *CreateAdjustmentUseCase) *BulkAdjustmentsUseCase {
	return &BulkAdjustmentsUseCase{createUC: createUC}
}

// BulkAdjustmentsRequest 批量调整请求DTO
type BulkAdjustmentsRequest struct {
	Items     []CreateAdjustmentRequest
	CreatedBy string
}

// BulkItemResult 单条调整结果
type BulkItemResult struct {
	ProductID    uint   `json:"product_id"`
	Success      bool   `json:"success"`
	AdjustmentID uint   `json:"adjustment_id,omitempty"`
	NewQuantity  int    `json:"new_quantity,omitempty"`
	ErrorCode    int    `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// BulkAdjustmentsResponse 批量调整响应DTO
type BulkAdjustmentsResponse struct {
	Total     int              `json:"total"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Results   []BulkItemResult `json:"results"`
}

// Execute 执行批量调整
// 条目按提交顺序逐个处理,结果顺序与请求顺序一致
func (uc *BulkAdjustmentsUseCase) Execute(ctx context.Context, req BulkAdjustmentsRequest) (*BulkAdjustmentsResponse, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "调整条目不能为空")
	}

	resp := &BulkAdjustmentsResponse{
		Total:   len(req.Items),
		Results: make([]BulkItemResult, 0, len(req.Items)),
	}

	for _, item := range req.Items {
		if item.CreatedBy == "" {
			item.CreatedBy = req.CreatedBy
		}

		result, err := uc.createUC.Execute(ctx, item)
		if err != nil {
			appErr := apperrors.GetAppError(err)
			resp.Failed++
			resp.Results = append(resp.Results, BulkItemResult{
				ProductID:    item.ProductID,
				Success:      false,
				ErrorCode:    appErr.Code,
				ErrorMessage: appErr.Message,
			})
			continue
		}

		resp.Succeeded++
		resp.Results = append(resp.Results, BulkItemResult{
			ProductID:    item.ProductID,
			Success:      true,
			AdjustmentID: result.AdjustmentID,
			NewQuantity:  result.NewQuantity,
		})
	}

	return resp, nil
}
