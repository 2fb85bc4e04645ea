package inventory

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/storefront/internal/domain/inventory"
)

// ResolveAlertUseCase 解决库存告警用例
// 设计说明:
// 1. 幂等:重复解决同一条告警返回AlreadyResolved=true,不报错也不改写解决时间
// 2. 解决备注只进日志不落库:告警表保持窄表,审计走日志系统
type ResolveAlertUseCase struct {
	alertRepo inventory.AlertRepository
	logger    *zap.Logger
}

// NewResolveAlertUseCase 创建解决告警用例
func NewResolveAlertUseCase(alertRepo inventory.AlertRepository, logger *zap.Logger) *ResolveAlertUseCase {
	return &ResolveAlertUseCase{
		alertRepo: alertRepo,
		logger:    logger,
	}
}

// ResolveAlertRequest 解决告警请求DTO
type ResolveAlertRequest struct {
	AlertID    uint
	Notes      string // 处理说明(仅记日志)
	ResolvedBy string // 操作人(从JWT中提取)
}

// ResolveAlertResponse 解决告警响应DTO
type ResolveAlertResponse struct {
	AlertID         uint   `json:"alert_id"`
	AlreadyResolved bool   `json:"already_resolved"`
	ResolvedAt      string `json:"resolved_at,omitempty"`
}

// Execute 执行解决告警
func (uc *ResolveAlertUseCase) Execute(ctx context.Context, req ResolveAlertRequest) (*ResolveAlertResponse, error) {
	now := time.Now()

	resolved, err := uc.alertRepo.Resolve(ctx, req.AlertID, now)
	if err != nil {
		return nil, err
	}

	if !resolved {
		// RowsAffected为0有两种可能:告警不存在(404)或已解决(幂等成功)
		alert, err := uc.alertRepo.FindByID(ctx, req.AlertID)
		if err != nil {
			return nil, err
		}

		resp := &ResolveAlertResponse{
			AlertID:         req.AlertID,
			AlreadyResolved: true,
		}
		if alert.ResolvedAt != nil {
			resp.ResolvedAt = alert.ResolvedAt.Format(time.RFC3339)
		}
		return resp, nil
	}

	uc.logger.Info("库存告警已解决",
		zap.Uint("alert_id", req.AlertID),
		zap.String("resolved_by", req.ResolvedBy),
		zap.String("notes", req.Notes),
	)

	return &ResolveAlertResponse{
		AlertID:    req.AlertID,
		ResolvedAt: now.Format(time.RFC3339),
	}, nil
}
