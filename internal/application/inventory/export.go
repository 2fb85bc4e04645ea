package inventory

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xiebiao/storefront/internal/domain/inventory"
	apperrors "github.com/xiebiao/storefront/pkg/errors"
)

// ExportUseCase 库存导出用例
// 设计说明:
// 1. JSON导出包含全部快照字段,用于程序间交换
// 2. CSV导出是面向表格工具的子集(sku/名称/数量/状态/阈值/货值)
// 3. CSV导出直接写入io.Writer,handler把ResponseWriter传进来,不在内存攒完整文件
type ExportUseCase struct {
	reportRepo inventory.ReportRepository
}

// NewExportUseCase 创建导出用例
func NewExportUseCase(reportRepo inventory.ReportRepository) *ExportUseCase {
	return &ExportUseCase{reportRepo: reportRepo}
}

// ExportFormat 导出格式
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatCSV  ExportFormat = "csv"
)

// ParseExportFormat 解析导出格式(空串默认JSON)
func ParseExportFormat(s string) (ExportFormat, error) {
	switch s {
	case "", "json":
		return ExportFormatJSON, nil
	case "csv":
		return ExportFormatCSV, nil
	default:
		return "", apperrors.New(apperrors.ErrCodeInvalidParams, "不支持的导出格式: "+s)
	}
}

// ExportSnapshot JSON导出的外层结构
type ExportSnapshot struct {
	GeneratedAt string                 `json:"generated_at"`
	Count       int                    `json:"count"`
	Items       []*inventory.ExportRow `json:"items"`
}

// Snapshot 构建JSON导出快照
func (uc *ExportUseCase) Snapshot(ctx context.Context) (*ExportSnapshot, error) {
	rows, err := uc.reportRepo.ExportRows(ctx)
	if err != nil {
		return nil, err
	}

	return &ExportSnapshot{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Count:       len(rows),
		Items:       rows,
	}, nil
}

// WriteCSV 将库存快照以CSV格式写入w
// 价格和货值以"元"输出(两位小数),方便直接在表格工具里查看
func (uc *ExportUseCase) WriteCSV(ctx context.Context, w io.Writer) error {
	rows, err := uc.reportRepo.ExportRows(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	header := []string{"sku", "name", "category", "price_yuan", "stock_quantity",
		"stock_status", "low_stock_threshold", "reorder_level", "stock_value_yuan"}
	if err := cw.Write(header); err != nil {
		return apperrors.Wrap(err, "写入CSV表头失败")
	}

	for _, row := range rows {
		record := []string{
			row.SKU,
			row.Name,
			row.CategoryName,
			formatYuan(row.Price),
			strconv.Itoa(row.StockQuantity),
			row.StockStatus,
			strconv.Itoa(row.LowStockThreshold),
			strconv.Itoa(row.ReorderLevel),
			formatYuan(row.StockValue),
		}
		if err := cw.Write(record); err != nil {
			return apperrors.Wrap(err, "写入CSV行失败")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperrors.Wrap(err, "刷新CSV失败")
	}
	return nil
}

// formatYuan 格式化金额(分→元)
func formatYuan(fen int64) string {
	return fmt.Sprintf("%.2f", float64(fen)/100.0)
}
