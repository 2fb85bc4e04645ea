// Package metrics 提供基于Prometheus的指标收集
//
// 指标分两类：
// - HTTP指标：请求总数、耗时分布、处理中请求数（由gin中间件记录）
// - 业务指标：库存调整次数、告警产生数、缓存命中情况
//
// 命名规范：
// - Counter以_total结尾（storefront_inventory_adjustments_total）
// - Histogram以单位结尾（storefront_http_request_duration_seconds）
// - 标签只用低基数维度（method、path、status、type），不要用product_id
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板）、status（200/404/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 库存业务指标

	// InventoryAdjustmentsTotal 库存调整总数（Counter）
	// 标签：type（purchase/sale/...）、result（success/failure）
	InventoryAdjustmentsTotal *prometheus.CounterVec

	// LowStockAlertsTotal 库存告警产生总数（Counter）
	// 标签：alert_type（low_stock/reorder）
	LowStockAlertsTotal *prometheus.CounterVec

	// AdjustmentDuration 库存调整耗时（Histogram）
	AdjustmentDuration prometheus.Histogram

	// 缓存指标

	// CacheRequestsTotal 缓存查询总数（Counter）
	// 标签：kind（product_list/product_detail/category_tree）、result（hit/miss）
	CacheRequestsTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次，注册所有指标到默认Registry
func InitMetrics() {
	// 防止重复初始化（promauto重复注册会panic）
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_http_requests_total",
		Help: "HTTP请求总数",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_http_request_duration_seconds",
		Help:    "HTTP请求耗时分布",
		Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"method", "path"})

	HTTPRequestsInProgress = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_http_requests_in_progress",
		Help: "正在处理的HTTP请求数",
	})

	InventoryAdjustmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_inventory_adjustments_total",
		Help: "库存调整总数",
	}, []string{"type", "result"})

	LowStockAlertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_low_stock_alerts_total",
		Help: "库存告警产生总数",
	}, []string{"alert_type"})

	AdjustmentDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_inventory_adjustment_duration_seconds",
		Help:    "库存调整事务耗时分布",
		Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1},
	})

	CacheRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cache_requests_total",
		Help: "缓存查询总数",
	}, []string{"kind", "result"})
}
