// Package metrics 基于Prometheus的指标收集
//
// 指标分两类：
//   - HTTP指标：由middleware.Metrics记录（请求数、耗时、处理中请求数）
//   - 业务指标：由应用层记录每个图书操作的结果与耗时
//
// 命名规范：
//   - Counter以`_total`结尾
//   - Histogram以单位结尾（`_seconds`）
//
// 标签只使用有限取值（method、路由模板、status、operation、result），
// 不使用图书ID等高基数字段。
//
// 使用示例：
//
//	metrics.InitMetrics()
//	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	start := time.Now()
//	resp := doSomething()
//	metrics.ObserveBookOperation("create", metrics.ResultSuccess, time.Since(start))
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 图书操作结果标签取值
const (
	ResultSuccess = "success" // 成功
	ResultFailure = "failure" // 业务失败（不存在、创建被拒绝）
	ResultError   = "error"   // 存储层异常
)

var (
	// initOnce 保证只注册一次（重复注册会panic）
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板，如/books/:id）、status（200/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// HTTPRequestsRateLimited 被限流拒绝的请求数（Counter）
	HTTPRequestsRateLimited prometheus.Counter

	// 业务指标

	// BookOperationsTotal 图书操作总数（Counter）
	// 标签：operation（find_all/search/find_by_id/create/update/delete）、result（success/failure/error）
	BookOperationsTotal *prometheus.CounterVec

	// BookOperationDuration 图书操作耗时（Histogram，含数据库往返）
	BookOperationDuration *prometheus.HistogramVec
)

// InitMetrics 初始化并注册所有指标到默认Registry
// 可重复调用，只有第一次生效
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		HTTPRequestsRateLimited = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "http_requests_rate_limited_total",
				Help: "被限流拒绝的HTTP请求数",
			},
		)

		BookOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "book_operations_total",
				Help: "图书操作总数",
			},
			[]string{"operation", "result"},
		)

		BookOperationDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "book_operation_duration_seconds",
				Help: "图书操作耗时（秒）",
				// 单条SQL为主，全文检索稍慢
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"operation"},
		)
	})
}

// ObserveBookOperation 记录一次图书操作的结果与耗时
func ObserveBookOperation(operation, result string, elapsed time.Duration) {
	InitMetrics()
	BookOperationsTotal.WithLabelValues(operation, result).Inc()
	BookOperationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveHTTPRequest 记录一次HTTP请求
func ObserveHTTPRequest(method, path, status string, elapsed time.Duration) {
	InitMetrics()
	HTTPRequestsTotal.With(prometheus.Labels{"method": method, "path": path, "status": status}).Inc()
	HTTPRequestDuration.With(prometheus.Labels{"method": method, "path": path}).Observe(elapsed.Seconds())
}

// IncCounter 递增Counter（便捷函数）
func IncCounter(counter prometheus.Counter) {
	counter.Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}
