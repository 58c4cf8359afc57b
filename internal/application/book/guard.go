package book

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/response"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

const tracerName = "book-service"

// operation 描述一个服务操作在错误边界上的表现
type operation struct {
	name           string // 指标与Span使用的操作名
	logMessage     string // 存储异常时的日志内容
	failureMessage string // 存储异常时返回给客户端的提示
}

var (
	opFindAll  = operation{name: "find_all", logMessage: "error finding all books", failureMessage: MsgRetrieveFailed}
	opSearch   = operation{name: "search", logMessage: "error searching books", failureMessage: MsgRetrieveFailed}
	opFindByID = operation{name: "find_by_id", logMessage: "error finding book", failureMessage: MsgFindBookFailed}
	opCreate   = operation{name: "create", logMessage: "error creating book", failureMessage: MsgRetrieveFailed}
	opUpdate   = operation{name: "update", logMessage: "error updating book", failureMessage: MsgRetrieveFailed}
	opDelete   = operation{name: "delete", logMessage: "error deleting book", failureMessage: MsgRetrieveFailed}
)

// guard 统一错误边界
// 设计说明:
// 1. 每个服务操作都经过这里:开启Span、记录耗时与结果指标
// 2. fn返回error即视为存储异常:记录日志(含原始错误),返回500信封,responseObject为零值
// 3. fn返回的信封(成功或业务失败)原样透传
func guard[T any](
	ctx context.Context,
	s *Service,
	op operation,
	fields []zap.Field,
	fn func(ctx context.Context) (*response.ServiceResponse[T], error),
) *response.ServiceResponse[T] {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, tracerName, "BookService."+op.name)
	defer span.End()

	resp, err := fn(ctx)
	if err != nil {
		tracing.RecordError(span, err)
		metrics.ObserveBookOperation(op.name, metrics.ResultError, time.Since(start))

		fields = append(fields,
			zap.String("operation", op.name),
			zap.String("trace_id", tracing.ExtractTraceID(ctx)),
			zap.String("span_id", tracing.ExtractSpanID(ctx)),
			zap.Error(err),
		)
		s.logger.Error(op.logMessage, fields...)

		var zero T
		return response.Failure(op.failureMessage, zero, http.StatusInternalServerError)
	}

	result := metrics.ResultSuccess
	if !resp.Success {
		result = metrics.ResultFailure
	}
	metrics.ObserveBookOperation(op.name, result, time.Since(start))

	return resp
}
