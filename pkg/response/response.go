package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// ServiceResponse 统一响应信封
// 设计说明：
// 1. 所有接口（成功与失败）都使用同一结构返回
// 2. StatusCode同时作为HTTP状态码写回（见Handle）
// 3. ResponseObject失败时为null（删除接口除外，失败时为false）
type ServiceResponse[T any] struct {
	Success        bool   `json:"success" example:"true"`
	Message        string `json:"message" example:"Books found"`
	ResponseObject T      `json:"responseObject"`
	StatusCode     int    `json:"statusCode" example:"200"`
}

// Success 构造成功信封（StatusCode默认200）
func Success[T any](message string, obj T) *ServiceResponse[T] {
	return &ServiceResponse[T]{
		Success:        true,
		Message:        message,
		ResponseObject: obj,
		StatusCode:     http.StatusOK,
	}
}

// Failure 构造失败信封
func Failure[T any](message string, obj T, statusCode int) *ServiceResponse[T] {
	return &ServiceResponse[T]{
		Success:        false,
		Message:        message,
		ResponseObject: obj,
		StatusCode:     statusCode,
	}
}

// Handle 将信封写回客户端，HTTP状态码与StatusCode一致
// 用法：
//
//	resp := bookService.FindByID(ctx, id)
//	response.Handle(c, resp)
func Handle[T any](c *gin.Context, resp *ServiceResponse[T]) {
	c.JSON(resp.StatusCode, resp)
}

// Error 将AppError转换为失败信封（用于参数校验失败、限流、panic恢复等）
// 内部错误（appErr.Err）不会返回给客户端
func Error(c *gin.Context, err error, obj any) {
	appErr := apperrors.GetAppError(err)
	c.JSON(appErr.Code, Failure(appErr.Message, obj, appErr.Code))
}

// AbortWithError 同Error，并中止后续中间件
func AbortWithError(c *gin.Context, err error) {
	Error(c, err, nil)
	c.Abort()
}
