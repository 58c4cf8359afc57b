package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// BookHandler 图书HTTP处理器
// 设计说明:
// 1. 只负责参数绑定与校验,校验失败直接返回400,不调用应用服务
// 2. 应用服务返回的信封原样写回,HTTP状态码与statusCode一致
type BookHandler struct {
	service *appbook.Service
}

// NewBookHandler 创建图书处理器
func NewBookHandler(service *appbook.Service) *BookHandler {
	return &BookHandler{
		service: service,
	}
}

// RegisterRoutes 注册图书路由
func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListBooks)
	rg.GET("/:id", h.GetBook)
	rg.POST("", h.CreateBook)
	rg.PUT("/:id", h.UpdateBook)
	rg.DELETE("/:id", h.DeleteBook)
}

// ListBooks 查询图书列表
// @Summary      查询图书列表
// @Description  search非空时按title/author/genres全文检索,否则分页列出
// @Tags         Book
// @Produce      json
// @Param        search query string false "全文检索关键词"
// @Param        limit  query int    false "返回条数" minimum(0)
// @Param        offset query int    false "偏移量" minimum(0)
// @Success      200 {object} response.ServiceResponse[[]book.Book]
// @Failure      400 {object} response.ServiceResponse[[]dto.FieldError] "参数错误"
// @Failure      404 {object} response.ServiceResponse[book.Book] "No Books found"
// @Failure      500 {object} response.ServiceResponse[book.Book] "存储异常"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var query dto.ListBooksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		invalidInput(c, err)
		return
	}

	resp := h.service.FindAll(c.Request.Context(), appbook.ListQuery{
		Search: query.Search,
		Limit:  query.Limit,
		Offset: query.Offset,
	})
	response.Handle(c, resp)
}

// GetBook 查询图书详情
// @Summary      查询图书详情
// @Tags         Book
// @Produce      json
// @Param        id path string true "图书ID(UUID)"
// @Success      200 {object} response.ServiceResponse[book.Book]
// @Failure      400 {object} response.ServiceResponse[[]dto.FieldError] "ID格式错误"
// @Failure      404 {object} response.ServiceResponse[book.Book] "Book not found"
// @Failure      500 {object} response.ServiceResponse[book.Book] "存储异常"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	var uri dto.BookIDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		invalidInput(c, err)
		return
	}

	response.Handle(c, h.service.FindByID(c.Request.Context(), uri.ID))
}

// CreateBook 创建图书
// @Summary      创建图书
// @Tags         Book
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      200 {object} response.ServiceResponse[book.Book]
// @Failure      400 {object} response.ServiceResponse[[]dto.FieldError] "参数错误或创建失败"
// @Failure      500 {object} response.ServiceResponse[book.Book] "存储异常"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	resp := h.service.Create(c.Request.Context(), appbook.CreateInput{
		ID:            req.ID,
		Title:         req.Title,
		Author:        req.Author,
		Genres:        req.Genres,
		Stock:         req.Stock,
		PublishedYear: *req.PublishedYear,
	})
	response.Handle(c, resp)
}

// UpdateBook 全量更新图书
// @Summary      更新图书
// @Description  全量替换title/author/genres/stock/publishedYear,ID不可修改
// @Tags         Book
// @Accept       json
// @Produce      json
// @Param        id      path string                true "图书ID(UUID)"
// @Param        request body dto.UpdateBookRequest true "图书信息"
// @Success      200 {object} response.ServiceResponse[book.Book]
// @Failure      400 {object} response.ServiceResponse[[]dto.FieldError] "参数错误"
// @Failure      404 {object} response.ServiceResponse[book.Book] "No Books found"
// @Failure      500 {object} response.ServiceResponse[book.Book] "存储异常"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var uri dto.BookIDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		invalidInput(c, err)
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	resp := h.service.UpdateByID(c.Request.Context(), uri.ID, appbook.UpdateInput{
		Title:         req.Title,
		Author:        req.Author,
		Genres:        req.Genres,
		Stock:         req.Stock,
		PublishedYear: *req.PublishedYear,
	})
	response.Handle(c, resp)
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Tags         Book
// @Produce      json
// @Param        id path string true "图书ID(UUID)"
// @Success      200 {object} response.ServiceResponse[bool]
// @Failure      400 {object} response.ServiceResponse[[]dto.FieldError] "ID格式错误"
// @Failure      404 {object} response.ServiceResponse[bool] "No Books found"
// @Failure      500 {object} response.ServiceResponse[bool] "存储异常"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	var uri dto.BookIDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		invalidInput(c, err)
		return
	}

	response.Handle(c, h.service.DeleteByID(c.Request.Context(), uri.ID))
}

// invalidInput 返回400校验失败信封,responseObject为字段错误列表
func invalidInput(c *gin.Context, err error) {
	appErr, fields := dto.InvalidInput(err)
	_ = c.Error(appErr)
	response.Error(c, appErr, fields)
}
