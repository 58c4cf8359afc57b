package book

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// 响应信封中的提示信息（客户端依赖这些文案，不要随意修改）
const (
	MsgBooksFound     = "Books found"
	MsgNoBooksFound   = "No Books found"
	MsgBookFound      = "Book found"
	MsgBookNotFound   = "Book not found"
	MsgBookCreated    = "Book created successfully"
	MsgCreateFailed   = "Failed create book"
	MsgBookUpdated    = "Book updated successfully"
	MsgBookDeleted    = "Book deleted successfully"
	MsgRetrieveFailed = "An error occurred while retrieving books."
	MsgFindBookFailed = "An error occurred while finding book."
)

// Service 图书应用服务
// 设计说明:
// 1. 编排仓储调用并解释结果(空结果→404、受影响行数为0→404)
// 2. 每个操作都返回统一的响应信封,不向上抛出错误
// 3. genres的编解码只在这里发生:写入前编码,读出后经book.ToBook解码
// 4. 存储异常经guard统一记录日志并转换为500信封,原始错误不返回给客户端
type Service struct {
	repo   book.Repository
	logger *zap.Logger
}

// NewService 创建图书应用服务
func NewService(repo book.Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListQuery 列表查询参数
type ListQuery struct {
	Search string // 非空时走全文检索
	Limit  *int
	Offset *int
}

// CreateInput 创建图书输入
type CreateInput struct {
	ID            string // 可选,为空时由存储层分配
	Title         string
	Author        string
	Genres        []string
	Stock         *int
	PublishedYear int
}

// UpdateInput 全量更新输入(ID来自路径参数,不可修改)
type UpdateInput struct {
	Title         string
	Author        string
	Genres        []string
	Stock         *int
	PublishedYear int
}

// FindAll 查询图书列表
// 业务规则:
// 1. Search非空时全文检索,否则分页列出
// 2. 结果为空返回404 "No Books found"(检索无匹配与空表表现一致)
// 3. 每行genres解码为字符串数组,存储为空时为null
// 4. limit为0(含?limit=空值)视为未指定
func (s *Service) FindAll(ctx context.Context, q ListQuery) *response.ServiceResponse[[]*book.Book] {
	if q.Limit != nil && *q.Limit == 0 {
		q.Limit = nil
	}

	op := opFindAll
	if q.Search != "" {
		op = opSearch
	}

	return guard(ctx, s, op, []zap.Field{zap.String("search", q.Search)},
		func(ctx context.Context) (*response.ServiceResponse[[]*book.Book], error) {
			var (
				rows []*book.StoredBook
				err  error
			)
			if q.Search != "" {
				rows, err = s.repo.Search(ctx, q.Search, q.Limit, q.Offset)
			} else {
				rows, err = s.repo.FindAll(ctx, q.Limit, q.Offset)
			}
			if err != nil {
				return nil, err
			}

			if len(rows) == 0 {
				return response.Failure[[]*book.Book](MsgNoBooksFound, nil, http.StatusNotFound), nil
			}

			books := make([]*book.Book, 0, len(rows))
			for _, row := range rows {
				b, err := book.ToBook(row)
				if err != nil {
					return nil, err
				}
				books = append(books, b)
			}
			return response.Success(MsgBooksFound, books), nil
		})
}

// FindByID 根据ID查询图书
// 与FindAll一致,genres同样解码为数组
func (s *Service) FindByID(ctx context.Context, id string) *response.ServiceResponse[*book.Book] {
	return guard(ctx, s, opFindByID, []zap.Field{zap.String("id", id)},
		func(ctx context.Context) (*response.ServiceResponse[*book.Book], error) {
			row, err := s.repo.FindByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if row == nil {
				return response.Failure[*book.Book](MsgBookNotFound, nil, http.StatusNotFound), nil
			}

			b, err := book.ToBook(row)
			if err != nil {
				return nil, err
			}
			return response.Success(MsgBookFound, b), nil
		})
}

// Create 创建图书
// 仓储未返回记录时视为创建被拒绝(400)
func (s *Service) Create(ctx context.Context, in CreateInput) *response.ServiceResponse[*book.Book] {
	return guard(ctx, s, opCreate, []zap.Field{zap.String("title", in.Title)}, func(ctx context.Context) (*response.ServiceResponse[*book.Book], error) {
		genres, err := book.EncodeGenres(in.Genres)
		if err != nil {
			return nil, err
		}

		row, err := s.repo.Create(ctx, &book.StoredBook{
			ID:            in.ID,
			Title:         in.Title,
			Author:        in.Author,
			Genres:        genres,
			Stock:         in.Stock,
			PublishedYear: in.PublishedYear,
		})
		if err != nil {
			return nil, err
		}
		if row == nil {
			return response.Failure[*book.Book](MsgCreateFailed, nil, http.StatusBadRequest), nil
		}

		b, err := book.ToBook(row)
		if err != nil {
			return nil, err
		}
		return response.Success(MsgBookCreated, b), nil
	})
}

// UpdateByID 全量更新图书
// 注意:成功时返回的是请求数据加上id,不会重新读取数据库
func (s *Service) UpdateByID(ctx context.Context, id string, in UpdateInput) *response.ServiceResponse[*book.Book] {
	return guard(ctx, s, opUpdate, []zap.Field{zap.String("id", id)},
		func(ctx context.Context) (*response.ServiceResponse[*book.Book], error) {
			genres, err := book.EncodeGenres(in.Genres)
			if err != nil {
				return nil, err
			}

			payload := &book.StoredBook{
				Title:         in.Title,
				Author:        in.Author,
				Genres:        genres,
				Stock:         in.Stock,
				PublishedYear: in.PublishedYear,
			}
			affected, err := s.repo.UpdateByID(ctx, id, payload)
			if err != nil {
				return nil, err
			}
			if affected == 0 {
				return response.Failure[*book.Book](MsgNoBooksFound, nil, http.StatusNotFound), nil
			}

			// HTTP入口stock必填;直接调用服务时可为nil,仓储按默认值写入,回显保持一致
			return response.Success(MsgBookUpdated, &book.Book{
				ID:            id,
				Title:         in.Title,
				Author:        in.Author,
				Genres:        in.Genres,
				Stock:         payload.StockOrDefault(),
				PublishedYear: in.PublishedYear,
			}), nil
		})
}

// DeleteByID 删除图书(物理删除)
// responseObject:成功为true,不存在或出错为false
func (s *Service) DeleteByID(ctx context.Context, id string) *response.ServiceResponse[bool] {
	return guard(ctx, s, opDelete, []zap.Field{zap.String("id", id)},
		func(ctx context.Context) (*response.ServiceResponse[bool], error) {
			affected, err := s.repo.DeleteByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if affected == 0 {
				return response.Failure(MsgNoBooksFound, false, http.StatusNotFound), nil
			}
			return response.Success(MsgBookDeleted, true), nil
		})
}
