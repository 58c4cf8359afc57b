package mysql

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// fullTextCondition 全文检索条件,query必须以绑定参数传入
const fullTextCondition = "MATCH (title, author, genres) AGAINST (? IN NATURAL LANGUAGE MODE)"

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责StoredBook与GORM模型之间的转换
// 3. 不翻译错误:GORM/驱动错误原样返回,由应用层记录并转换
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// FindAll 分页查询
// 按主键排序,保证相同查询结果稳定(主键是UUID,顺序不等于插入顺序)
func (r *bookRepository) FindAll(ctx context.Context, limit, offset *int) ([]*book.StoredBook, error) {
	var models []BookModel
	query := paginate(r.db.WithContext(ctx).Model(&BookModel{}), limit, offset)
	if err := query.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return toStoredBooks(models), nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id string) (*book.StoredBook, error) {
	var model BookModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toStoredBook(&model), nil
}

// Create 创建图书
// ID为空时由BookModel.BeforeCreate生成
func (r *bookRepository) Create(ctx context.Context, data *book.StoredBook) (*book.StoredBook, error) {
	model := toBookModel(data)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, err
	}
	return toStoredBook(model), nil
}

// UpdateByID 全量更新
// 使用map更新,零值字段(如stock=0、空title)也会写入
func (r *bookRepository) UpdateByID(ctx context.Context, id string, payload *book.StoredBook) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&BookModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":         payload.Title,
			"author":        payload.Author,
			"genres":        payload.Genres,
			"stock":         payload.StockOrDefault(),
			"publishedYear": payload.PublishedYear,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteByID 物理删除
func (r *bookRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&BookModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Search 全文检索
// 不显式排序:MySQL自然语言模式下结果按相关度返回
func (r *bookRepository) Search(ctx context.Context, query string, limit, offset *int) ([]*book.StoredBook, error) {
	var models []BookModel
	tx := paginate(r.db.WithContext(ctx).Model(&BookModel{}), limit, offset)
	if err := tx.Where(fullTextCondition, query).Find(&models).Error; err != nil {
		return nil, err
	}
	return toStoredBooks(models), nil
}

// paginate 应用limit/offset
// MySQL的OFFSET必须跟在LIMIT之后,只有offset时用最大值补齐limit
func paginate(tx *gorm.DB, limit, offset *int) *gorm.DB {
	if limit != nil {
		tx = tx.Limit(*limit)
	} else if offset != nil {
		tx = tx.Limit(math.MaxInt32)
	}
	if offset != nil {
		tx = tx.Offset(*offset)
	}
	return tx
}

// ========== 辅助函数 ==========

func toBookModel(s *book.StoredBook) *BookModel {
	return &BookModel{
		ID:            s.ID,
		Title:         s.Title,
		Author:        s.Author,
		PublishedYear: s.PublishedYear,
		Genres:        s.Genres,
		Stock:         s.Stock,
	}
}

func toStoredBook(m *BookModel) *book.StoredBook {
	return &book.StoredBook{
		ID:            m.ID,
		Title:         m.Title,
		Author:        m.Author,
		Genres:        m.Genres,
		Stock:         m.Stock,
		PublishedYear: m.PublishedYear,
	}
}

func toStoredBooks(models []BookModel) []*book.StoredBook {
	books := make([]*book.StoredBook, 0, len(models))
	for i := range models {
		books = append(books, toStoredBook(&models[i]))
	}
	return books
}
