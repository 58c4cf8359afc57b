package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 仓储只负责存取,不解释结果:不存在返回nil而非错误,更新/删除返回受影响行数
// 3. 底层错误原样返回,不重试、不转换(由应用层统一处理)
// 4. genres以已序列化的字符串进出,编解码由应用层负责
type Repository interface {
	// FindAll 分页查询,limit/offset为nil表示不限制
	FindAll(ctx context.Context, limit, offset *int) ([]*StoredBook, error)

	// FindByID 根据ID查找图书,不存在时返回(nil, nil)
	FindByID(ctx context.Context, id string) (*StoredBook, error)

	// Create 创建图书,返回存储后的记录(含分配的ID)
	Create(ctx context.Context, data *StoredBook) (*StoredBook, error)

	// UpdateByID 全量更新(ID除外),返回受影响行数(0表示不存在)
	UpdateByID(ctx context.Context, id string, payload *StoredBook) (int64, error)

	// DeleteByID 物理删除,返回受影响行数(0表示不存在)
	DeleteByID(ctx context.Context, id string) (int64, error)

	// Search 全文检索title/author/genres(自然语言模式),query以绑定参数传入
	Search(ctx context.Context, query string, limit, offset *int) ([]*StoredBook, error)
}
