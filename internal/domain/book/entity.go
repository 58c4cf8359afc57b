package book

// Book 图书实体(对外呈现形态)
// 设计说明:
// 1. Genres对调用方始终是有序字符串序列
// 2. 存储中为空的genres解码为nil(JSON输出为null),与空数组[]区分
// 3. ID由存储层在创建时分配(UUID v4),创建后不可变
type Book struct {
	ID            string   `json:"id" example:"2f1c6a0e-8a43-4b6c-9a77-0d5f1e1f9c3a"`
	Title         string   `json:"title" example:"Dune"`
	Author        string   `json:"author" example:"Frank Herbert"`
	Genres        []string `json:"genres" example:"sci-fi,classic"`
	Stock         int      `json:"stock" example:"10"`
	PublishedYear int      `json:"publishedYear" example:"1965"`
}

// StoredBook 图书存储形态
// Genres为JSON编码后的字符串,仓储层不关心其内容
type StoredBook struct {
	ID            string
	Title         string
	Author        string
	Genres        string
	Stock         *int // nil时使用列默认值(1)
	PublishedYear int
}

// DefaultStock 未指定库存时的默认值(与books.stock列默认值一致)
const DefaultStock = 1

// StockOrDefault 返回库存,未设置时为DefaultStock
func (s *StoredBook) StockOrDefault() int {
	if s.Stock == nil {
		return DefaultStock
	}
	return *s.Stock
}
