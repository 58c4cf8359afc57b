package dto

// ListBooksQuery 图书列表查询参数
// search非空时走全文检索
type ListBooksQuery struct {
	Search string `form:"search" example:"dune"`
	Limit  *int   `form:"limit" binding:"omitempty,min=0" example:"10"`
	Offset *int   `form:"offset" binding:"omitempty,min=0" example:"0"`
}

// BookIDUri 路径参数
// 格式不合法直接返回400,不会进入查询
type BookIDUri struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// CreateBookRequest 创建图书请求
// validator tag说明:
// - required: 必填字段(指针/切片只要求非nil,因此stock=0、genres=[]合法)
// - uuid: 可选的客户端指定ID
type CreateBookRequest struct {
	ID            string   `json:"id,omitempty" binding:"omitempty,uuid" example:"2f1c6a0e-8a43-4b6c-9a77-0d5f1e1f9c3a"`
	Title         string   `json:"title" binding:"required" example:"Dune"`
	Author        string   `json:"author" binding:"required" example:"Frank Herbert"`
	Genres        []string `json:"genres" binding:"required" example:"sci-fi,classic"`
	Stock         *int     `json:"stock" binding:"required,min=0" example:"10"`
	PublishedYear *int     `json:"publishedYear" binding:"required" example:"1965"`
}

// UpdateBookRequest 全量更新请求(ID来自路径参数)
type UpdateBookRequest struct {
	Title         string   `json:"title" binding:"required" example:"Dune"`
	Author        string   `json:"author" binding:"required" example:"Frank Herbert"`
	Genres        []string `json:"genres" binding:"required" example:"sci-fi,classic"`
	Stock         *int     `json:"stock" binding:"required,min=0" example:"10"`
	PublishedYear *int     `json:"publishedYear" binding:"required" example:"1965"`
}
