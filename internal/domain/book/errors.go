package book

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrCorruptGenres 存储中的genres不是合法的JSON字符串数组(数据损坏)
	ErrCorruptGenres = apperrors.Wrap(nil, "stored genres is not a valid JSON string array")
)
