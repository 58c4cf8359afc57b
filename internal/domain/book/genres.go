package book

import (
	"encoding/json"
)

// EncodeGenres 将genres序列化为存储用的JSON字符串
// nil与空切片分别编码为"null"和"[]",保证解码后可还原
func EncodeGenres(genres []string) (string, error) {
	data, err := json.Marshal(genres)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeGenres 将存储中的JSON字符串还原为genres
// 业务规则:
// - 空字符串(未设置)解码为nil,而非空切片
// - 非法JSON视为数据损坏,返回ErrCorruptGenres
func DecodeGenres(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var genres []string
	if err := json.Unmarshal([]byte(raw), &genres); err != nil {
		return nil, ErrCorruptGenres.WithCause(err)
	}
	return genres, nil
}

// ToBook 存储形态 → 对外形态(唯一的genres解码入口)
func ToBook(s *StoredBook) (*Book, error) {
	genres, err := DecodeGenres(s.Genres)
	if err != nil {
		return nil, err
	}
	return &Book{
		ID:            s.ID,
		Title:         s.Title,
		Author:        s.Author,
		Genres:        genres,
		Stock:         s.StockOrDefault(),
		PublishedYear: s.PublishedYear,
	}, nil
}
