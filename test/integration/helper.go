//go:build integration

// Package integration 端到端测试：对运行中的服务（MySQL + book-catalog）发起HTTP请求
//
// 运行方式：
//
//	BOOKCATALOG_DATABASE_AUTO_MIGRATE=true go run ./cmd/api &
//	go test -tags=integration ./test/integration/...
//
// BOOKCATALOG_BASE_URL可覆盖默认地址
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Timeout HTTP请求超时时间
const Timeout = 10 * time.Second

// BaseURL 图书接口地址
func BaseURL() string {
	if u := os.Getenv("BOOKCATALOG_BASE_URL"); u != "" {
		return u
	}
	return "http://localhost:8080/books"
}

// Response 统一响应信封
type Response struct {
	HTTPStatus     int             `json:"-"`
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	ResponseObject json.RawMessage `json:"responseObject"`
	StatusCode     int             `json:"statusCode"`
}

// BookData 图书响应数据
type BookData struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Genres        []string `json:"genres"`
	Stock         int      `json:"stock"`
	PublishedYear int      `json:"publishedYear"`
}

// Do 发送请求并解析信封
func Do(t *testing.T, method, url string, data any) *Response {
	t.Helper()

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		require.NoError(t, err, "JSON序列化失败")
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err, "创建HTTP请求失败")
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: Timeout}
	resp, err := client.Do(req)
	require.NoError(t, err, "发送HTTP请求失败")
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "读取响应体失败")

	var result Response
	require.NoError(t, json.Unmarshal(raw, &result), "解析JSON响应失败: %s", string(raw))
	result.HTTPStatus = resp.StatusCode
	return &result
}

// DecodeBook 解析responseObject中的图书
func DecodeBook(t *testing.T, resp *Response) BookData {
	t.Helper()
	var b BookData
	require.NoError(t, json.Unmarshal(resp.ResponseObject, &b), "解析图书失败")
	return b
}

// UniqueWord 生成唯一的检索词（全文索引按词匹配，避免与已有数据冲突）
func UniqueWord(prefix string) string {
	return fmt.Sprintf("%s%s", prefix, uuid.NewString()[:8])
}

// CreateTestBook 创建测试图书并返回
func CreateTestBook(t *testing.T, title string, genres []string) BookData {
	t.Helper()
	resp := Do(t, http.MethodPost, BaseURL(), map[string]any{
		"title":         title,
		"author":        "Integration Author",
		"genres":        genres,
		"stock":         10,
		"publishedYear": 2020,
	})
	require.True(t, resp.Success, "创建图书失败: %s", resp.Message)
	return DecodeBook(t, resp)
}
