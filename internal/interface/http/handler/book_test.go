package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
)

// memoryRepository 内存版图书仓储(按插入顺序返回)
type memoryRepository struct {
	mu    sync.Mutex
	order []string
	rows  map[string]book.StoredBook
	calls int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: make(map[string]book.StoredBook)}
}

func (r *memoryRepository) FindAll(_ context.Context, limit, offset *int) ([]*book.StoredBook, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.page(r.order, limit, offset), nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*book.StoredBook, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *memoryRepository) Create(_ context.Context, data *book.StoredBook) (*book.StoredBook, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	row := *data
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	if row.Stock == nil {
		stock := book.DefaultStock
		row.Stock = &stock
	}
	r.rows[row.ID] = row
	r.order = append(r.order, row.ID)
	return &row, nil
}

func (r *memoryRepository) UpdateByID(_ context.Context, id string, payload *book.StoredBook) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	row := *payload
	row.ID = id
	r.rows[id] = row
	return 1, nil
}

func (r *memoryRepository) DeleteByID(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func (r *memoryRepository) Search(_ context.Context, query string, limit, offset *int) ([]*book.StoredBook, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	q := strings.ToLower(query)
	var ids []string
	for _, id := range r.order {
		row := r.rows[id]
		text := strings.ToLower(row.Title + " " + row.Author + " " + row.Genres)
		if strings.Contains(text, q) {
			ids = append(ids, id)
		}
	}
	return r.page(ids, limit, offset), nil
}

func (r *memoryRepository) page(ids []string, limit, offset *int) []*book.StoredBook {
	start := 0
	if offset != nil {
		start = min(*offset, len(ids))
	}
	end := len(ids)
	if limit != nil {
		end = min(start+*limit, len(ids))
	}
	out := make([]*book.StoredBook, 0, end-start)
	for _, id := range ids[start:end] {
		row := r.rows[id]
		out = append(out, &row)
	}
	return out
}

func (r *memoryRepository) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// envelope 测试用响应信封
type envelope struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	ResponseObject json.RawMessage `json:"responseObject"`
	StatusCode     int             `json:"statusCode"`
}

func setupRouter(t *testing.T) (*gin.Engine, *memoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newMemoryRepository()
	h := NewBookHandler(appbook.NewService(repo, zap.NewNop()))

	r := gin.New()
	h.RegisterRoutes(r.Group("/books"))
	return r, repo
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	assert.Equal(t, w.Code, env.StatusCode, "HTTP状态码与statusCode一致")
	return w, env
}

func validBook() map[string]any {
	return map[string]any{
		"title":         "t",
		"author":        "a",
		"genres":        []string{"x", "y"},
		"stock":         10,
		"publishedYear": 2020,
	}
}

func decodeBook(t *testing.T, raw json.RawMessage) book.Book {
	t.Helper()
	var b book.Book
	require.NoError(t, json.Unmarshal(raw, &b))
	return b
}

func TestCreateBook(t *testing.T) {
	t.Run("创建成功且genres往返一致", func(t *testing.T) {
		r, _ := setupRouter(t)

		w, env := doRequest(t, r, http.MethodPost, "/books", validBook())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
		assert.Equal(t, appbook.MsgBookCreated, env.Message)
		b := decodeBook(t, env.ResponseObject)
		assert.Equal(t, []string{"x", "y"}, b.Genres)
		assert.Equal(t, 10, b.Stock)
		_, err := uuid.Parse(b.ID)
		assert.NoError(t, err)
	})

	t.Run("相同数据创建两次得到不同ID", func(t *testing.T) {
		r, _ := setupRouter(t)

		_, first := doRequest(t, r, http.MethodPost, "/books", validBook())
		_, second := doRequest(t, r, http.MethodPost, "/books", validBook())

		require.True(t, first.Success)
		require.True(t, second.Success)
		assert.NotEqual(t, decodeBook(t, first.ResponseObject).ID, decodeBook(t, second.ResponseObject).ID)
	})

	t.Run("stock为0且genres为空数组合法", func(t *testing.T) {
		r, _ := setupRouter(t)
		body := validBook()
		body["stock"] = 0
		body["genres"] = []string{}

		w, env := doRequest(t, r, http.MethodPost, "/books", body)

		require.Equal(t, http.StatusOK, w.Code)
		b := decodeBook(t, env.ResponseObject)
		assert.Equal(t, 0, b.Stock)
		assert.Equal(t, []string{}, b.Genres)
	})

	t.Run("使用客户端指定的ID", func(t *testing.T) {
		r, _ := setupRouter(t)
		id := uuid.NewString()
		body := validBook()
		body["id"] = id

		_, env := doRequest(t, r, http.MethodPost, "/books", body)

		assert.Equal(t, id, decodeBook(t, env.ResponseObject).ID)
	})

	tests := []struct {
		name  string
		edit  func(map[string]any)
		field string
	}{
		{"缺少title", func(b map[string]any) { delete(b, "title") }, "title"},
		{"缺少genres", func(b map[string]any) { delete(b, "genres") }, "genres"},
		{"缺少stock", func(b map[string]any) { delete(b, "stock") }, "stock"},
		{"stock为负数", func(b map[string]any) { b["stock"] = -1 }, "stock"},
		{"缺少publishedYear", func(b map[string]any) { delete(b, "publishedYear") }, "publishedYear"},
		{"ID不是UUID", func(b map[string]any) { b["id"] = "not-a-uuid" }, "id"},
		{"genres类型错误", func(b map[string]any) { b["genres"] = "x,y" }, "genres"},
		{"stock类型错误", func(b map[string]any) { b["stock"] = "ten" }, "stock"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, repo := setupRouter(t)
			body := validBook()
			tt.edit(body)

			w, env := doRequest(t, r, http.MethodPost, "/books", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, env.Success)
			assert.True(t, strings.HasPrefix(env.Message, "Invalid input: "), env.Message)

			var fields []dto.FieldError
			require.NoError(t, json.Unmarshal(env.ResponseObject, &fields))
			require.NotEmpty(t, fields)
			assert.Equal(t, tt.field, fields[0].Field)
			assert.Equal(t, 0, repo.callCount(), "校验失败不应访问仓储")
		})
	}
}

func TestGetBook(t *testing.T) {
	t.Run("ID格式错误返回400且不查询仓储", func(t *testing.T) {
		r, repo := setupRouter(t)

		w, env := doRequest(t, r, http.MethodGet, "/books/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
		assert.Contains(t, env.Message, "id must be a valid UUID")
		assert.Equal(t, 0, repo.callCount())
	})

	t.Run("合法但不存在的ID返回404", func(t *testing.T) {
		r, _ := setupRouter(t)

		w, env := doRequest(t, r, http.MethodGet, "/books/"+uuid.NewString(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, appbook.MsgBookNotFound, env.Message)
		assert.Equal(t, "null", string(env.ResponseObject))
	})

	t.Run("查询详情返回解码后的genres", func(t *testing.T) {
		r, _ := setupRouter(t)
		_, created := doRequest(t, r, http.MethodPost, "/books", validBook())
		id := decodeBook(t, created.ResponseObject).ID

		w, env := doRequest(t, r, http.MethodGet, "/books/"+id, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, appbook.MsgBookFound, env.Message)
		assert.Equal(t, []string{"x", "y"}, decodeBook(t, env.ResponseObject).Genres)
	})
}

func TestListBooks(t *testing.T) {
	t.Run("空表返回404且responseObject为null", func(t *testing.T) {
		r, _ := setupRouter(t)

		w, env := doRequest(t, r, http.MethodGet, "/books", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, appbook.MsgNoBooksFound, env.Message)
		assert.Equal(t, "null", string(env.ResponseObject))
	})

	t.Run("分页与检索", func(t *testing.T) {
		r, _ := setupRouter(t)
		for _, title := range []string{"Dune", "Emma", "Dune Messiah"} {
			body := validBook()
			body["title"] = title
			doRequest(t, r, http.MethodPost, "/books", body)
		}

		_, all := doRequest(t, r, http.MethodGet, "/books", nil)
		var books []book.Book
		require.NoError(t, json.Unmarshal(all.ResponseObject, &books))
		assert.Len(t, books, 3)

		_, paged := doRequest(t, r, http.MethodGet, "/books?limit=1&offset=1", nil)
		require.NoError(t, json.Unmarshal(paged.ResponseObject, &books))
		require.Len(t, books, 1)
		assert.Equal(t, "Emma", books[0].Title)

		_, found := doRequest(t, r, http.MethodGet, "/books?search=dune", nil)
		assert.Equal(t, appbook.MsgBooksFound, found.Message)
		require.NoError(t, json.Unmarshal(found.ResponseObject, &books))
		assert.Len(t, books, 2)
	})

	t.Run("检索无匹配与空表表现一致", func(t *testing.T) {
		r, _ := setupRouter(t)
		doRequest(t, r, http.MethodPost, "/books", validBook())

		w, env := doRequest(t, r, http.MethodGet, "/books?search=zzzz", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, appbook.MsgNoBooksFound, env.Message)
		assert.Equal(t, "null", string(env.ResponseObject))
	})

	t.Run("limit为空值或0时返回全部", func(t *testing.T) {
		r, _ := setupRouter(t)
		doRequest(t, r, http.MethodPost, "/books", validBook())

		for _, path := range []string{"/books?limit=", "/books?limit=0", "/books?limit=&offset=0"} {
			w, env := doRequest(t, r, http.MethodGet, path, nil)

			assert.Equal(t, http.StatusOK, w.Code, path)
			assert.Equal(t, appbook.MsgBooksFound, env.Message, path)
			var books []book.Book
			require.NoError(t, json.Unmarshal(env.ResponseObject, &books))
			assert.Len(t, books, 1, path)
		}
	})

	t.Run("limit为负数返回400", func(t *testing.T) {
		r, repo := setupRouter(t)

		w, _ := doRequest(t, r, http.MethodGet, "/books?limit=-1", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, repo.callCount())
	})

	t.Run("limit不是数字返回400", func(t *testing.T) {
		r, _ := setupRouter(t)

		w, _ := doRequest(t, r, http.MethodGet, "/books?limit=abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateBook(t *testing.T) {
	t.Run("更新成功返回请求数据加id", func(t *testing.T) {
		r, _ := setupRouter(t)
		_, created := doRequest(t, r, http.MethodPost, "/books", validBook())
		id := decodeBook(t, created.ResponseObject).ID

		update := validBook()
		update["title"] = "t2"
		update["genres"] = []string{"z"}
		w, env := doRequest(t, r, http.MethodPut, "/books/"+id, update)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, appbook.MsgBookUpdated, env.Message)
		b := decodeBook(t, env.ResponseObject)
		assert.Equal(t, id, b.ID)
		assert.Equal(t, "t2", b.Title)
		assert.Equal(t, []string{"z"}, b.Genres)

		_, fetched := doRequest(t, r, http.MethodGet, "/books/"+id, nil)
		assert.Equal(t, "t2", decodeBook(t, fetched.ResponseObject).Title)
	})

	t.Run("不存在返回404且不创建记录", func(t *testing.T) {
		r, _ := setupRouter(t)

		w, env := doRequest(t, r, http.MethodPut, "/books/"+uuid.NewString(), validBook())

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, appbook.MsgNoBooksFound, env.Message)

		w, _ = doRequest(t, r, http.MethodGet, "/books", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("路径ID格式错误返回400", func(t *testing.T) {
		r, repo := setupRouter(t)

		w, _ := doRequest(t, r, http.MethodPut, "/books/123", validBook())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, repo.callCount())
	})
}

func TestDeleteBook(t *testing.T) {
	t.Run("删除后查询返回404", func(t *testing.T) {
		r, _ := setupRouter(t)
		_, created := doRequest(t, r, http.MethodPost, "/books", validBook())
		id := decodeBook(t, created.ResponseObject).ID

		w, env := doRequest(t, r, http.MethodDelete, "/books/"+id, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, appbook.MsgBookDeleted, env.Message)
		assert.Equal(t, "true", string(env.ResponseObject))

		w, _ = doRequest(t, r, http.MethodGet, "/books/"+id, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("不存在返回404和false", func(t *testing.T) {
		r, _ := setupRouter(t)

		w, env := doRequest(t, r, http.MethodDelete, "/books/"+uuid.NewString(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "false", string(env.ResponseObject))
	})
}
