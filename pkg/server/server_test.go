package server

import (
	"Inkwell/config"
	"Inkwell/dao"
	"Inkwell/dao/cache"
	"Inkwell/handler"
	"Inkwell/internal/testkit"
	"Inkwell/service"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	conf := testkit.Config()
	db := testkit.NewDB(t, conf)

	tx := dao.NewTransaction(db)
	bookDAO := dao.NewBookDAO(db)
	chapterDAO := dao.NewChapterDAO(db)
	cardChapterDAO := dao.NewCardChapterDAO(db)
	reviewDAO := dao.NewReviewDAO(db)
	users := &service.UserService{UsersRepo: dao.NewUsers(db), Names: cache.NewUserNames()}
	aggregate := &service.AggregateService{BookDAO: bookDAO}

	h := &Handlers{
		Auth: &handler.Auth{Config: conf, UserService: users},
		Book: &handler.Book{Config: conf, BookService: &service.BookService{
			Config: conf, Tx: tx, BookDAO: bookDAO, ChapterDAO: chapterDAO, CardChapterDAO: cardChapterDAO,
			ReviewDAO: reviewDAO, ViewStorage: cache.NewViewStorage(nil), UserService: users,
		}},
		Chapter: &handler.Chapter{Config: conf, ChapterService: &service.ChapterService{
			Tx: tx, BookDAO: bookDAO, ChapterDAO: chapterDAO, CardChapterDAO: cardChapterDAO, AggregateService: aggregate,
		}},
		Card: &handler.Card{Config: conf, CardService: &service.CardService{
			Tx: tx, BookDAO: bookDAO, ChapterDAO: chapterDAO, CardDAO: dao.NewCardDAO(db), CardChapterDAO: cardChapterDAO,
		}},
		Review: &handler.Review{Config: conf, ReviewService: &service.ReviewService{
			Tx: tx, BookDAO: bookDAO, ReviewDAO: reviewDAO, LockStorage: cache.NewLockStorage(nil),
			UserService: users, AggregateService: aggregate,
		}},
	}
	return NewGinEngine(conf, h)
}

type client struct {
	t      *testing.T
	engine *gin.Engine
	token  string
}

func (c *client) do(method, path string, body any) (int, map[string]any) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.engine.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func register(t *testing.T, engine *gin.Engine, username string) *client {
	t.Helper()
	anon := &client{t: t, engine: engine}
	code, body := anon.do(http.MethodPost, "/api/register", map[string]any{"username": username, "password": "secret1"})
	require.Equal(t, http.StatusCreated, code, body)
	return &client{t: t, engine: engine, token: body["token"].(string)}
}

func id(body map[string]any) uint64 {
	return uint64(body["id"].(float64))
}

func TestPublishFlow(t *testing.T) {
	engine := newTestEngine(t)
	author := register(t, engine, "author")
	reader := register(t, engine, "reader")

	code, book := author.do(http.MethodPost, "/api/books", map[string]any{"title": "Draft"})
	require.Equal(t, http.StatusCreated, code)
	bookPath := fmt.Sprintf("/api/books/%d", id(book))

	code, _ = reader.do(http.MethodGet, bookPath, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, chapter := author.do(http.MethodPost, bookPath+"/chapters", map[string]any{"title": "One"})
	require.Equal(t, http.StatusCreated, code)

	code, published := author.do(http.MethodPatch, fmt.Sprintf("/api/chapters/%d/publish", id(chapter)), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, published["published"])

	code, body := reader.do(http.MethodGet, bookPath, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["published"])
	assert.Equal(t, "author", body["authorName"])
	assert.NotEmpty(t, body["shareCode"])
}

func TestReviewFlow(t *testing.T) {
	engine := newTestEngine(t)
	author := register(t, engine, "author")
	reader := register(t, engine, "reader")

	_, book := author.do(http.MethodPost, "/api/books", map[string]any{"title": "Book"})
	bookPath := fmt.Sprintf("/api/books/%d", id(book))
	code, _ := author.do(http.MethodPatch, bookPath, map[string]any{"published": true})
	require.Equal(t, http.StatusOK, code)

	review := map[string]any{"content": "nice", "rating": 4}
	code, body := author.do(http.MethodPost, bookPath+"/reviews", review)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, body["message"])

	code, _ = reader.do(http.MethodPost, bookPath+"/reviews", map[string]any{"content": "nice", "rating": 9})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = reader.do(http.MethodPost, bookPath+"/reviews", review)
	require.Equal(t, http.StatusCreated, code)
	code, _ = reader.do(http.MethodPost, bookPath+"/reviews", review)
	assert.Equal(t, http.StatusConflict, code)

	code, body = reader.do(http.MethodGet, bookPath, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(4), body["rating"])
	assert.Equal(t, float64(1), body["reviewCount"])
}

func TestCardFlow(t *testing.T) {
	engine := newTestEngine(t)
	author := register(t, engine, "author")

	_, book := author.do(http.MethodPost, "/api/books", map[string]any{"title": "Book"})
	bookPath := fmt.Sprintf("/api/books/%d", id(book))
	_, c1 := author.do(http.MethodPost, bookPath+"/chapters", map[string]any{"title": "One"})
	_, c2 := author.do(http.MethodPost, bookPath+"/chapters", map[string]any{"title": "Two"})

	code, body := author.do(http.MethodPost, "/api/cards", map[string]any{
		"type": "character", "title": "Anna", "chapterIds": []uint64{},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["message"], "chapterIds")

	code, _ = author.do(http.MethodPost, "/api/cards", map[string]any{
		"type": "dragon", "title": "Anna", "chapterIds": []uint64{id(c1)},
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, card := author.do(http.MethodPost, "/api/cards", map[string]any{
		"type": "character", "title": "Anna", "chapterIds": []uint64{id(c1), id(c2)},
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Len(t, card["chapterIds"], 2)
	cardPath := fmt.Sprintf("/api/cards/%d", id(card))

	code, updated := author.do(http.MethodPatch, cardPath, map[string]any{"chapterIds": []uint64{id(c2)}})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{float64(id(c2))}, updated["chapterIds"])

	code, _ = author.do(http.MethodPatch, cardPath, map[string]any{"chapterIds": []uint64{}})
	assert.Equal(t, http.StatusBadRequest, code)

	req := httptest.NewRequest(http.MethodGet, bookPath+"/cards", nil)
	req.Header.Set("Authorization", "Bearer "+author.token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var cards []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
	assert.Len(t, cards, 1)

	code, _ = author.do(http.MethodDelete, cardPath, nil)
	assert.Equal(t, http.StatusNoContent, code)
	code, _ = author.do(http.MethodGet, cardPath, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestErrors(t *testing.T) {
	engine := newTestEngine(t)
	anon := &client{t: t, engine: engine}
	user := register(t, engine, "someone")

	code, body := anon.do(http.MethodPost, "/api/books", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.NotEmpty(t, body["message"])

	code, body = user.do(http.MethodGet, "/api/books/9999", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "book not found", body["message"])

	code, _ = user.do(http.MethodGet, "/api/books/abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = user.do(http.MethodPost, "/api/books", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "title is required", body["message"])

	code, body = user.do(http.MethodGet, "/api/user", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "someone", body["username"])

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "inkwell_http_requests_total")
}

func TestCORSMiddleware_Origins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware(&config.Cors{AllowOrigins: []string{"http://app.local"}}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://app.local")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://app.local", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNoRoute(t *testing.T) {
	engine := newTestEngine(t)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"route not found"}`, w.Body.String())
}
