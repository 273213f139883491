// Package testkit 测试用的内存数据库和数据构造
package testkit

import (
	"Inkwell/config"
	"Inkwell/models"
	"Inkwell/pkg/database"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Config 内存 sqlite, 不连 redis
func Config() *config.Config {
	conf, err := config.Parse([]byte(`
app:
  env: test
  share_salt: test-salt
database:
  driver: sqlite
  path: ":memory:"
  auto_migrate: true
jwt:
  secret: test-secret
`))
	if err != nil {
		panic(err)
	}
	return conf
}

// NewDB 每个测试一个新库, 已迁移
func NewDB(t testing.TB, conf *config.Config) *gorm.DB {
	t.Helper()
	db, err := database.NewDB(conf)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func User(t testing.TB, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func Book(t testing.TB, db *gorm.DB, authorID uint64, title string, published bool) *models.Book {
	t.Helper()
	b := &models.Book{AuthorID: authorID, Title: title, Published: published}
	if published {
		now := time.Now()
		b.PublishedAt = &now
	}
	require.NoError(t, db.Create(b).Error)
	return b
}

func Chapter(t testing.TB, db *gorm.DB, bookID uint64, title, content string) *models.Chapter {
	t.Helper()
	ch := &models.Chapter{BookID: bookID, Title: title, Content: content}
	require.NoError(t, db.Create(ch).Error)
	return ch
}

func Review(t testing.TB, db *gorm.DB, userID, bookID uint64, rating int) *models.Review {
	t.Helper()
	r := &models.Review{UserID: userID, BookID: bookID, Content: "review", Rating: rating}
	require.NoError(t, db.Create(r).Error)
	return r
}
