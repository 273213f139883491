package service

import (
	"Inkwell/config"
	"Inkwell/dao"
	"Inkwell/dao/cache"
	"Inkwell/internal/testkit"
	"Inkwell/models"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	ctx      context.Context
	conf     *config.Config
	db       *gorm.DB
	users    *UserService
	books    *BookService
	chapters *ChapterService
	cards    *CardService
	reviews  *ReviewService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	conf := testkit.Config()
	db := testkit.NewDB(t, conf)

	tx := dao.NewTransaction(db)
	bookDAO := dao.NewBookDAO(db)
	chapterDAO := dao.NewChapterDAO(db)
	cardChapterDAO := dao.NewCardChapterDAO(db)
	reviewDAO := dao.NewReviewDAO(db)
	aggregate := &AggregateService{BookDAO: bookDAO}
	users := &UserService{UsersRepo: dao.NewUsers(db), Names: cache.NewUserNames()}

	return &fixture{
		ctx:   context.Background(),
		conf:  conf,
		db:    db,
		users: users,
		books: &BookService{
			Config:         conf,
			Tx:             tx,
			BookDAO:        bookDAO,
			ChapterDAO:     chapterDAO,
			CardChapterDAO: cardChapterDAO,
			ReviewDAO:      reviewDAO,
			ViewStorage:    cache.NewViewStorage(nil),
			UserService:    users,
		},
		chapters: &ChapterService{
			Tx:               tx,
			BookDAO:          bookDAO,
			ChapterDAO:       chapterDAO,
			CardChapterDAO:   cardChapterDAO,
			AggregateService: aggregate,
		},
		cards: &CardService{
			Tx:             tx,
			BookDAO:        bookDAO,
			ChapterDAO:     chapterDAO,
			CardDAO:        dao.NewCardDAO(db),
			CardChapterDAO: cardChapterDAO,
		},
		reviews: &ReviewService{
			Tx:               tx,
			BookDAO:          bookDAO,
			ReviewDAO:        reviewDAO,
			LockStorage:      cache.NewLockStorage(nil),
			UserService:      users,
			AggregateService: aggregate,
		},
	}
}

func (f *fixture) book(t *testing.T, id uint64) *models.Book {
	t.Helper()
	var b models.Book
	require.NoError(t, f.db.Where("id = ?", id).First(&b).Error)
	return &b
}
