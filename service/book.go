package service

import (
	"Inkwell/config"
	"Inkwell/dao"
	"Inkwell/dao/cache"
	"Inkwell/models"
	"Inkwell/pkg/errs"
	"Inkwell/pkg/log"
	"Inkwell/pkg/utils"
	"Inkwell/types"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

var _ IBookService = (*BookService)(nil)

type IBookService interface {
	ListMine(ctx context.Context, userID uint64) ([]*types.BookResponse, error)
	ListPublic(ctx context.Context) ([]*types.BookResponse, error)
	GetBook(ctx context.Context, userID uint64, viewer string, bookID uint64) (*types.BookDetailResponse, error)
	GetShared(ctx context.Context, userID uint64, viewer string, code string) (*types.BookDetailResponse, error)
	CreateBook(ctx context.Context, userID uint64, req *types.CreateBookRequest) (*types.BookResponse, error)
	UpdateBook(ctx context.Context, userID, bookID uint64, req *types.UpdateBookRequest) (*types.BookResponse, error)
	DeleteBook(ctx context.Context, userID, bookID uint64) error
}

type BookService struct {
	Config         *config.Config
	Tx             *dao.Transaction
	BookDAO        *dao.BookDAO
	ChapterDAO     *dao.ChapterDAO
	CardChapterDAO *dao.CardChapterDAO
	ReviewDAO      *dao.ReviewDAO
	ViewStorage    *cache.ViewStorage
	UserService    IUserService
}

// ListMine 我的书, 最近更新在前
func (s *BookService) ListMine(ctx context.Context, userID uint64) ([]*types.BookResponse, error) {
	books, err := s.BookDAO.FindByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, books)
}

// ListPublic 已发布的书
func (s *BookService) ListPublic(ctx context.Context) ([]*types.BookResponse, error) {
	books, err := s.BookDAO.FindPublished(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, books)
}

// GetBook 书籍详情. 非作者访问时按读者去重累加阅读数
func (s *BookService) GetBook(ctx context.Context, userID uint64, viewer string, bookID uint64) (*types.BookDetailResponse, error) {
	book, err := findBook(ctx, s.BookDAO, bookID)
	if err != nil {
		return nil, err
	}
	if !CanRead(userID, book) {
		return nil, errs.Forbidden("access denied")
	}
	s.countView(ctx, userID, viewer, book)
	return s.detail(ctx, book)
}

// GetShared 通过分享码访问已发布的书, 未发布与不存在同样返回 404
func (s *BookService) GetShared(ctx context.Context, userID uint64, viewer string, code string) (*types.BookDetailResponse, error) {
	bookID := utils.ParseHashID(s.Config.App.ShareSalt, code)
	if bookID == 0 {
		return nil, errs.NotFound("book not found")
	}
	book, err := findBook(ctx, s.BookDAO, bookID)
	if err != nil {
		return nil, err
	}
	if !book.Published {
		return nil, errs.NotFound("book not found")
	}
	s.countView(ctx, userID, viewer, book)
	return s.detail(ctx, book)
}

func (s *BookService) CreateBook(ctx context.Context, userID uint64, req *types.CreateBookRequest) (*types.BookResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errs.Validation("title is required")
	}
	book := &models.Book{
		AuthorID:    userID,
		Title:       title,
		Description: req.Description,
		Genres:      datatypes.JSONSlice[string](cleanGenres(req.Genres)),
	}
	if err := s.BookDAO.Create(ctx, book); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, book)
}

// UpdateBook 修改书籍信息. 书一旦发布不能撤回
func (s *BookService) UpdateBook(ctx context.Context, userID, bookID uint64, req *types.UpdateBookRequest) (*types.BookResponse, error) {
	book, err := findBook(ctx, s.BookDAO, bookID)
	if err != nil {
		return nil, err
	}
	if !CanWrite(userID, book) {
		return nil, errs.Forbidden("access denied")
	}

	data := make(map[string]any)
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, errs.Validation("title must not be empty")
		}
		data["title"] = title
	}
	if req.Description != nil {
		data["description"] = *req.Description
	}
	if req.Genres != nil {
		data["genres"] = datatypes.JSONSlice[string](cleanGenres(*req.Genres))
	}
	if req.Published != nil {
		if !*req.Published && book.Published {
			return nil, errs.Validation("a published book cannot be unpublished")
		}
		if *req.Published && !book.Published {
			data["published"] = true
			data["published_at"] = time.Now()
		}
	}

	if err := s.BookDAO.UpdateById(ctx, bookID, data); err != nil {
		return nil, err
	}
	book, err = findBook(ctx, s.BookDAO, bookID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, book)
}

// DeleteBook 级联删除章节关联, 章节, 评论和书本身. 卡片属于用户, 保留
func (s *BookService) DeleteBook(ctx context.Context, userID, bookID uint64) error {
	book, err := findBook(ctx, s.BookDAO, bookID)
	if err != nil {
		return err
	}
	if !CanWrite(userID, book) {
		return errs.Forbidden("access denied")
	}

	return s.Tx.Run(ctx, func(ctx context.Context) error {
		chapterIDs, err := s.ChapterDAO.IDsByBook(ctx, bookID)
		if err != nil {
			return err
		}
		if err := s.CardChapterDAO.UnlinkChapters(ctx, chapterIDs); err != nil {
			return err
		}
		if err := s.ChapterDAO.Delete(ctx, "book_id = ?", bookID); err != nil {
			return err
		}
		if err := s.ReviewDAO.Delete(ctx, "book_id = ?", bookID); err != nil {
			return err
		}
		return s.BookDAO.Delete(ctx, "id = ?", bookID)
	})
}

// countView 阅读数去重失败只记录日志, 不影响读取
func (s *BookService) countView(ctx context.Context, userID uint64, viewer string, book *models.Book) {
	if userID != 0 && userID == book.AuthorID {
		return
	}
	first, err := s.ViewStorage.MarkViewed(ctx, book.ID, viewer)
	if err != nil {
		log.L.Warn("mark book viewed failed", zap.Uint64("book_id", book.ID), zap.Error(err))
		return
	}
	if !first {
		return
	}
	if err := s.BookDAO.IncrViewCount(ctx, book.ID); err != nil {
		log.L.Warn("incr view count failed", zap.Uint64("book_id", book.ID), zap.Error(err))
		return
	}
	book.ViewCount++
}

func (s *BookService) detail(ctx context.Context, book *models.Book) (*types.BookDetailResponse, error) {
	var (
		wg         conc.WaitGroup
		names      map[uint64]string
		chapters   []*models.Chapter
		nameErr    error
		chapterErr error
	)
	wg.Go(func() {
		names, nameErr = s.UserService.BatchGetNames(ctx, []uint64{book.AuthorID})
	})
	wg.Go(func() {
		chapters, chapterErr = s.ChapterDAO.FindByBook(ctx, book.ID)
	})
	wg.Wait()

	if err := errors.Join(nameErr, chapterErr); err != nil {
		return nil, err
	}
	return &types.BookDetailResponse{
		BookResponse: *toBookResponse(book, names[book.AuthorID], s.Config.App.ShareSalt),
		Chapters:     toChapterResponses(chapters),
	}, nil
}

func (s *BookService) toResponse(ctx context.Context, book *models.Book) (*types.BookResponse, error) {
	list, err := s.toResponses(ctx, []*models.Book{book})
	if err != nil {
		return nil, err
	}
	return list[0], nil
}

func (s *BookService) toResponses(ctx context.Context, books []*models.Book) ([]*types.BookResponse, error) {
	authorIDs := make([]uint64, 0, len(books))
	for _, b := range books {
		authorIDs = append(authorIDs, b.AuthorID)
	}
	names, err := s.UserService.BatchGetNames(ctx, utils.Unique(authorIDs))
	if err != nil {
		return nil, err
	}

	out := make([]*types.BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b, names[b.AuthorID], s.Config.App.ShareSalt))
	}
	return out, nil
}

// findBook 不存在时返回 404
func findBook(ctx context.Context, books *dao.BookDAO, bookID uint64) (*models.Book, error) {
	book, err := books.FindById(ctx, bookID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, errs.NotFound("book not found")
		}
		return nil, err
	}
	return book, nil
}

func cleanGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return utils.Unique(out)
}
