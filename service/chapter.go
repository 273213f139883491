package service

import (
	"Inkwell/dao"
	"Inkwell/models"
	"Inkwell/pkg/errs"
	"Inkwell/types"
	"context"
	"strings"
	"time"
)

var _ IChapterService = (*ChapterService)(nil)

type IChapterService interface {
	ListMine(ctx context.Context, userID uint64) ([]*types.ChapterResponse, error)
	ListByBook(ctx context.Context, userID, bookID uint64) ([]*types.ChapterResponse, error)
	GetChapter(ctx context.Context, userID, chapterID uint64) (*types.ChapterResponse, error)
	CreateChapter(ctx context.Context, userID, bookID uint64, req *types.CreateChapterRequest) (*types.ChapterResponse, error)
	UpdateChapter(ctx context.Context, userID, chapterID uint64, req *types.UpdateChapterRequest) (*types.ChapterResponse, error)
	PublishChapter(ctx context.Context, userID, chapterID uint64) (*types.ChapterResponse, error)
	DeleteChapter(ctx context.Context, userID, chapterID uint64) error
}

type ChapterService struct {
	Tx               *dao.Transaction
	BookDAO          *dao.BookDAO
	ChapterDAO       *dao.ChapterDAO
	CardChapterDAO   *dao.CardChapterDAO
	AggregateService IAggregateService
}

// ListMine 当前用户所有书的章节
func (s *ChapterService) ListMine(ctx context.Context, userID uint64) ([]*types.ChapterResponse, error) {
	chapters, err := s.ChapterDAO.FindByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toChapterResponses(chapters), nil
}

func (s *ChapterService) ListByBook(ctx context.Context, userID, bookID uint64) ([]*types.ChapterResponse, error) {
	book, err := findBook(ctx, s.BookDAO, bookID)
	if err != nil {
		return nil, err
	}
	if !CanRead(userID, book) {
		return nil, errs.Forbidden("access denied")
	}
	chapters, err := s.ChapterDAO.FindByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return toChapterResponses(chapters), nil
}

func (s *ChapterService) GetChapter(ctx context.Context, userID, chapterID uint64) (*types.ChapterResponse, error) {
	chapter, book, err := s.load(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	if !CanRead(userID, book) {
		return nil, errs.Forbidden("access denied")
	}
	return toChapterResponse(chapter), nil
}

// CreateChapter 新建章节并重算章节数和字数
func (s *ChapterService) CreateChapter(ctx context.Context, userID, bookID uint64, req *types.CreateChapterRequest) (*types.ChapterResponse, error) {
	book, err := findBook(ctx, s.BookDAO, bookID)
	if err != nil {
		return nil, err
	}
	if !CanWrite(userID, book) {
		return nil, errs.Forbidden("access denied")
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errs.Validation("title is required")
	}

	chapter := &models.Chapter{
		BookID:  bookID,
		Title:   title,
		Content: req.Content,
		Summary: req.Summary,
	}
	err = s.Tx.Run(ctx, func(ctx context.Context) error {
		if err := s.ChapterDAO.Create(ctx, chapter); err != nil {
			return err
		}
		if err := s.AggregateService.RecomputeChapterCount(ctx, bookID); err != nil {
			return err
		}
		return s.AggregateService.RecomputeWordCount(ctx, bookID)
	})
	if err != nil {
		return nil, err
	}
	return toChapterResponse(chapter), nil
}

// UpdateChapter 修改章节并重算字数
func (s *ChapterService) UpdateChapter(ctx context.Context, userID, chapterID uint64, req *types.UpdateChapterRequest) (*types.ChapterResponse, error) {
	chapter, book, err := s.load(ctx, chapterID)
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
	if req.Content != nil {
		data["content"] = *req.Content
	}
	if req.Summary != nil {
		data["summary"] = *req.Summary
	}

	err = s.Tx.Run(ctx, func(ctx context.Context) error {
		if err := s.ChapterDAO.UpdateById(ctx, chapterID, data); err != nil {
			return err
		}
		return s.AggregateService.RecomputeWordCount(ctx, chapter.BookID)
	})
	if err != nil {
		return nil, err
	}
	return s.reload(ctx, chapterID)
}

// PublishChapter 发布章节, 所属书未发布时一并发布. 发布时间只在首次发布时记录
func (s *ChapterService) PublishChapter(ctx context.Context, userID, chapterID uint64) (*types.ChapterResponse, error) {
	chapter, book, err := s.load(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	if !CanWrite(userID, book) {
		return nil, errs.Forbidden("access denied")
	}

	now := time.Now()
	err = s.Tx.Run(ctx, func(ctx context.Context) error {
		if !book.Published {
			err := s.BookDAO.UpdateById(ctx, book.ID, map[string]any{
				"published":    true,
				"published_at": now,
			})
			if err != nil {
				return err
			}
		}
		data := map[string]any{"published": true}
		if chapter.PublishedAt == nil {
			data["published_at"] = now
		}
		return s.ChapterDAO.UpdateById(ctx, chapterID, data)
	})
	if err != nil {
		return nil, err
	}
	return s.reload(ctx, chapterID)
}

// DeleteChapter 删除章节及其卡片关联, 重算章节数和字数
func (s *ChapterService) DeleteChapter(ctx context.Context, userID, chapterID uint64) error {
	chapter, book, err := s.load(ctx, chapterID)
	if err != nil {
		return err
	}
	if !CanWrite(userID, book) {
		return errs.Forbidden("access denied")
	}

	return s.Tx.Run(ctx, func(ctx context.Context) error {
		if err := s.CardChapterDAO.UnlinkChapters(ctx, []uint64{chapterID}); err != nil {
			return err
		}
		if err := s.ChapterDAO.Delete(ctx, "id = ?", chapterID); err != nil {
			return err
		}
		if err := s.AggregateService.RecomputeChapterCount(ctx, chapter.BookID); err != nil {
			return err
		}
		return s.AggregateService.RecomputeWordCount(ctx, chapter.BookID)
	})
}

// load 章节和所属书, 任一不存在返回 404
func (s *ChapterService) load(ctx context.Context, chapterID uint64) (*models.Chapter, *models.Book, error) {
	chapter, err := findChapter(ctx, s.ChapterDAO, chapterID)
	if err != nil {
		return nil, nil, err
	}
	book, err := findBook(ctx, s.BookDAO, chapter.BookID)
	if err != nil {
		return nil, nil, err
	}
	return chapter, book, nil
}

func (s *ChapterService) reload(ctx context.Context, chapterID uint64) (*types.ChapterResponse, error) {
	chapter, err := findChapter(ctx, s.ChapterDAO, chapterID)
	if err != nil {
		return nil, err
	}
	return toChapterResponse(chapter), nil
}

func findChapter(ctx context.Context, chapters *dao.ChapterDAO, chapterID uint64) (*models.Chapter, error) {
	chapter, err := chapters.FindById(ctx, chapterID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, errs.NotFound("chapter not found")
		}
		return nil, err
	}
	return chapter, nil
}
