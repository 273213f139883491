package service

import (
	"Inkwell/dao"
	"Inkwell/pkg/log"
	"context"

	"go.uber.org/zap"
)

var _ IAggregateService = (*AggregateService)(nil)

// IAggregateService 书籍派生字段的重算. 只在以下写操作后调用:
// 新建章节 -> 章节数+字数, 修改章节 -> 字数, 删除章节 -> 章节数+字数, 新建评论 -> 评分+评论数
type IAggregateService interface {
	RecomputeWordCount(ctx context.Context, bookID uint64) error
	RecomputeChapterCount(ctx context.Context, bookID uint64) error
	RecomputeRating(ctx context.Context, bookID uint64) error
}

type AggregateService struct {
	BookDAO *dao.BookDAO
}

// RecomputeWordCount 字数 = 各章节 (空格数 + 1) 之和
func (s *AggregateService) RecomputeWordCount(ctx context.Context, bookID uint64) error {
	total, err := s.BookDAO.SumWordCount(ctx, bookID)
	if err != nil {
		return s.fail("word_count", bookID, err)
	}
	if err := s.BookDAO.UpdateColumnsById(ctx, bookID, map[string]any{"word_count": total}); err != nil {
		return s.fail("word_count", bookID, err)
	}
	return nil
}

func (s *AggregateService) RecomputeChapterCount(ctx context.Context, bookID uint64) error {
	count, err := s.BookDAO.CountChapters(ctx, bookID)
	if err != nil {
		return s.fail("chapter_count", bookID, err)
	}
	if err := s.BookDAO.UpdateColumnsById(ctx, bookID, map[string]any{"chapter_count": count}); err != nil {
		return s.fail("chapter_count", bookID, err)
	}
	return nil
}

// RecomputeRating 评分取算术平均, 没有评论时为 0
func (s *AggregateService) RecomputeRating(ctx context.Context, bookID uint64) error {
	stats, err := s.BookDAO.RatingStats(ctx, bookID)
	if err != nil {
		return s.fail("rating", bookID, err)
	}
	err = s.BookDAO.UpdateColumnsById(ctx, bookID, map[string]any{
		"rating":       stats.Rating,
		"review_count": stats.ReviewCount,
	})
	if err != nil {
		return s.fail("rating", bookID, err)
	}
	return nil
}

func (s *AggregateService) fail(field string, bookID uint64, err error) error {
	log.L.Error("recompute book aggregate failed",
		zap.String("field", field),
		zap.Uint64("book_id", bookID),
		zap.Error(err),
	)
	return err
}
