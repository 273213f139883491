package service

import (
	"Inkwell/dao"
	"Inkwell/dao/cache"
	"Inkwell/models"
	"Inkwell/pkg/errs"
	"Inkwell/pkg/log"
	"Inkwell/pkg/utils"
	"Inkwell/types"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// 同一用户对同一本书的评论提交锁
const reviewLockTTL = 5 * time.Second

var _ IReviewService = (*ReviewService)(nil)

type IReviewService interface {
	ListReviews(ctx context.Context, userID, bookID uint64) ([]*types.ReviewResponse, error)
	CreateReview(ctx context.Context, userID, bookID uint64, req *types.CreateReviewRequest) (*types.ReviewResponse, error)
}

type ReviewService struct {
	Tx               *dao.Transaction
	BookDAO          *dao.BookDAO
	ReviewDAO        *dao.ReviewDAO
	LockStorage      *cache.LockStorage
	UserService      IUserService
	AggregateService IAggregateService
}

// ListReviews 书的评论, 最新在前
func (s *ReviewService) ListReviews(ctx context.Context, userID, bookID uint64) ([]*types.ReviewResponse, error) {
	book, err := findBook(ctx, s.BookDAO, bookID)
	if err != nil {
		return nil, err
	}
	if !CanRead(userID, book) {
		return nil, errs.Forbidden("access denied")
	}

	reviews, err := s.ReviewDAO.FindByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	userIDs := make([]uint64, 0, len(reviews))
	for _, r := range reviews {
		userIDs = append(userIDs, r.UserID)
	}
	names, err := s.UserService.BatchGetNames(ctx, utils.Unique(userIDs))
	if err != nil {
		return nil, err
	}

	out := make([]*types.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r, names[r.UserID]))
	}
	return out, nil
}

// CreateReview 新建评论并重算评分
func (s *ReviewService) CreateReview(ctx context.Context, userID, bookID uint64, req *types.CreateReviewRequest) (*types.ReviewResponse, error) {
	book, err := findBook(ctx, s.BookDAO, bookID)
	if err != nil {
		return nil, err
	}
	if !book.Published {
		return nil, errs.Validation("cannot review an unpublished book")
	}
	if userID == book.AuthorID {
		return nil, errs.Validation("authors cannot review their own book")
	}
	content := strings.TrimSpace(req.Content)
	if content == "" || req.Rating < 1 || req.Rating > 5 {
		return nil, errs.Validation("invalid review: content is required and rating must be between 1 and 5")
	}

	lockKey := fmt.Sprintf("review:%d:%d", userID, bookID)
	token, ok, err := s.LockStorage.Acquire(ctx, lockKey, reviewLockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.Conflict("review submission already in progress")
	}
	defer func() {
		if err := s.LockStorage.Release(ctx, lockKey, token); err != nil {
			log.L.Warn("release review lock failed", zap.String("key", lockKey), zap.Error(err))
		}
	}()

	reviewed, err := s.ReviewDAO.HasReviewed(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if !CanReview(userID, book, reviewed) {
		return nil, errs.Conflict("you have already reviewed this book")
	}

	review := &models.Review{
		UserID:  userID,
		BookID:  bookID,
		Content: content,
		Rating:  req.Rating,
	}
	err = s.Tx.Run(ctx, func(ctx context.Context) error {
		if err := s.ReviewDAO.Create(ctx, review); err != nil {
			if dao.IsDuplicate(err) {
				return errs.Conflict("you have already reviewed this book")
			}
			return err
		}
		return s.AggregateService.RecomputeRating(ctx, bookID)
	})
	if err != nil {
		return nil, err
	}

	names, err := s.UserService.BatchGetNames(ctx, []uint64{userID})
	if err != nil {
		return nil, err
	}
	return toReviewResponse(review, names[userID]), nil
}
