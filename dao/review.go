package dao

import (
	"Inkwell/models"
	"context"

	"gorm.io/gorm"
)

type ReviewDAO struct {
	Repo[models.Review]
}

func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{Repo: NewRepo[models.Review](db)}
}

// FindByBook 书的评论, 最新在前
func (d *ReviewDAO) FindByBook(ctx context.Context, bookID uint64) ([]*models.Review, error) {
	return d.FindAll(ctx, "created_at DESC, id DESC", "book_id = ?", bookID)
}

// HasReviewed 用户是否已评论过该书
func (d *ReviewDAO) HasReviewed(ctx context.Context, userID, bookID uint64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND book_id = ?", userID, bookID)
}
