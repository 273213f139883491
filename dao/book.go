package dao

import (
	"Inkwell/models"
	"context"

	"gorm.io/gorm"
)

type BookDAO struct {
	Repo[models.Book]
}

func NewBookDAO(db *gorm.DB) *BookDAO {
	return &BookDAO{Repo: NewRepo[models.Book](db)}
}

// FindByAuthor 作者的书, 最近更新在前
func (d *BookDAO) FindByAuthor(ctx context.Context, authorID uint64) ([]*models.Book, error) {
	return d.FindAll(ctx, "updated_at DESC, id DESC", "author_id = ?", authorID)
}

// FindPublished 已发布的书, 最近发布在前
func (d *BookDAO) FindPublished(ctx context.Context) ([]*models.Book, error) {
	return d.FindAll(ctx, "published_at DESC, created_at DESC, id DESC", "published = ?", true)
}

// SumWordCount 每章按空格数+1计词, 空章节也计 1
func (d *BookDAO) SumWordCount(ctx context.Context, bookID uint64) (int64, error) {
	var total int64
	err := d.Conn(ctx).
		Model(&models.Chapter{}).
		Select("COALESCE(SUM(LENGTH(content) - LENGTH(REPLACE(content, ' ', '')) + 1), 0)").
		Where("book_id = ?", bookID).
		Scan(&total).Error
	return total, err
}

// CountChapters 章节数
func (d *BookDAO) CountChapters(ctx context.Context, bookID uint64) (int64, error) {
	var count int64
	err := d.Conn(ctx).
		Model(&models.Chapter{}).
		Where("book_id = ?", bookID).
		Count(&count).Error
	return count, err
}

type RatingStats struct {
	Rating      float64
	ReviewCount int64
}

// RatingStats 评分均值与评论数, 没有评论时均为 0
func (d *BookDAO) RatingStats(ctx context.Context, bookID uint64) (RatingStats, error) {
	var stats RatingStats
	err := d.Conn(ctx).
		Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS rating, COUNT(*) AS review_count").
		Where("book_id = ?", bookID).
		Scan(&stats).Error
	return stats, err
}

// IncrViewCount 阅读数 +1, 不刷新 updated_at
func (d *BookDAO) IncrViewCount(ctx context.Context, bookID uint64) error {
	return d.Model(ctx).
		Where("id = ?", bookID).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).
		Error
}
