package dao

import (
	"Inkwell/models"
	"context"

	"gorm.io/gorm"
)

type ChapterDAO struct {
	Repo[models.Chapter]
}

func NewChapterDAO(db *gorm.DB) *ChapterDAO {
	return &ChapterDAO{Repo: NewRepo[models.Chapter](db)}
}

// FindByBook 书的章节, 按 id 正序
func (d *ChapterDAO) FindByBook(ctx context.Context, bookID uint64) ([]*models.Chapter, error) {
	return d.FindAll(ctx, "id ASC", "book_id = ?", bookID)
}

// FindByAuthor 作者所有书的章节
func (d *ChapterDAO) FindByAuthor(ctx context.Context, authorID uint64) ([]*models.Chapter, error) {
	chapters := make([]*models.Chapter, 0)
	err := d.Conn(ctx).
		Select("chapters.*").
		Joins("JOIN books ON books.id = chapters.book_id").
		Where("books.author_id = ?", authorID).
		Order("chapters.book_id ASC, chapters.id ASC").
		Find(&chapters).Error
	return chapters, err
}

// FindByIDs 根据 ID 列表查询章节
func (d *ChapterDAO) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Chapter, error) {
	if len(ids) == 0 {
		return []*models.Chapter{}, nil
	}
	return d.FindAll(ctx, "id ASC", "id IN ?", ids)
}

// IDsByBook 书的章节 ID
func (d *ChapterDAO) IDsByBook(ctx context.Context, bookID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := d.Model(ctx).
		Where("book_id = ?", bookID).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}

type chapterAuthor struct {
	ChapterID uint64
	AuthorID  uint64
}

// AuthorsOf 章节 ID -> 所属书的作者 ID
func (d *ChapterDAO) AuthorsOf(ctx context.Context, chapterIDs []uint64) (map[uint64]uint64, error) {
	result := make(map[uint64]uint64, len(chapterIDs))
	if len(chapterIDs) == 0 {
		return result, nil
	}

	var rows []chapterAuthor
	err := d.Conn(ctx).
		Table("chapters").
		Select("chapters.id AS chapter_id, books.author_id AS author_id").
		Joins("JOIN books ON books.id = chapters.book_id").
		Where("chapters.id IN ?", chapterIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ChapterID] = row.AuthorID
	}
	return result, nil
}
