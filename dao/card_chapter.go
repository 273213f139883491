package dao

import (
	"Inkwell/models"
	"context"

	"gorm.io/gorm"
)

// CardChapterDAO 卡片-章节关联表
type CardChapterDAO struct {
	Repo[models.CardChapter]
}

func NewCardChapterDAO(db *gorm.DB) *CardChapterDAO {
	return &CardChapterDAO{Repo: NewRepo[models.CardChapter](db)}
}

// Link 为卡片批量插入关联
func (d *CardChapterDAO) Link(ctx context.Context, cardID uint64, chapterIDs []uint64) error {
	if len(chapterIDs) == 0 {
		return nil
	}
	rows := make([]models.CardChapter, 0, len(chapterIDs))
	for _, chapterID := range chapterIDs {
		rows = append(rows, models.CardChapter{CardID: cardID, ChapterID: chapterID})
	}
	return d.Conn(ctx).Create(&rows).Error
}

// UnlinkCard 删除卡片的全部关联
func (d *CardChapterDAO) UnlinkCard(ctx context.Context, cardID uint64) error {
	return d.Delete(ctx, "card_id = ?", cardID)
}

// UnlinkChapters 删除章节的全部关联
func (d *CardChapterDAO) UnlinkChapters(ctx context.Context, chapterIDs []uint64) error {
	if len(chapterIDs) == 0 {
		return nil
	}
	return d.Delete(ctx, "chapter_id IN ?", chapterIDs)
}

// ChapterIDs 卡片关联的章节 ID
func (d *CardChapterDAO) ChapterIDs(ctx context.Context, cardID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	err := d.Model(ctx).
		Where("card_id = ?", cardID).
		Order("chapter_id ASC").
		Pluck("chapter_id", &ids).Error
	return ids, err
}

// CardIDsByChapters 关联到任一章节的卡片 ID, 已去重
func (d *CardChapterDAO) CardIDsByChapters(ctx context.Context, chapterIDs []uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	if len(chapterIDs) == 0 {
		return ids, nil
	}
	err := d.Model(ctx).
		Distinct("card_id").
		Where("chapter_id IN ?", chapterIDs).
		Order("card_id ASC").
		Pluck("card_id", &ids).Error
	return ids, err
}

// ChapterIDsByCards 批量查询卡片的完整章节列表
func (d *CardChapterDAO) ChapterIDsByCards(ctx context.Context, cardIDs []uint64) (map[uint64][]uint64, error) {
	result := make(map[uint64][]uint64, len(cardIDs))
	if len(cardIDs) == 0 {
		return result, nil
	}

	var rows []models.CardChapter
	err := d.Conn(ctx).
		Where("card_id IN ?", cardIDs).
		Order("card_id ASC, chapter_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.CardID] = append(result[row.CardID], row.ChapterID)
	}
	return result, nil
}
