package models

import (
	"time"

	"gorm.io/datatypes"
)

// Book 书籍. rating/word_count/chapter_count/review_count 是由 chapters 和 reviews 重新计算的缓存
type Book struct {
	ID           uint64                      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AuthorID     uint64                      `gorm:"column:author_id;not null;index:idx_author_updated" json:"author_id"`
	Title        string                      `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description  *string                     `gorm:"column:description;type:text" json:"description"`
	Published    bool                        `gorm:"column:published;not null;default:false;index" json:"published"`
	Rating       float64                     `gorm:"column:rating;not null;default:0" json:"rating"`
	WordCount    int64                       `gorm:"column:word_count;not null;default:0" json:"word_count"`
	ChapterCount int64                       `gorm:"column:chapter_count;not null;default:0" json:"chapter_count"`
	ViewCount    int64                       `gorm:"column:view_count;not null;default:0" json:"view_count"`
	ReviewCount  int64                       `gorm:"column:review_count;not null;default:0" json:"review_count"`
	Genres       datatypes.JSONSlice[string] `gorm:"column:genres" json:"genres"`
	CreatedAt    time.Time                   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time                   `gorm:"column:updated_at;autoUpdateTime;index:idx_author_updated" json:"updated_at"`
	PublishedAt  *time.Time                  `gorm:"column:published_at" json:"published_at"`
}

func (Book) TableName() string {
	return "books"
}
