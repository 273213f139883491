package models

import "time"

type Chapter struct {
	ID          uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BookID      uint64     `gorm:"column:book_id;not null;index" json:"book_id"`
	Title       string     `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Content     string     `gorm:"column:content;type:text;not null" json:"content"`
	Summary     *string    `gorm:"column:summary;type:text" json:"summary"`
	Published   bool       `gorm:"column:published;not null;default:false" json:"published"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at"`
}

func (Chapter) TableName() string {
	return "chapters"
}
