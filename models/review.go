package models

import "time"

type Review struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:idx_user_book" json:"user_id"`
	BookID    uint64    `gorm:"column:book_id;not null;uniqueIndex:idx_user_book;index" json:"book_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	Rating    int       `gorm:"column:rating;not null" json:"rating"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
