package models

import (
	"Inkwell/pkg/cardfields"
	"time"

	"gorm.io/datatypes"
)

const (
	CardTypeCharacter = "character"
	CardTypeLocation  = "location"
	CardTypeItem      = "item"
	CardTypeEvent     = "event"
)

// Card 对象卡片, 属于用户, 通过 card_chapters 关联到章节
type Card struct {
	ID              uint64                                `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID          uint64                                `gorm:"column:user_id;not null;index" json:"user_id"`
	Type            string                                `gorm:"column:type;type:varchar(16);not null;index:idx_type_title" json:"type"`
	Title           string                                `gorm:"column:title;type:varchar(255);not null;index:idx_type_title" json:"title"`
	DescriptionKind string                                `gorm:"column:description_kind;type:varchar(8);not null;default:'text'" json:"description_kind"`
	Description     string                                `gorm:"column:description;type:text;not null" json:"description"`
	Fields          datatypes.JSONSlice[cardfields.Field] `gorm:"column:fields" json:"fields"`
	Tags            datatypes.JSONSlice[string]           `gorm:"column:tags" json:"tags"`
	CreatedAt       time.Time                             `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time                             `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Card) TableName() string {
	return "cards"
}

// CardChapter 卡片与章节的多对多关联, 存在即表示卡片出现在该章节
type CardChapter struct {
	CardID    uint64 `gorm:"column:card_id;primaryKey;autoIncrement:false" json:"card_id"`
	ChapterID uint64 `gorm:"column:chapter_id;primaryKey;autoIncrement:false;index" json:"chapter_id"`
}

func (CardChapter) TableName() string {
	return "card_chapters"
}
