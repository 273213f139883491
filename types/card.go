package types

import (
	"Inkwell/pkg/cardfields"
	"time"
)

type CreateCardRequest struct {
	Type        string             `json:"type" binding:"required,oneof=character location item event"`
	Title       string             `json:"title" binding:"required,max=255"`
	Description string             `json:"description"`
	Fields      []cardfields.Field `json:"fields"`
	Tags        []string           `json:"tags"`
	ChapterIDs  []uint64           `json:"chapterIds" binding:"required,min=1"`
}

// UpdateCardRequest chapterIds 缺省时不动关联, 给出时整体替换, 空数组非法
type UpdateCardRequest struct {
	Type        *string             `json:"type" binding:"omitempty,oneof=character location item event"`
	Title       *string             `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string             `json:"description"`
	Fields      *[]cardfields.Field `json:"fields"`
	Tags        *[]string           `json:"tags"`
	ChapterIDs  *[]uint64           `json:"chapterIds"`
}

type CardResponse struct {
	ID              uint64             `json:"id"`
	UserID          uint64             `json:"userId"`
	Type            string             `json:"type"`
	Title           string             `json:"title"`
	DescriptionKind string             `json:"descriptionKind"`
	Description     string             `json:"description"`
	Fields          []cardfields.Field `json:"fields"`
	Tags            []string           `json:"tags"`
	ChapterIDs      []uint64           `json:"chapterIds"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}
