package types

import "time"

type CreateChapterRequest struct {
	Title   string  `json:"title" binding:"required,max=255"`
	Content string  `json:"content"`
	Summary *string `json:"summary"`
}

type UpdateChapterRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1,max=255"`
	Content *string `json:"content"`
	Summary *string `json:"summary"`
}

type ChapterResponse struct {
	ID          uint64     `json:"id"`
	BookID      uint64     `json:"bookId"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Summary     *string    `json:"summary"`
	Published   bool       `json:"published"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt"`
}
