package types

import "time"

type CreateBookRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description *string  `json:"description"`
	Genres      []string `json:"genres"`
}

// UpdateBookRequest 只更新非 nil 字段. published 只能置为 true
type UpdateBookRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string   `json:"description"`
	Genres      *[]string `json:"genres"`
	Published   *bool     `json:"published"`
}

type BookResponse struct {
	ID           uint64     `json:"id"`
	AuthorID     uint64     `json:"authorId"`
	AuthorName   string     `json:"authorName"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	Published    bool       `json:"published"`
	Rating       float64    `json:"rating"`
	WordCount    int64      `json:"wordCount"`
	ChapterCount int64      `json:"chapterCount"`
	ViewCount    int64      `json:"viewCount"`
	ReviewCount  int64      `json:"reviewCount"`
	Genres       []string   `json:"genres"`
	ShareCode    string     `json:"shareCode,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	PublishedAt  *time.Time `json:"publishedAt"`
}

// BookDetailResponse 书籍详情, 附带读者可见的章节
type BookDetailResponse struct {
	BookResponse
	Chapters []*ChapterResponse `json:"chapters"`
}
