package types

import "time"

type CreateReviewRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

type ReviewResponse struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"userId"`
	Username  string    `json:"username"`
	BookID    uint64    `json:"bookId"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
