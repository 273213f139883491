package service

import (
	"Inkwell/models"
	"Inkwell/pkg/cardfields"
	"Inkwell/pkg/log"
	"Inkwell/pkg/utils"
	"Inkwell/types"

	"go.uber.org/zap"
)

func toBookResponse(book *models.Book, authorName, shareSalt string) *types.BookResponse {
	resp := &types.BookResponse{
		ID:           book.ID,
		AuthorID:     book.AuthorID,
		AuthorName:   authorName,
		Title:        book.Title,
		Description:  book.Description,
		Published:    book.Published,
		Rating:       book.Rating,
		WordCount:    book.WordCount,
		ChapterCount: book.ChapterCount,
		ViewCount:    book.ViewCount,
		ReviewCount:  book.ReviewCount,
		Genres:       []string(book.Genres),
		CreatedAt:    book.CreatedAt,
		UpdatedAt:    book.UpdatedAt,
		PublishedAt:  book.PublishedAt,
	}
	if resp.Genres == nil {
		resp.Genres = []string{}
	}
	if book.Published {
		code, err := utils.GenHashID(shareSalt, book.ID)
		if err != nil {
			log.L.Warn("gen share code failed", zap.Uint64("book_id", book.ID), zap.Error(err))
		}
		resp.ShareCode = code
	}
	return resp
}

func toChapterResponse(chapter *models.Chapter) *types.ChapterResponse {
	return &types.ChapterResponse{
		ID:          chapter.ID,
		BookID:      chapter.BookID,
		Title:       chapter.Title,
		Content:     chapter.Content,
		Summary:     chapter.Summary,
		Published:   chapter.Published,
		CreatedAt:   chapter.CreatedAt,
		UpdatedAt:   chapter.UpdatedAt,
		PublishedAt: chapter.PublishedAt,
	}
}

func toChapterResponses(chapters []*models.Chapter) []*types.ChapterResponse {
	out := make([]*types.ChapterResponse, 0, len(chapters))
	for _, ch := range chapters {
		out = append(out, toChapterResponse(ch))
	}
	return out
}

func toCardResponse(card *models.Card, chapterIDs []uint64) *types.CardResponse {
	resp := &types.CardResponse{
		ID:              card.ID,
		UserID:          card.UserID,
		Type:            card.Type,
		Title:           card.Title,
		DescriptionKind: card.DescriptionKind,
		Description:     card.Description,
		Fields:          []cardfields.Field(card.Fields),
		Tags:            []string(card.Tags),
		ChapterIDs:      chapterIDs,
		CreatedAt:       card.CreatedAt,
		UpdatedAt:       card.UpdatedAt,
	}
	if resp.Fields == nil {
		resp.Fields = []cardfields.Field{}
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if resp.ChapterIDs == nil {
		resp.ChapterIDs = []uint64{}
	}
	return resp
}

func toReviewResponse(review *models.Review, username string) *types.ReviewResponse {
	return &types.ReviewResponse{
		ID:        review.ID,
		UserID:    review.UserID,
		Username:  username,
		BookID:    review.BookID,
		Content:   review.Content,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
	}
}
