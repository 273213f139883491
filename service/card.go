package service

import (
	"Inkwell/dao"
	"Inkwell/models"
	"Inkwell/pkg/cardfields"
	"Inkwell/pkg/errs"
	"Inkwell/pkg/utils"
	"Inkwell/types"
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/datatypes"
)

var _ ICardService = (*CardService)(nil)

type ICardService interface {
	CreateCard(ctx context.Context, userID uint64, req *types.CreateCardRequest) (*types.CardResponse, error)
	UpdateCard(ctx context.Context, userID, cardID uint64, req *types.UpdateCardRequest) (*types.CardResponse, error)
	DeleteCard(ctx context.Context, userID, cardID uint64) error
	GetCard(ctx context.Context, userID, cardID uint64) (*types.CardResponse, error)
	GetCardsByBook(ctx context.Context, userID, bookID uint64) ([]*types.CardResponse, error)
	GetCardsByChapter(ctx context.Context, userID, chapterID uint64) ([]*types.CardResponse, error)
}

// CardService 维护卡片与章节的多对多关联.
// 不变量: 卡片关联的每个章节, 其所属书的作者必须等于 card.user_id
type CardService struct {
	Tx             *dao.Transaction
	BookDAO        *dao.BookDAO
	ChapterDAO     *dao.ChapterDAO
	CardDAO        *dao.CardDAO
	CardChapterDAO *dao.CardChapterDAO
}

// CreateCard 新建卡片并关联到至少一个章节
func (s *CardService) CreateCard(ctx context.Context, userID uint64, req *types.CreateCardRequest) (*types.CardResponse, error) {
	chapterIDs := utils.Unique(req.ChapterIDs)
	if len(chapterIDs) == 0 {
		return nil, errs.Validation("chapterIds must contain at least 1 item(s)")
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errs.Validation("title is required")
	}
	if err := s.checkChapters(ctx, userID, chapterIDs); err != nil {
		return nil, err
	}

	desc := cardfields.Normalize(req.Description, req.Fields)
	card := &models.Card{
		UserID:          userID,
		Type:            req.Type,
		Title:           title,
		DescriptionKind: desc.Kind,
		Description:     desc.Text,
		Fields:          datatypes.JSONSlice[cardfields.Field](desc.Fields),
		Tags:            datatypes.JSONSlice[string](cleanTags(req.Tags)),
	}

	var linked []uint64
	err := s.Tx.Run(ctx, func(ctx context.Context) error {
		if err := s.CardDAO.Create(ctx, card); err != nil {
			return err
		}
		if err := s.CardChapterDAO.Link(ctx, card.ID, chapterIDs); err != nil {
			return err
		}
		var err error
		linked, err = s.CardChapterDAO.ChapterIDs(ctx, card.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toCardResponse(card, linked), nil
}

// UpdateCard 更新卡片字段. chapterIds 为 nil 时不动关联, 非空时整体替换, 空数组返回 400
func (s *CardService) UpdateCard(ctx context.Context, userID, cardID uint64, req *types.UpdateCardRequest) (*types.CardResponse, error) {
	card, err := findCard(ctx, s.CardDAO, cardID)
	if err != nil {
		return nil, err
	}
	if !CanWriteCard(userID, card) {
		return nil, errs.Forbidden("access denied")
	}

	var chapterIDs []uint64
	if req.ChapterIDs != nil {
		chapterIDs = utils.Unique(*req.ChapterIDs)
		if len(chapterIDs) == 0 {
			return nil, errs.Validation("chapterIds must not be empty")
		}
		if err := s.checkChapters(ctx, card.UserID, chapterIDs); err != nil {
			return nil, err
		}
	}

	data := make(map[string]any)
	if req.Type != nil {
		data["type"] = *req.Type
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, errs.Validation("title must not be empty")
		}
		data["title"] = title
	}
	if req.Fields != nil || req.Description != nil {
		var desc cardfields.Description
		if req.Fields != nil {
			desc = cardfields.Normalize("", *req.Fields)
		} else {
			desc = cardfields.Normalize(*req.Description, nil)
		}
		fields := desc.Fields
		if fields == nil {
			fields = []cardfields.Field{}
		}
		data["description_kind"] = desc.Kind
		data["description"] = desc.Text
		data["fields"] = datatypes.JSONSlice[cardfields.Field](fields)
	}
	if req.Tags != nil {
		data["tags"] = datatypes.JSONSlice[string](cleanTags(*req.Tags))
	}

	var linked []uint64
	err = s.Tx.Run(ctx, func(ctx context.Context) error {
		if err := s.CardDAO.UpdateById(ctx, cardID, data); err != nil {
			return err
		}
		if chapterIDs != nil {
			if err := s.CardChapterDAO.UnlinkCard(ctx, cardID); err != nil {
				return err
			}
			if err := s.CardChapterDAO.Link(ctx, cardID, chapterIDs); err != nil {
				return err
			}
		}
		if card, err = s.CardDAO.FindById(ctx, cardID); err != nil {
			return err
		}
		linked, err = s.CardChapterDAO.ChapterIDs(ctx, cardID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toCardResponse(card, linked), nil
}

// DeleteCard 先删关联再删卡片
func (s *CardService) DeleteCard(ctx context.Context, userID, cardID uint64) error {
	card, err := findCard(ctx, s.CardDAO, cardID)
	if err != nil {
		return err
	}
	if !CanWriteCard(userID, card) {
		return errs.Forbidden("access denied")
	}
	return s.Tx.Run(ctx, func(ctx context.Context) error {
		if err := s.CardChapterDAO.UnlinkCard(ctx, cardID); err != nil {
			return err
		}
		return s.CardDAO.Delete(ctx, "id = ?", cardID)
	})
}

// GetCard 卡片所有者可读, 其他人只能读关联到已发布书的卡片
func (s *CardService) GetCard(ctx context.Context, userID, cardID uint64) (*types.CardResponse, error) {
	card, err := findCard(ctx, s.CardDAO, cardID)
	if err != nil {
		return nil, err
	}
	chapterIDs, err := s.CardChapterDAO.ChapterIDs(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if !CanWriteCard(userID, card) {
		visible, err := s.linkedToPublished(ctx, chapterIDs)
		if err != nil {
			return nil, err
		}
		if !visible {
			return nil, errs.Forbidden("access denied")
		}
	}
	return toCardResponse(card, chapterIDs), nil
}

// GetCardsByBook 关联到该书任一章节的卡片, 按 (type, title) 升序
func (s *CardService) GetCardsByBook(ctx context.Context, userID, bookID uint64) ([]*types.CardResponse, error) {
	book, err := findBook(ctx, s.BookDAO, bookID)
	if err != nil {
		return nil, err
	}
	if !CanRead(userID, book) {
		return nil, errs.Forbidden("access denied")
	}
	chapterIDs, err := s.ChapterDAO.IDsByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return s.cardsOfChapters(ctx, chapterIDs)
}

func (s *CardService) GetCardsByChapter(ctx context.Context, userID, chapterID uint64) ([]*types.CardResponse, error) {
	chapter, err := findChapter(ctx, s.ChapterDAO, chapterID)
	if err != nil {
		return nil, err
	}
	book, err := findBook(ctx, s.BookDAO, chapter.BookID)
	if err != nil {
		return nil, err
	}
	if !CanRead(userID, book) {
		return nil, errs.Forbidden("access denied")
	}
	return s.cardsOfChapters(ctx, []uint64{chapterID})
}

// cardsOfChapters 每张卡片附带完整的章节列表, 可能包含其他书的章节
func (s *CardService) cardsOfChapters(ctx context.Context, chapterIDs []uint64) ([]*types.CardResponse, error) {
	cardIDs, err := s.CardChapterDAO.CardIDsByChapters(ctx, chapterIDs)
	if err != nil {
		return nil, err
	}
	if len(cardIDs) == 0 {
		return []*types.CardResponse{}, nil
	}
	cards, err := s.CardDAO.FindByIDs(ctx, cardIDs)
	if err != nil {
		return nil, err
	}
	links, err := s.CardChapterDAO.ChapterIDsByCards(ctx, cardIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*types.CardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, toCardResponse(card, links[card.ID]))
	}
	return out, nil
}

// checkChapters 所有章节必须存在且属于 ownerID 的书. 缺失优先于越权
func (s *CardService) checkChapters(ctx context.Context, ownerID uint64, chapterIDs []uint64) error {
	authors, err := s.ChapterDAO.AuthorsOf(ctx, chapterIDs)
	if err != nil {
		return err
	}

	missing := make([]uint64, 0)
	for _, id := range chapterIDs {
		if _, ok := authors[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
		return errs.NotFound(fmt.Sprintf("chapter %d not found", missing[0]))
	}

	for _, id := range chapterIDs {
		if authors[id] != ownerID {
			return errs.Forbidden("cards can only be linked to your own chapters")
		}
	}
	return nil
}

func (s *CardService) linkedToPublished(ctx context.Context, chapterIDs []uint64) (bool, error) {
	chapters, err := s.ChapterDAO.FindByIDs(ctx, chapterIDs)
	if err != nil {
		return false, err
	}
	bookIDs := make([]uint64, 0, len(chapters))
	for _, ch := range chapters {
		bookIDs = append(bookIDs, ch.BookID)
	}
	if len(bookIDs) == 0 {
		return false, nil
	}
	return s.BookDAO.IsExist(ctx, "id IN ? AND published = ?", utils.Unique(bookIDs), true)
}

func findCard(ctx context.Context, cards *dao.CardDAO, cardID uint64) (*models.Card, error) {
	card, err := cards.FindById(ctx, cardID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, errs.NotFound("card not found")
		}
		return nil, err
	}
	return card, nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return utils.Unique(out)
}
