package handler

import (
	"Inkwell/config"
	"Inkwell/middleware"
	"Inkwell/pkg/context"
	"Inkwell/pkg/response"
	"Inkwell/pkg/validate"
	"Inkwell/service"
	"Inkwell/types"

	"github.com/gin-gonic/gin"
)

type Card struct {
	Config      *config.Config
	CardService service.ICardService
}

func (cd *Card) RegisterRouter(r gin.IRouter) {
	secret := []byte(cd.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	r.GET("/books/:id/cards", optional, context.Wrap(cd.ListByBook))
	r.GET("/chapters/:id/cards", optional, context.Wrap(cd.ListByChapter))

	cards := r.Group("/cards")
	cards.POST("", authorize, context.Wrap(cd.Create))
	cards.GET("/:id", optional, context.Wrap(cd.Get))
	cards.PATCH("/:id", authorize, context.Wrap(cd.Update))
	cards.DELETE("/:id", authorize, context.Wrap(cd.Delete))
}

// ListByBook 书中任一章节关联的卡片
func (cd *Card) ListByBook(c *gin.Context) error {
	bookID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cards, err := cd.CardService.GetCardsByBook(c.Request.Context(), context.OptionalUserID(c), bookID)
	if err != nil {
		return err
	}
	response.Success(c, cards)
	return nil
}

func (cd *Card) ListByChapter(c *gin.Context) error {
	chapterID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	cards, err := cd.CardService.GetCardsByChapter(c.Request.Context(), context.OptionalUserID(c), chapterID)
	if err != nil {
		return err
	}
	response.Success(c, cards)
	return nil
}

func (cd *Card) Get(c *gin.Context) error {
	cardID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	card, err := cd.CardService.GetCard(c.Request.Context(), context.OptionalUserID(c), cardID)
	if err != nil {
		return err
	}
	response.Success(c, card)
	return nil
}

func (cd *Card) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return validate.BindError(err)
	}
	card, err := cd.CardService.CreateCard(c.Request.Context(), uid, &req)
	if err != nil {
		return err
	}
	response.Created(c, card)
	return nil
}

func (cd *Card) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	cardID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return validate.BindError(err)
	}
	card, err := cd.CardService.UpdateCard(c.Request.Context(), uid, cardID, &req)
	if err != nil {
		return err
	}
	response.Success(c, card)
	return nil
}

func (cd *Card) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	cardID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := cd.CardService.DeleteCard(c.Request.Context(), uid, cardID); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}
