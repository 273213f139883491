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

type Chapter struct {
	Config         *config.Config
	ChapterService service.IChapterService
}

func (ch *Chapter) RegisterRouter(r gin.IRouter) {
	secret := []byte(ch.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	r.GET("/books/:id/chapters", optional, context.Wrap(ch.ListByBook))
	r.POST("/books/:id/chapters", authorize, context.Wrap(ch.Create))

	chapters := r.Group("/chapters")
	chapters.GET("", authorize, context.Wrap(ch.ListMine))
	chapters.GET("/:id", optional, context.Wrap(ch.Get))
	chapters.PATCH("/:id", authorize, context.Wrap(ch.Update))
	chapters.PATCH("/:id/publish", authorize, context.Wrap(ch.Publish)) // 发布章节, 同时发布书
	chapters.DELETE("/:id", authorize, context.Wrap(ch.Delete))
}

func (ch *Chapter) ListMine(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	chapters, err := ch.ChapterService.ListMine(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, chapters)
	return nil
}

func (ch *Chapter) ListByBook(c *gin.Context) error {
	bookID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	chapters, err := ch.ChapterService.ListByBook(c.Request.Context(), context.OptionalUserID(c), bookID)
	if err != nil {
		return err
	}
	response.Success(c, chapters)
	return nil
}

func (ch *Chapter) Get(c *gin.Context) error {
	chapterID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	chapter, err := ch.ChapterService.GetChapter(c.Request.Context(), context.OptionalUserID(c), chapterID)
	if err != nil {
		return err
	}
	response.Success(c, chapter)
	return nil
}

func (ch *Chapter) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	bookID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req types.CreateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return validate.BindError(err)
	}
	chapter, err := ch.ChapterService.CreateChapter(c.Request.Context(), uid, bookID, &req)
	if err != nil {
		return err
	}
	response.Created(c, chapter)
	return nil
}

func (ch *Chapter) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	chapterID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return validate.BindError(err)
	}
	chapter, err := ch.ChapterService.UpdateChapter(c.Request.Context(), uid, chapterID, &req)
	if err != nil {
		return err
	}
	response.Success(c, chapter)
	return nil
}

func (ch *Chapter) Publish(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	chapterID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	chapter, err := ch.ChapterService.PublishChapter(c.Request.Context(), uid, chapterID)
	if err != nil {
		return err
	}
	response.Success(c, chapter)
	return nil
}

func (ch *Chapter) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	chapterID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := ch.ChapterService.DeleteChapter(c.Request.Context(), uid, chapterID); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}
