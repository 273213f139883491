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

type Book struct {
	Config      *config.Config
	BookService service.IBookService
}

func (b *Book) RegisterRouter(r gin.IRouter) {
	secret := []byte(b.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	books := r.Group("/books")
	books.GET("", authorize, context.Wrap(b.ListMine))
	books.GET("/public", context.Wrap(b.ListPublic))
	books.GET("/shared/:code", optional, context.Wrap(b.GetShared)) // 分享码访问
	books.POST("", authorize, context.Wrap(b.Create))
	books.GET("/:id", optional, context.Wrap(b.Get))
	books.PATCH("/:id", authorize, context.Wrap(b.Update))
	books.DELETE("/:id", authorize, context.Wrap(b.Delete))
}

func (b *Book) ListMine(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	books, err := b.BookService.ListMine(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, books)
	return nil
}

func (b *Book) ListPublic(c *gin.Context) error {
	books, err := b.BookService.ListPublic(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, books)
	return nil
}

func (b *Book) Get(c *gin.Context) error {
	bookID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	book, err := b.BookService.GetBook(c.Request.Context(), context.OptionalUserID(c), viewerKey(c), bookID)
	if err != nil {
		return err
	}
	response.Success(c, book)
	return nil
}

func (b *Book) GetShared(c *gin.Context) error {
	book, err := b.BookService.GetShared(c.Request.Context(), context.OptionalUserID(c), viewerKey(c), c.Param("code"))
	if err != nil {
		return err
	}
	response.Success(c, book)
	return nil
}

func (b *Book) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return validate.BindError(err)
	}
	book, err := b.BookService.CreateBook(c.Request.Context(), uid, &req)
	if err != nil {
		return err
	}
	response.Created(c, book)
	return nil
}

func (b *Book) Update(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	bookID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return validate.BindError(err)
	}
	book, err := b.BookService.UpdateBook(c.Request.Context(), uid, bookID, &req)
	if err != nil {
		return err
	}
	response.Success(c, book)
	return nil
}

func (b *Book) Delete(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	bookID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := b.BookService.DeleteBook(c.Request.Context(), uid, bookID); err != nil {
		return err
	}
	response.NoContent(c)
	return nil
}
