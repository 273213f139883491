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

type Review struct {
	Config        *config.Config
	ReviewService service.IReviewService
}

func (rv *Review) RegisterRouter(r gin.IRouter) {
	secret := []byte(rv.Config.Jwt.Secret)
	r.GET("/books/:id/reviews", middleware.OptionalAuth(secret), context.Wrap(rv.List))
	r.POST("/books/:id/reviews", middleware.Auth(secret), context.Wrap(rv.Create)) // 评论并重算评分
}

func (rv *Review) List(c *gin.Context) error {
	bookID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	reviews, err := rv.ReviewService.ListReviews(c.Request.Context(), context.OptionalUserID(c), bookID)
	if err != nil {
		return err
	}
	response.Success(c, reviews)
	return nil
}

func (rv *Review) Create(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	bookID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req types.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return validate.BindError(err)
	}
	review, err := rv.ReviewService.CreateReview(c.Request.Context(), uid, bookID, &req)
	if err != nil {
		return err
	}
	response.Created(c, review)
	return nil
}
