package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(AggregateService), "*"),
	wire.Bind(new(IAggregateService), new(*AggregateService)),

	wire.Struct(new(BookService), "*"),
	wire.Bind(new(IBookService), new(*BookService)),

	wire.Struct(new(ChapterService), "*"),
	wire.Bind(new(IChapterService), new(*ChapterService)),

	wire.Struct(new(CardService), "*"),
	wire.Bind(new(ICardService), new(*CardService)),

	wire.Struct(new(ReviewService), "*"),
	wire.Bind(new(IReviewService), new(*ReviewService)),
)
