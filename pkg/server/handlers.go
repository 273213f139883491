package server

import (
	"Inkwell/handler"
)

type Handlers struct {
	Auth    *handler.Auth
	Book    *handler.Book
	Chapter *handler.Chapter
	Card    *handler.Card
	Review  *handler.Review
}
