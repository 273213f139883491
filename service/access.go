package service

import "Inkwell/models"

// 访问控制谓词, 纯函数. userID 为 0 表示匿名

// CanRead 已发布或作者本人可读
func CanRead(userID uint64, book *models.Book) bool {
	return book.Published || (userID != 0 && userID == book.AuthorID)
}

// CanWrite 只有作者可写书及其章节
func CanWrite(userID uint64, book *models.Book) bool {
	return userID != 0 && userID == book.AuthorID
}

// CanWriteCard 卡片按自身 user_id 归属
func CanWriteCard(userID uint64, card *models.Card) bool {
	return userID != 0 && userID == card.UserID
}

// CanReview 已发布, 非作者, 且未评论过
func CanReview(userID uint64, book *models.Book, alreadyReviewed bool) bool {
	return userID != 0 && book.Published && userID != book.AuthorID && !alreadyReviewed
}
