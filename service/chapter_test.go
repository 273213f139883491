package service

import (
	"Inkwell/internal/testkit"
	"Inkwell/models"
	"Inkwell/pkg/errs"
	"Inkwell/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChapterService_Aggregates(t *testing.T) {
	f := newFixture(t)
	author := testkit.User(t, f.db, "author")
	book := testkit.Book(t, f.db, author.ID, "b", false)

	first, err := f.chapters.CreateChapter(f.ctx, author.ID, book.ID, &types.CreateChapterRequest{Title: "one"})
	require.NoError(t, err)
	second, err := f.chapters.CreateChapter(f.ctx, author.ID, book.ID, &types.CreateChapterRequest{Title: "two"})
	require.NoError(t, err)

	got := f.book(t, book.ID)
	assert.Equal(t, int64(2), got.ChapterCount)
	assert.Equal(t, int64(2), got.WordCount)

	_, err = f.chapters.UpdateChapter(f.ctx, author.ID, first.ID, &types.UpdateChapterRequest{Content: ptr("a b c")})
	require.NoError(t, err)
	assert.Equal(t, int64(4), f.book(t, book.ID).WordCount)

	require.NoError(t, f.chapters.DeleteChapter(f.ctx, author.ID, second.ID))
	got = f.book(t, book.ID)
	assert.Equal(t, int64(1), got.ChapterCount)
	assert.Equal(t, int64(3), got.WordCount)
}

func TestChapterService_Permissions(t *testing.T) {
	f := newFixture(t)
	author := testkit.User(t, f.db, "author")
	other := testkit.User(t, f.db, "other")
	book := testkit.Book(t, f.db, author.ID, "b", false)
	ch := testkit.Chapter(t, f.db, book.ID, "1", "text")

	_, err := f.chapters.CreateChapter(f.ctx, other.ID, book.ID, &types.CreateChapterRequest{Title: "x"})
	assert.ErrorIs(t, err, errs.ErrForbidden)
	_, err = f.chapters.CreateChapter(f.ctx, author.ID, 9999, &types.CreateChapterRequest{Title: "x"})
	assert.ErrorIs(t, err, errs.ErrNotFound)
	_, err = f.chapters.CreateChapter(f.ctx, author.ID, book.ID, &types.CreateChapterRequest{Title: "  "})
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = f.chapters.GetChapter(f.ctx, other.ID, ch.ID)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	_, err = f.chapters.UpdateChapter(f.ctx, other.ID, ch.ID, &types.UpdateChapterRequest{Title: ptr("x")})
	assert.ErrorIs(t, err, errs.ErrForbidden)
	_, err = f.chapters.PublishChapter(f.ctx, other.ID, ch.ID)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.ErrorIs(t, f.chapters.DeleteChapter(f.ctx, other.ID, 9999), errs.ErrNotFound)

	list, err := f.chapters.ListByBook(f.ctx, author.ID, book.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestChapterService_PublishCascadesToBook(t *testing.T) {
	f := newFixture(t)
	author := testkit.User(t, f.db, "author")
	book := testkit.Book(t, f.db, author.ID, "b", false)
	ch := testkit.Chapter(t, f.db, book.ID, "1", "")

	published, err := f.chapters.PublishChapter(f.ctx, author.ID, ch.ID)
	require.NoError(t, err)
	assert.True(t, published.Published)
	require.NotNil(t, published.PublishedAt)

	got := f.book(t, book.ID)
	assert.True(t, got.Published)
	require.NotNil(t, got.PublishedAt)
	firstPublish := *got.PublishedAt

	// a second publish keeps the original timestamps
	_, err = f.chapters.PublishChapter(f.ctx, author.ID, ch.ID)
	require.NoError(t, err)
	assert.True(t, firstPublish.Equal(*f.book(t, book.ID).PublishedAt))
}

func TestChapterService_DeleteRemovesLinks(t *testing.T) {
	f := newFixture(t)
	author := testkit.User(t, f.db, "author")
	book := testkit.Book(t, f.db, author.ID, "b", false)
	c1 := testkit.Chapter(t, f.db, book.ID, "1", "")
	c2 := testkit.Chapter(t, f.db, book.ID, "2", "")

	card, err := f.cards.CreateCard(f.ctx, author.ID, &types.CreateCardRequest{
		Type: models.CardTypeItem, Title: "lamp", ChapterIDs: []uint64{c1.ID, c2.ID},
	})
	require.NoError(t, err)

	require.NoError(t, f.chapters.DeleteChapter(f.ctx, author.ID, c1.ID))
	got, err := f.cards.GetCard(f.ctx, author.ID, card.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{c2.ID}, got.ChapterIDs)
}
