package dao

import (
	"Inkwell/internal/testkit"
	"Inkwell/models"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookDAO_SumWordCount(t *testing.T) {
	db := testkit.NewDB(t, testkit.Config())
	ctx := context.Background()
	author := testkit.User(t, db, "author")
	book := testkit.Book(t, db, author.ID, "b", false)
	testkit.Chapter(t, db, book.ID, "one", "a b c")
	testkit.Chapter(t, db, book.ID, "two", "")

	total, err := NewBookDAO(db).SumWordCount(ctx, book.ID)
	require.NoError(t, err)
	// an empty chapter still counts as one word
	assert.Equal(t, int64(4), total)

	empty := testkit.Book(t, db, author.ID, "empty", false)
	total, err = NewBookDAO(db).SumWordCount(ctx, empty.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestBookDAO_RatingStats(t *testing.T) {
	db := testkit.NewDB(t, testkit.Config())
	ctx := context.Background()
	author := testkit.User(t, db, "author")
	r1 := testkit.User(t, db, "r1")
	r2 := testkit.User(t, db, "r2")
	book := testkit.Book(t, db, author.ID, "b", true)
	books := NewBookDAO(db)

	stats, err := books.RatingStats(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, RatingStats{}, stats)

	testkit.Review(t, db, r1.ID, book.ID, 3)
	testkit.Review(t, db, r2.ID, book.ID, 5)
	stats, err = books.RatingStats(ctx, book.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, stats.Rating, 0.0001)
	assert.Equal(t, int64(2), stats.ReviewCount)
}

func TestBookDAO_IncrViewCount(t *testing.T) {
	db := testkit.NewDB(t, testkit.Config())
	ctx := context.Background()
	author := testkit.User(t, db, "author")
	book := testkit.Book(t, db, author.ID, "b", true)
	books := NewBookDAO(db)

	require.NoError(t, books.IncrViewCount(ctx, book.ID))
	require.NoError(t, books.IncrViewCount(ctx, book.ID))

	got, err := books.FindById(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ViewCount)
}

func TestCardChapterDAO_Links(t *testing.T) {
	db := testkit.NewDB(t, testkit.Config())
	ctx := context.Background()
	author := testkit.User(t, db, "author")
	book := testkit.Book(t, db, author.ID, "b", false)
	c1 := testkit.Chapter(t, db, book.ID, "1", "")
	c2 := testkit.Chapter(t, db, book.ID, "2", "")
	c3 := testkit.Chapter(t, db, book.ID, "3", "")

	cards := NewCardDAO(db)
	links := NewCardChapterDAO(db)
	card := &models.Card{UserID: author.ID, Type: models.CardTypeItem, Title: "sword"}
	require.NoError(t, cards.Create(ctx, card))
	require.NoError(t, links.Link(ctx, card.ID, []uint64{c2.ID, c1.ID}))

	ids, err := links.ChapterIDs(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{c1.ID, c2.ID}, ids)

	cardIDs, err := links.CardIDsByChapters(ctx, []uint64{c1.ID, c2.ID, c3.ID})
	require.NoError(t, err)
	assert.Equal(t, []uint64{card.ID}, cardIDs)

	byCard, err := links.ChapterIDsByCards(ctx, []uint64{card.ID})
	require.NoError(t, err)
	assert.Equal(t, []uint64{c1.ID, c2.ID}, byCard[card.ID])

	require.NoError(t, links.UnlinkChapters(ctx, []uint64{c1.ID}))
	ids, err = links.ChapterIDs(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{c2.ID}, ids)

	require.NoError(t, links.UnlinkCard(ctx, card.ID))
	ids, err = links.ChapterIDs(ctx, card.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestChapterDAO_AuthorsOf(t *testing.T) {
	db := testkit.NewDB(t, testkit.Config())
	ctx := context.Background()
	a := testkit.User(t, db, "a")
	b := testkit.User(t, db, "b")
	ca := testkit.Chapter(t, db, testkit.Book(t, db, a.ID, "ba", false).ID, "x", "")
	cb := testkit.Chapter(t, db, testkit.Book(t, db, b.ID, "bb", false).ID, "y", "")

	authors, err := NewChapterDAO(db).AuthorsOf(ctx, []uint64{ca.ID, cb.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, map[uint64]uint64{ca.ID: a.ID, cb.ID: b.ID}, authors)

	mine, err := NewChapterDAO(db).FindByAuthor(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, ca.ID, mine[0].ID)
}

func TestTransaction_RollbackOnError(t *testing.T) {
	db := testkit.NewDB(t, testkit.Config())
	ctx := context.Background()
	users := NewUsers(db)
	boom := errors.New("boom")

	err := NewTransaction(db).Run(ctx, func(ctx context.Context) error {
		require.NoError(t, users.Create(ctx, &models.User{Username: "ghost", Password: "x"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	exist, err := users.IsUsernameExist(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, exist)
}

func TestReviewDAO_DuplicateTranslated(t *testing.T) {
	db := testkit.NewDB(t, testkit.Config())
	ctx := context.Background()
	author := testkit.User(t, db, "author")
	reader := testkit.User(t, db, "reader")
	book := testkit.Book(t, db, author.ID, "b", true)
	reviews := NewReviewDAO(db)

	require.NoError(t, reviews.Create(ctx, &models.Review{UserID: reader.ID, BookID: book.ID, Content: "ok", Rating: 4}))
	err := reviews.Create(ctx, &models.Review{UserID: reader.ID, BookID: book.ID, Content: "again", Rating: 2})
	assert.True(t, IsDuplicate(err))

	reviewed, err := reviews.HasReviewed(ctx, reader.ID, book.ID)
	require.NoError(t, err)
	assert.True(t, reviewed)
}

func TestCardDAO_FindByIDsOrder(t *testing.T) {
	db := testkit.NewDB(t, testkit.Config())
	ctx := context.Background()
	author := testkit.User(t, db, "author")
	cards := NewCardDAO(db)

	var ids []uint64
	for _, c := range []struct{ typ, title string }{
		{models.CardTypeLocation, "harbor"},
		{models.CardTypeCharacter, "bob"},
		{models.CardTypeCharacter, "Zed"},
		{models.CardTypeCharacter, "anna"},
	} {
		card := &models.Card{UserID: author.ID, Type: c.typ, Title: c.title}
		require.NoError(t, cards.Create(ctx, card))
		ids = append(ids, card.ID)
	}

	found, err := cards.FindByIDs(ctx, ids)
	require.NoError(t, err)
	titles := make([]string, 0, len(found))
	for _, c := range found {
		titles = append(titles, c.Title)
	}
	// 按字节序, 大写在前
	assert.Equal(t, []string{"Zed", "anna", "bob", "harbor"}, titles)
}

func TestSortCards_ByteOrderIndependentOfInput(t *testing.T) {
	list := []*models.Card{
		{ID: 3, Type: models.CardTypeCharacter, Title: "émile"},
		{ID: 1, Type: models.CardTypeCharacter, Title: "Emile"},
		{ID: 4, Type: models.CardTypeCharacter, Title: "emile"},
		{ID: 2, Type: models.CardTypeCharacter, Title: "emile"},
	}
	sortCards(list)
	got := make([]uint64, 0, len(list))
	for _, c := range list {
		got = append(got, c.ID)
	}
	assert.Equal(t, []uint64{1, 2, 4, 3}, got)
}
