//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewTransaction,
	NewUsers,
	NewBookDAO,
	NewChapterDAO,
	NewCardDAO,
	NewCardChapterDAO,
	NewReviewDAO,
)
