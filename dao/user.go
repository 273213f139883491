package dao

import (
	"Inkwell/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByUsername 用户名查询
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

// IsUsernameExist 判断用户名是否存在
func (u *Users) IsUsernameExist(ctx context.Context, username string) (bool, error) {
	return u.Repo.IsExist(ctx, "username = ?", username)
}

// FindByIDs 根据 ID 列表查询用户
func (u *Users) FindByIDs(ctx context.Context, ids []uint64) ([]*models.User, error) {
	if len(ids) == 0 {
		return []*models.User{}, nil
	}
	return u.Repo.FindAll(ctx, "", "id IN ?", ids)
}
