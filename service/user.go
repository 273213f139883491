package service

import (
	"Inkwell/dao"
	"Inkwell/dao/cache"
	"Inkwell/models"
	"Inkwell/pkg/errs"
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	GetUser(ctx context.Context, userID uint64) (*models.User, error)
	BatchGetNames(ctx context.Context, userIDs []uint64) (map[uint64]string, error)
}

type UserService struct {
	UsersRepo *dao.Users
	Names     *cache.UserNames
}

// Register 注册用户
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.Validation("username is required")
	}
	exist, err := s.UsersRepo.IsUsernameExist(ctx, username)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, errs.Conflict("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{Username: username, Password: string(hash)}
	if err := s.UsersRepo.Create(ctx, user); err != nil {
		if dao.IsDuplicate(err) {
			return nil, errs.Conflict("username already taken")
		}
		return nil, err
	}
	s.Names.Set(user.ID, user.Username)
	return user, nil
}

// Login 登录校验, 用户不存在和密码错误返回同样的提示
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.UsersRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, errs.Unauthorized("invalid username or password")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, errs.Unauthorized("invalid username or password")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := s.UsersRepo.FindById(ctx, userID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, errs.Unauthorized("user no longer exists")
		}
		return nil, err
	}
	return user, nil
}

// BatchGetNames 批量获取用户名, 优先读进程内缓存
func (s *UserService) BatchGetNames(ctx context.Context, userIDs []uint64) (map[uint64]string, error) {
	result := make(map[uint64]string, len(userIDs))
	missing := s.Names.Missing(userIDs)
	if len(missing) > 0 {
		users, err := s.UsersRepo.FindByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			s.Names.Set(u.ID, u.Username)
		}
	}
	for _, id := range userIDs {
		if name, ok := s.Names.Get(id); ok {
			result[id] = name
		}
	}
	return result, nil
}
