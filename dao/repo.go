package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type txKey struct{}

// Repo 通用仓储, 各 DAO 通过嵌入复用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// Conn 返回 ctx 中绑定的事务, 没有则使用默认连接
func (r Repo[T]) Conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return r.Db.WithContext(ctx)
}

func (r Repo[T]) Model(ctx context.Context) *gorm.DB {
	return r.Conn(ctx).Model(new(T))
}

// FindById 主键查询
func (r Repo[T]) FindById(ctx context.Context, id uint64) (*T, error) {
	var item T
	if err := r.Conn(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByWhere 条件查询单条
func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Conn(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindAll 条件查询多条
func (r Repo[T]) FindAll(ctx context.Context, order string, where string, args ...any) ([]*T, error) {
	items := make([]*T, 0)
	query := r.Conn(ctx).Where(where, args...)
	if order != "" {
		query = query.Order(order)
	}
	err := query.Find(&items).Error
	return items, err
}

// IsExist 是否存在
func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Model(ctx).Where(where, args...).Count(&count).Error
	return count > 0, err
}

func (r Repo[T]) Create(ctx context.Context, data *T) error {
	return r.Conn(ctx).Create(data).Error
}

// UpdateById 更新字段, 自动刷新 updated_at
func (r Repo[T]) UpdateById(ctx context.Context, id uint64, data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	return r.Model(ctx).Where("id = ?", id).Updates(data).Error
}

func (r Repo[T]) Delete(ctx context.Context, where string, args ...any) error {
	return r.Conn(ctx).Where(where, args...).Delete(new(T)).Error
}

// IsNotFound 判断是否为记录不存在
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsDuplicate 判断是否为唯一键冲突, 依赖 gorm.Config.TranslateError
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// UpdateColumnsById 更新字段, 不触发 hooks 也不刷新 updated_at
func (r Repo[T]) UpdateColumnsById(ctx context.Context, id uint64, data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	return r.Model(ctx).Where("id = ?", id).UpdateColumns(data).Error
}
