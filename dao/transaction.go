package dao

import (
	"context"

	"gorm.io/gorm"
)

// Transaction 多语句写操作的工作单元. 事务通过 ctx 传递给各 DAO
type Transaction struct {
	Db *gorm.DB
}

func NewTransaction(db *gorm.DB) *Transaction {
	return &Transaction{Db: db}
}

// Run 在事务中执行 fn. ctx 中已有事务时直接复用, 不开启嵌套事务
func (t *Transaction) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
