package dao

import (
	"Inkwell/models"
	"context"
	"sort"

	"gorm.io/gorm"
)

type CardDAO struct {
	Repo[models.Card]
}

func NewCardDAO(db *gorm.DB) *CardDAO {
	return &CardDAO{Repo: NewRepo[models.Card](db)}
}

// FindByIDs 按 (type, title) 升序返回卡片.
// 排序在内存里按字节比较, mysql 的 ci 排序规则会忽略大小写, 结果与 sqlite 不一致
func (d *CardDAO) FindByIDs(ctx context.Context, ids []uint64) ([]*models.Card, error) {
	if len(ids) == 0 {
		return []*models.Card{}, nil
	}
	cards, err := d.FindAll(ctx, "", "id IN ?", ids)
	if err != nil {
		return nil, err
	}
	sortCards(cards)
	return cards, nil
}

func sortCards(cards []*models.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i], cards[j]
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ID < b.ID
	})
}
