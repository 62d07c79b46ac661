package store

import (
	"github.com/wanderreel/wanderreel/internal/domain"
	"github.com/wanderreel/wanderreel/internal/drafts"
)

// AddShopItem appends a new item to the shop catalog.
func (m *Memory) AddShopItem(draft drafts.ShopItemDraft) domain.ShopItem {
	var created domain.ShopItem

	m.mutate(func() bool {
		created = domain.ShopItem{
			ID:         m.newID(),
			Name:       draft.Name,
			ProductURL: draft.ProductURL,
			ImageURL:   draft.ImageURL,
			Price:      draft.Price,
			Category:   draft.Category,
		}
		m.shopItems = append(m.shopItems, created)
		return true
	})

	return created
}
