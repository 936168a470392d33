package service

import (
	"context"
	"errors"
	"time"

	"github.com/02priyeshraj/Table_Ordering_Backend/models"
	"github.com/02priyeshraj/Table_Ordering_Backend/store"
)

type InventoryItem struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Available  bool      `json:"available"`
	Price      float64   `json:"price"`
	StockLevel int       `json:"stockLevel"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type UpdateStockRequest struct {
	StockLevel *int `json:"stockLevel" validate:"required,gte=0"`
}

// InventoryService tracks stock on menu items; an item is available while it has stock.
type InventoryService struct {
	menus MenuRepository
}

func NewInventoryService(menus MenuRepository) *InventoryService {
	return &InventoryService{menus: menus}
}

func (s *InventoryService) List(ctx context.Context, category string) ([]InventoryItem, error) {
	var filter models.MenuFilter
	if category != "" {
		filter.Category = &category
	}

	items, err := s.menus.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	inventory := make([]InventoryItem, 0, len(items))
	for _, item := range items {
		inventory = append(inventory, toInventoryItem(item))
	}
	return inventory, nil
}

func (s *InventoryService) UpdateStock(ctx context.Context, id string, req UpdateStockRequest) (InventoryItem, error) {
	if err := validateStruct(req); err != nil {
		return InventoryItem{}, err
	}

	level := *req.StockLevel
	available := level > 0
	item, err := s.menus.Update(ctx, id, models.MenuItemPatch{
		StockLevel: &level,
		Available:  &available,
	})
	if errors.Is(err, store.ErrNotFound) {
		return InventoryItem{}, NotFoundError("Inventory item not found")
	}
	if err != nil {
		return InventoryItem{}, err
	}
	return toInventoryItem(item), nil
}

func toInventoryItem(item models.MenuItem) InventoryItem {
	return InventoryItem{
		ID:         item.ID.Hex(),
		Name:       item.Name,
		Category:   item.Category,
		Available:  item.Available,
		Price:      item.Price,
		StockLevel: item.Stock(),
		UpdatedAt:  item.Updated_at,
	}
}
