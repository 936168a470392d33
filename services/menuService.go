package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/02priyeshraj/Table_Ordering_Backend/models"
	"github.com/02priyeshraj/Table_Ordering_Backend/store"
)

type CreateMenuItemRequest struct {
	Name            string   `json:"name" validate:"required,max=100"`
	Description     string   `json:"description" validate:"required"`
	Price           *float64 `json:"price" validate:"required,gte=0"`
	Category        string   `json:"category" validate:"required,oneof=appetizers main-course desserts beverages sides"`
	Image           string   `json:"image"`
	Available       *bool    `json:"available"`
	PreparationTime *int     `json:"preparationTime" validate:"omitempty,gte=0"`
	Tags            []string `json:"tags"`
}

type MenuService struct {
	menus MenuRepository
	now   func() time.Time
}

func NewMenuService(menus MenuRepository) *MenuService {
	return &MenuService{menus: menus, now: time.Now}
}

func (s *MenuService) List(ctx context.Context, filter models.MenuFilter) ([]models.MenuItem, error) {
	if filter.Category != nil && !models.IsMenuCategory(*filter.Category) {
		return nil, ValidationError("Invalid category. Must be one of: %s", strings.Join(models.MenuCategories, ", "))
	}
	return s.menus.List(ctx, filter)
}

// ListByCategory returns the available items of one category, sorted by name.
// Unknown categories simply yield an empty list.
func (s *MenuService) ListByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	available := true
	return s.menus.List(ctx, models.MenuFilter{Category: &category, Available: &available})
}

func (s *MenuService) Get(ctx context.Context, id string) (models.MenuItem, error) {
	item, err := s.menus.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.MenuItem{}, NotFoundError("Menu item not found")
	}
	return item, err
}

func (s *MenuService) Create(ctx context.Context, req CreateMenuItemRequest) (models.MenuItem, error) {
	if err := validateStruct(req); err != nil {
		return models.MenuItem{}, err
	}

	now := s.now()
	item := models.MenuItem{
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Price:           *req.Price,
		Category:        req.Category,
		Image:           req.Image,
		Available:       true,
		PreparationTime: models.DefaultPreparationTime,
		Tags:            req.Tags,
		Created_at:      now,
		Updated_at:      now,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if req.PreparationTime != nil {
		item.PreparationTime = *req.PreparationTime
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}

	if err := s.menus.Create(ctx, &item); err != nil {
		return models.MenuItem{}, fmt.Errorf("create menu item: %w", err)
	}
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, id string, patch models.MenuItemPatch) (models.MenuItem, error) {
	if err := validateStruct(patch); err != nil {
		return models.MenuItem{}, err
	}
	if patch.Category != nil && !models.IsMenuCategory(*patch.Category) {
		return models.MenuItem{}, ValidationError("Invalid category. Must be one of: %s", strings.Join(models.MenuCategories, ", "))
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}

	item, err := s.menus.Update(ctx, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return models.MenuItem{}, NotFoundError("Menu item not found")
	}
	return item, err
}

func (s *MenuService) Delete(ctx context.Context, id string) (models.MenuItem, error) {
	item, err := s.menus.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.MenuItem{}, NotFoundError("Menu item not found")
	}
	return item, err
}
