package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/02priyeshraj/Table_Ordering_Backend/models"
	"github.com/02priyeshraj/Table_Ordering_Backend/store"
)

type AddToCartRequest struct {
	SessionID           string `json:"sessionId" validate:"required"`
	MenuItemID          string `json:"menuItemId" validate:"required"`
	Quantity            *int   `json:"quantity" validate:"omitempty,gte=1"`
	SpecialInstructions string `json:"specialInstructions" validate:"max=500"`
}

type UpdateCartRequest struct {
	SessionID  string `json:"sessionId" validate:"required"`
	MenuItemID string `json:"menuItemId" validate:"required"`
	Quantity   *int   `json:"quantity" validate:"required"`
}

type RemoveFromCartRequest struct {
	SessionID  string `json:"sessionId" validate:"required"`
	MenuItemID string `json:"menuItemId" validate:"required"`
}

type CartView struct {
	SessionID   string            `json:"sessionId"`
	TableNumber int               `json:"tableNumber"`
	Cart        []models.CartLine `json:"cart"`
	CartTotal   float64           `json:"cartTotal"`
}

func newCartView(s models.Session) CartView {
	cart := s.Cart
	if cart == nil {
		cart = []models.CartLine{}
	}
	return CartView{
		SessionID:   s.SessionID,
		TableNumber: s.TableNumber,
		Cart:        cart,
		CartTotal:   s.CartTotal(),
	}
}

type CartService struct {
	sessions SessionRepository
	menus    MenuRepository
	now      func() time.Time
}

func NewCartService(sessions SessionRepository, menus MenuRepository) *CartService {
	return &CartService{sessions: sessions, menus: menus, now: time.Now}
}

func (s *CartService) Get(ctx context.Context, sessionID string) (CartView, error) {
	session, err := activeSession(ctx, s.sessions, sessionID, s.now())
	if err != nil {
		return CartView{}, err
	}
	return newCartView(session), nil
}

// Add appends a line or, when the item is already in the cart, bumps its quantity.
func (s *CartService) Add(ctx context.Context, req AddToCartRequest) (CartView, error) {
	// zero is treated like an absent quantity
	if req.Quantity != nil && *req.Quantity == 0 {
		req.Quantity = nil
	}
	if err := validateStruct(req); err != nil {
		return CartView{}, err
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	now := s.now()
	session, err := activeSession(ctx, s.sessions, req.SessionID, now)
	if err != nil {
		return CartView{}, err
	}

	item, err := s.menus.Get(ctx, req.MenuItemID)
	if errors.Is(err, store.ErrNotFound) {
		return CartView{}, NotFoundError("Menu item not found")
	}
	if err != nil {
		return CartView{}, err
	}
	if !item.Available {
		return CartView{}, ValidationError("Menu item is not available")
	}

	if i := session.FindLine(item.ID); i >= 0 {
		session.Cart[i].Quantity += quantity
		if req.SpecialInstructions != "" {
			session.Cart[i].SpecialInstructions = req.SpecialInstructions
		}
	} else {
		session.Cart = append(session.Cart, models.CartLine{
			MenuItemID:          item.ID,
			Name:                item.Name,
			Quantity:            quantity,
			Price:               item.Price,
			SpecialInstructions: req.SpecialInstructions,
		})
	}

	if err := s.sessions.SaveCart(ctx, session.SessionID, session.Cart, now); err != nil {
		return CartView{}, fmt.Errorf("save cart: %w", err)
	}
	return newCartView(session), nil
}

// Update replaces a line's quantity; zero removes the line.
func (s *CartService) Update(ctx context.Context, req UpdateCartRequest) (CartView, error) {
	if err := validateStruct(req); err != nil {
		return CartView{}, err
	}
	if *req.Quantity < 0 {
		return CartView{}, ValidationError("Quantity cannot be negative")
	}

	now := s.now()
	session, err := activeSession(ctx, s.sessions, req.SessionID, now)
	if err != nil {
		return CartView{}, err
	}

	i := lineIndex(session, req.MenuItemID)
	if i < 0 {
		return CartView{}, NotFoundError("Item not found in cart")
	}

	if *req.Quantity == 0 {
		session.Cart = append(session.Cart[:i], session.Cart[i+1:]...)
	} else {
		session.Cart[i].Quantity = *req.Quantity
	}

	if err := s.sessions.SaveCart(ctx, session.SessionID, session.Cart, now); err != nil {
		return CartView{}, fmt.Errorf("save cart: %w", err)
	}
	return newCartView(session), nil
}

// Remove drops the item's line; removing an item that is not in the cart is a no-op.
func (s *CartService) Remove(ctx context.Context, req RemoveFromCartRequest) (CartView, error) {
	if err := validateStruct(req); err != nil {
		return CartView{}, err
	}

	now := s.now()
	session, err := activeSession(ctx, s.sessions, req.SessionID, now)
	if err != nil {
		return CartView{}, err
	}

	kept := make([]models.CartLine, 0, len(session.Cart))
	for _, line := range session.Cart {
		if line.MenuItemID.Hex() != req.MenuItemID {
			kept = append(kept, line)
		}
	}
	session.Cart = kept

	if err := s.sessions.SaveCart(ctx, session.SessionID, session.Cart, now); err != nil {
		return CartView{}, fmt.Errorf("save cart: %w", err)
	}
	return newCartView(session), nil
}

func lineIndex(session models.Session, menuItemID string) int {
	for i, line := range session.Cart {
		if line.MenuItemID.Hex() == menuItemID {
			return i
		}
	}
	return -1
}
