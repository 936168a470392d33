package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SessionActive    = "active"
	SessionCompleted = "completed"
	SessionExpired   = "expired"
)

type Session struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SessionID   string             `bson:"session_id" json:"sessionId"`
	TableNumber int                `bson:"table_number" json:"tableNumber"`
	Cart        []CartLine         `bson:"cart" json:"cart"`
	Status      string             `bson:"status" json:"status"`
	ExpiresAt   time.Time          `bson:"expires_at" json:"expiresAt"`
	Created_at  time.Time          `bson:"created_at" json:"createdAt"`
	Updated_at  time.Time          `bson:"updated_at" json:"updatedAt"`
}

// CartLine holds one distinct menu item; Price is copied when the line is created.
type CartLine struct {
	MenuItemID          primitive.ObjectID `bson:"menu_item" json:"menuItemId"`
	Name                string             `bson:"name" json:"name"`
	Quantity            int                `bson:"quantity" json:"quantity"`
	Price               float64            `bson:"price" json:"price"`
	SpecialInstructions string             `bson:"special_instructions" json:"specialInstructions"`
}

func (s *Session) CartTotal() float64 {
	var total float64
	for _, line := range s.Cart {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// IsActiveAt reports whether the session is active and not yet past expiresAt.
func (s *Session) IsActiveAt(now time.Time) bool {
	return s.Status == SessionActive && s.ExpiresAt.After(now)
}

func (s *Session) FindLine(menuItemID primitive.ObjectID) int {
	for i, line := range s.Cart {
		if line.MenuItemID == menuItemID {
			return i
		}
	}
	return -1
}
