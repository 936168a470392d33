package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderServed    = "served"
	OrderCancelled = "cancelled"
)

var OrderStatuses = []string{
	OrderPending,
	OrderConfirmed,
	OrderPreparing,
	OrderReady,
	OrderServed,
	OrderCancelled,
}

// IsOrderStatus only checks membership; any status may follow any other.
func IsOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber string             `bson:"order_number" json:"orderNumber"`
	SessionID   string             `bson:"session_id" json:"sessionId"`
	TableNumber int                `bson:"table_number" json:"tableNumber"`
	Items       []OrderLine        `bson:"items" json:"items"`
	Subtotal    float64            `bson:"subtotal" json:"subtotal"`
	Tax         float64            `bson:"tax" json:"tax"`
	ServiceFee  float64            `bson:"service_fee" json:"serviceFee"`
	Total       float64            `bson:"total" json:"total"`
	Status      string             `bson:"status" json:"status"`
	Notes       string             `bson:"notes" json:"notes"`
	Created_at  time.Time          `bson:"created_at" json:"createdAt"`
	Updated_at  time.Time          `bson:"updated_at" json:"updatedAt"`
}

type OrderLine struct {
	MenuItemID          primitive.ObjectID `bson:"menu_item" json:"menuItemId"`
	Name                string             `bson:"name" json:"name"`
	Quantity            int                `bson:"quantity" json:"quantity"`
	Price               float64            `bson:"price" json:"price"`
	SpecialInstructions string             `bson:"special_instructions" json:"specialInstructions"`
}

func (l OrderLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

type OrderFilter struct {
	Status *string
	From   *time.Time
	To     *time.Time
	Skip   int64
	Limit  int64
}

// OrderStats is the dashboard aggregate over stored orders.
type OrderStats struct {
	TotalOrders     int64
	TotalRevenue    float64
	AverageOrder    float64
	TodayOrders     int64
	TodayRevenue    float64
	StatusBreakdown map[string]int64
	PopularItems    []PopularItem
	RecentOrders    []Order
}

type PopularItem struct {
	MenuItemID   primitive.ObjectID `bson:"_id" json:"menuItemId"`
	Name         string             `bson:"name" json:"name"`
	TotalOrdered int                `bson:"total_ordered" json:"totalOrdered"`
	Revenue      float64            `bson:"revenue" json:"revenue"`
}
