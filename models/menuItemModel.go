package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CategoryAppetizers = "appetizers"
	CategoryMainCourse = "main-course"
	CategoryDesserts   = "desserts"
	CategoryBeverages  = "beverages"
	CategorySides      = "sides"

	DefaultPreparationTime = 15
	DefaultStockLevel      = 100
)

var MenuCategories = []string{
	CategoryAppetizers,
	CategoryMainCourse,
	CategoryDesserts,
	CategoryBeverages,
	CategorySides,
}

func IsMenuCategory(category string) bool {
	for _, c := range MenuCategories {
		if c == category {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Description     string             `bson:"description" json:"description"`
	Price           float64            `bson:"price" json:"price"`
	Category        string             `bson:"category" json:"category"`
	Image           string             `bson:"image" json:"image"`
	Available       bool               `bson:"available" json:"available"`
	PreparationTime int                `bson:"preparation_time" json:"preparationTime"`
	Tags            []string           `bson:"tags" json:"tags"`
	StockLevel      *int               `bson:"stock_level,omitempty" json:"-"`
	Created_at      time.Time          `bson:"created_at" json:"createdAt"`
	Updated_at      time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Stock returns the tracked stock level, or the default when none was recorded.
func (m MenuItem) Stock() int {
	if m.StockLevel == nil {
		return DefaultStockLevel
	}
	return *m.StockLevel
}

// MenuFilter narrows menu listings; nil fields are ignored.
type MenuFilter struct {
	Category  *string
	Available *bool
}

// MenuItemPatch carries a partial update; nil fields are left untouched.
type MenuItemPatch struct {
	Name            *string   `json:"name" validate:"omitempty,min=1,max=100"`
	Description     *string   `json:"description" validate:"omitempty,min=1"`
	Price           *float64  `json:"price" validate:"omitempty,gte=0"`
	Category        *string   `json:"category"`
	Image           *string   `json:"image"`
	Available       *bool     `json:"available"`
	PreparationTime *int      `json:"preparationTime" validate:"omitempty,gte=0"`
	Tags            *[]string `json:"tags"`
	StockLevel      *int      `json:"-"`
}
