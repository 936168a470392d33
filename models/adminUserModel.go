package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin        = "admin"
	RoleKitchenStaff = "kitchen-staff"
)

type AdminUser struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username   string             `bson:"username" json:"username"`
	Password   string             `bson:"password" json:"-"`
	Name       string             `bson:"name" json:"name"`
	Role       string             `bson:"role" json:"role"`
	IsActive   bool               `bson:"is_active" json:"isActive"`
	LastLogin  *time.Time         `bson:"last_login,omitempty" json:"lastLogin,omitempty"`
	Created_at time.Time          `bson:"created_at" json:"createdAt"`
	Updated_at time.Time          `bson:"updated_at" json:"updatedAt"`
}
