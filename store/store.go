package store

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound  = errors.New("store: not found")
	ErrInvalidID = errors.New("store: invalid id format")
	ErrDuplicate = errors.New("store: duplicate key")
)

const (
	MenuCollection      = "menu_items"
	SessionCollection   = "sessions"
	OrderCollection     = "orders"
	AdminUserCollection = "admin_users"
)

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// wrapWriteError maps unique index violations onto ErrDuplicate.
func wrapWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

func insertedID(result *mongo.InsertOneResult, fallback primitive.ObjectID) primitive.ObjectID {
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid
	}
	return fallback
}
