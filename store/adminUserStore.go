package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/02priyeshraj/Table_Ordering_Backend/models"
)

type MongoAdminUserStore struct {
	collection *mongo.Collection
}

func NewMongoAdminUserStore(db *mongo.Database) *MongoAdminUserStore {
	return &MongoAdminUserStore{collection: db.Collection(AdminUserCollection)}
}

func (s *MongoAdminUserStore) FindByUsername(ctx context.Context, username string) (models.AdminUser, error) {
	var user models.AdminUser
	err := s.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.AdminUser{}, ErrNotFound
	}
	return user, err
}

func (s *MongoAdminUserStore) FindByID(ctx context.Context, id string) (models.AdminUser, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.AdminUser{}, err
	}

	var user models.AdminUser
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.AdminUser{}, ErrNotFound
	}
	return user, err
}

func (s *MongoAdminUserStore) Create(ctx context.Context, user *models.AdminUser) error {
	result, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		return wrapWriteError(err)
	}
	user.ID = insertedID(result, user.ID)
	return nil
}

func (s *MongoAdminUserStore) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := s.collection.UpdateByID(ctx, oid, bson.D{{Key: "$set", Value: bson.D{
		{Key: "last_login", Value: at},
		{Key: "updated_at", Value: at},
	}}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
