package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/02priyeshraj/Table_Ordering_Backend/models"
)

// MongoSessionStore relies on the expires_at TTL index for cleanup. The
// monitor only runs once a minute, so every read also filters on expires_at.
type MongoSessionStore struct {
	collection *mongo.Collection
}

func NewMongoSessionStore(db *mongo.Database) *MongoSessionStore {
	return &MongoSessionStore{collection: db.Collection(SessionCollection)}
}

func (s *MongoSessionStore) FindActiveByTable(ctx context.Context, tableNumber int, now time.Time) (models.Session, error) {
	return s.findOne(ctx, bson.M{
		"table_number": tableNumber,
		"status":       models.SessionActive,
		"expires_at":   bson.M{"$gt": now},
	})
}

func (s *MongoSessionStore) FindByID(ctx context.Context, sessionID string, now time.Time) (models.Session, error) {
	return s.findOne(ctx, bson.M{
		"session_id": sessionID,
		"expires_at": bson.M{"$gt": now},
	})
}

func (s *MongoSessionStore) findOne(ctx context.Context, filter bson.M) (models.Session, error) {
	var session models.Session
	err := s.collection.FindOne(ctx, filter).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Session{}, ErrNotFound
	}
	if err != nil {
		return models.Session{}, err
	}
	if session.Cart == nil {
		session.Cart = []models.CartLine{}
	}
	return session, nil
}

func (s *MongoSessionStore) Create(ctx context.Context, session *models.Session) error {
	result, err := s.collection.InsertOne(ctx, session)
	if err != nil {
		return wrapWriteError(err)
	}
	session.ID = insertedID(result, session.ID)
	return nil
}

func (s *MongoSessionStore) SaveCart(ctx context.Context, sessionID string, cart []models.CartLine, now time.Time) error {
	if cart == nil {
		cart = []models.CartLine{}
	}
	result, err := s.collection.UpdateOne(ctx,
		bson.M{"session_id": sessionID},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "cart", Value: cart},
			{Key: "updated_at", Value: now},
		}}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
