package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/02priyeshraj/Table_Ordering_Backend/models"
)

type MongoMenuStore struct {
	collection *mongo.Collection
}

func NewMongoMenuStore(db *mongo.Database) *MongoMenuStore {
	return &MongoMenuStore{collection: db.Collection(MenuCollection)}
}

func (s *MongoMenuStore) List(ctx context.Context, filter models.MenuFilter) ([]models.MenuItem, error) {
	query := bson.M{}
	if filter.Category != nil {
		query["category"] = *filter.Category
	}
	if filter.Available != nil {
		query["available"] = *filter.Available
	}

	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := s.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoMenuStore) Get(ctx context.Context, id string) (models.MenuItem, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.MenuItem{}, err
	}

	var item models.MenuItem
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.MenuItem{}, ErrNotFound
	}
	return item, err
}

func (s *MongoMenuStore) Create(ctx context.Context, item *models.MenuItem) error {
	result, err := s.collection.InsertOne(ctx, item)
	if err != nil {
		return wrapWriteError(err)
	}
	item.ID = insertedID(result, item.ID)
	return nil
}

func (s *MongoMenuStore) Update(ctx context.Context, id string, patch models.MenuItemPatch) (models.MenuItem, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.MenuItem{}, err
	}

	set := bson.D{{Key: "updated_at", Value: time.Now()}}
	if patch.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *patch.Description})
	}
	if patch.Price != nil {
		set = append(set, bson.E{Key: "price", Value: *patch.Price})
	}
	if patch.Category != nil {
		set = append(set, bson.E{Key: "category", Value: *patch.Category})
	}
	if patch.Image != nil {
		set = append(set, bson.E{Key: "image", Value: *patch.Image})
	}
	if patch.Available != nil {
		set = append(set, bson.E{Key: "available", Value: *patch.Available})
	}
	if patch.PreparationTime != nil {
		set = append(set, bson.E{Key: "preparation_time", Value: *patch.PreparationTime})
	}
	if patch.Tags != nil {
		set = append(set, bson.E{Key: "tags", Value: *patch.Tags})
	}
	if patch.StockLevel != nil {
		set = append(set, bson.E{Key: "stock_level", Value: *patch.StockLevel})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var item models.MenuItem
	err = s.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.MenuItem{}, ErrNotFound
	}
	if err != nil {
		return models.MenuItem{}, wrapWriteError(err)
	}
	return item, nil
}

func (s *MongoMenuStore) Delete(ctx context.Context, id string) (models.MenuItem, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.MenuItem{}, err
	}

	var item models.MenuItem
	err = s.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.MenuItem{}, ErrNotFound
	}
	return item, err
}

func (s *MongoMenuStore) Count(ctx context.Context) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{})
}
