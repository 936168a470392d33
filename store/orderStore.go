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

const (
	popularItemsLimit = 5
	recentOrdersLimit = 10
)

type MongoOrderStore struct {
	collection *mongo.Collection
}

func NewMongoOrderStore(db *mongo.Database) *MongoOrderStore {
	return &MongoOrderStore{collection: db.Collection(OrderCollection)}
}

func (s *MongoOrderStore) Create(ctx context.Context, order *models.Order) error {
	result, err := s.collection.InsertOne(ctx, order)
	if err != nil {
		return wrapWriteError(err)
	}
	order.ID = insertedID(result, order.ID)
	return nil
}

func (s *MongoOrderStore) Get(ctx context.Context, id string) (models.Order, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.Order{}, err
	}

	var order models.Order
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrNotFound
	}
	return order, err
}

func (s *MongoOrderStore) ListBySession(ctx context.Context, sessionID string) ([]models.Order, error) {
	return s.find(ctx, bson.M{"session_id": sessionID}, newestFirst())
}

func (s *MongoOrderStore) ListByTable(ctx context.Context, tableNumber int) ([]models.Order, error) {
	return s.find(ctx, bson.M{"table_number": tableNumber}, newestFirst())
}

func (s *MongoOrderStore) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, int64, error) {
	query := bson.M{}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}
	if filter.From != nil || filter.To != nil {
		created := bson.M{}
		if filter.From != nil {
			created["$gte"] = *filter.From
		}
		if filter.To != nil {
			created["$lte"] = *filter.To
		}
		query["created_at"] = created
	}

	total, err := s.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := newestFirst().SetSkip(filter.Skip)
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}
	orders, err := s.find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (s *MongoOrderStore) UpdateStatus(ctx context.Context, id, status string, now time.Time) (models.Order, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.Order{}, err
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: status},
		{Key: "updated_at", Value: now},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order models.Order
	err = s.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrNotFound
	}
	return order, err
}

type totalsRow struct {
	Count   int64   `bson:"count"`
	Revenue float64 `bson:"revenue"`
}

type statusRow struct {
	Status string `bson:"_id"`
	Count  int64  `bson:"count"`
}

// Stats builds the dashboard aggregate with one pipeline per figure.
func (s *MongoOrderStore) Stats(ctx context.Context, dayStart, dayEnd time.Time) (models.OrderStats, error) {
	stats := models.OrderStats{StatusBreakdown: map[string]int64{}}

	overall, err := s.totals(ctx, bson.D{})
	if err != nil {
		return stats, err
	}
	stats.TotalOrders = overall.Count
	stats.TotalRevenue = overall.Revenue
	if overall.Count > 0 {
		stats.AverageOrder = overall.Revenue / float64(overall.Count)
	}

	today, err := s.totals(ctx, bson.D{{Key: "created_at", Value: bson.D{
		{Key: "$gte", Value: dayStart},
		{Key: "$lt", Value: dayEnd},
	}}})
	if err != nil {
		return stats, err
	}
	stats.TodayOrders = today.Count
	stats.TodayRevenue = today.Revenue

	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$status"},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}}
	cursor, err := s.collection.Aggregate(ctx, mongo.Pipeline{groupStage})
	if err != nil {
		return stats, err
	}
	var statuses []statusRow
	if err := cursor.All(ctx, &statuses); err != nil {
		return stats, err
	}
	for _, row := range statuses {
		stats.StatusBreakdown[row.Status] = row.Count
	}

	unwindStage := bson.D{{Key: "$unwind", Value: "$items"}}
	itemGroupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$items.menu_item"},
		{Key: "name", Value: bson.D{{Key: "$first", Value: "$items.name"}}},
		{Key: "total_ordered", Value: bson.D{{Key: "$sum", Value: "$items.quantity"}}},
		{Key: "revenue", Value: bson.D{{Key: "$sum", Value: bson.D{
			{Key: "$multiply", Value: bson.A{"$items.price", "$items.quantity"}},
		}}}},
	}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "total_ordered", Value: -1}, {Key: "name", Value: 1}}}}
	limitStage := bson.D{{Key: "$limit", Value: popularItemsLimit}}

	cursor, err = s.collection.Aggregate(ctx, mongo.Pipeline{unwindStage, itemGroupStage, sortStage, limitStage})
	if err != nil {
		return stats, err
	}
	stats.PopularItems = []models.PopularItem{}
	if err := cursor.All(ctx, &stats.PopularItems); err != nil {
		return stats, err
	}

	stats.RecentOrders, err = s.find(ctx, bson.M{}, newestFirst().SetLimit(recentOrdersLimit))
	if err != nil {
		return stats, err
	}
	return stats, nil
}

func (s *MongoOrderStore) totals(ctx context.Context, match bson.D) (totalsRow, error) {
	matchStage := bson.D{{Key: "$match", Value: match}}
	groupStage := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: nil},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$total"}}},
	}}}

	cursor, err := s.collection.Aggregate(ctx, mongo.Pipeline{matchStage, groupStage})
	if err != nil {
		return totalsRow{}, err
	}
	var rows []totalsRow
	if err := cursor.All(ctx, &rows); err != nil {
		return totalsRow{}, err
	}
	if len(rows) == 0 {
		return totalsRow{}, nil
	}
	return rows[0], nil
}

func (s *MongoOrderStore) find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Order, error) {
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}
