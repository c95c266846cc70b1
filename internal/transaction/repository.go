package transaction

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// recentLimit caps the listing endpoint. There is no pagination cursor;
// callers never see more than the newest 10 records through that path.
const recentLimit = 10

type RepositoryInterface interface {
	Insert(ctx context.Context, tx *Transaction) (primitive.ObjectID, error)
	FindRecentByUser(ctx context.Context, userID string) ([]*Transaction, error)
	FindByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]*Transaction, error)
	FindAllByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]*Transaction, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type Repository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) RepositoryInterface {
	return &Repository{coll: db.Collection("transactions")}
}

// Insert stores a new transaction and returns the generated id.
func (r *Repository) Insert(ctx context.Context, tx *Transaction) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, tx)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert transaction")
		return primitive.NilObjectID, err
	}

	id := res.InsertedID.(primitive.ObjectID)

	logrus.WithFields(logrus.Fields{
		"transaction_id": id.Hex(),
		"user_id":        tx.UserID,
		"type":           tx.Type,
	}).Info("Transaction created successfully")

	return id, nil
}

// FindRecentByUser returns up to the 10 newest transactions for a user,
// date descending.
func (r *Repository) FindRecentByUser(ctx context.Context, userID string) ([]*Transaction, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(recentLimit)

	cur, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		logrus.WithError(err).Error("Failed to query recent transactions")
		return nil, err
	}

	return decodeAll(ctx, cur)
}

// FindByUserBetween returns the user's transactions with
// start <= date < end, date descending. Used by the day search.
func (r *Repository) FindByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]*Transaction, error) {
	filter := bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": start, "$lt": end},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		logrus.WithError(err).Error("Failed to search transactions by date")
		return nil, err
	}

	return decodeAll(ctx, cur)
}

// FindAllByUserInRange returns every transaction with
// start <= date <= end, unlimited. The report aggregates over the full
// result set, so this must never share the limited listing query.
func (r *Repository) FindAllByUserInRange(ctx context.Context, userID string, start, end time.Time) ([]*Transaction, error) {
	filter := bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": start, "$lte": end},
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		logrus.WithError(err).Error("Failed to query transactions for report")
		return nil, err
	}

	return decodeAll(ctx, cur)
}

// DeleteByID removes a transaction by id hex. Returns false when no
// record matched. A malformed id is an error, not a miss.
func (r *Repository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logrus.WithError(err).Error("Failed to delete transaction")
		return false, err
	}

	return res.DeletedCount > 0, nil
}

func decodeAll(ctx context.Context, cur *mongo.Cursor) ([]*Transaction, error) {
	out := []*Transaction{}
	if err := cur.All(ctx, &out); err != nil {
		logrus.WithError(err).Error("Failed to decode transactions")
		return nil, err
	}
	return out, nil
}
