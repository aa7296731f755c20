package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hpmalinova/Finance-Tracker/model"
)

type TransactionRepoMongo struct {
	col *mongo.Collection
}

func NewTransactionRepoMongo(db *mongo.Database) *TransactionRepoMongo {
	return &TransactionRepoMongo{col: db.Collection("transactions")}
}

func (t *TransactionRepoMongo) EnsureIndexes(ctx context.Context) error {
	_, err := t.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "type", Value: 1}}},
		{Keys: bson.D{{Key: "recurring", Value: 1}}},
	})
	return err
}

func (t *TransactionRepoMongo) Create(ctx context.Context, transaction *model.Transaction) (*model.Transaction, error) {
	transaction.ID = primitive.NewObjectID()
	if transaction.Type == "" {
		transaction.Type = model.TypeExpense
	}
	now := time.Now()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now

	if _, err := t.col.InsertOne(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (t *TransactionRepoMongo) FindRecent(ctx context.Context, userID primitive.ObjectID, limit int64) ([]model.Transaction, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit)

	cursor, err := t.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}

	transactions := []model.Transaction{}
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (t *TransactionRepoMongo) FindPage(ctx context.Context, userID primitive.ObjectID, start, end *time.Time, page, limit int64) ([]model.Transaction, int64, error) {
	filter := bson.M{"userId": userID}
	if start != nil || end != nil {
		date := bson.M{}
		if start != nil {
			date["$gte"] = *start
		}
		if end != nil {
			date["$lte"] = *end
		}
		filter["date"] = date
	}

	total, err := t.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cursor, err := t.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	transactions := []model.Transaction{}
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

func (t *TransactionRepoMongo) FindBetween(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]model.Transaction, error) {
	filter := bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": from, "$lte": to},
	}

	cursor, err := t.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	transactions := []model.Transaction{}
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (t *TransactionRepoMongo) Update(ctx context.Context, id, userID primitive.ObjectID, transaction *model.Transaction) (*model.Transaction, error) {
	update := bson.M{"$set": bson.M{
		"amount":          transaction.Amount,
		"from":            transaction.From,
		"to":              transaction.To,
		"date":            transaction.Date,
		"paymentMethod":   transaction.PaymentMethod,
		"category":        transaction.Category,
		"notes":           transaction.Notes,
		"type":            transaction.Type,
		"tags":            transaction.Tags,
		"recurring":       transaction.Recurring,
		"frequency":       transaction.Frequency,
		"secondpartyId":   transaction.SecondPartyID,
		"secondpartyType": transaction.SecondPartyType,
		"updatedAt":       time.Now(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.Transaction
	err := t.col.FindOneAndUpdate(ctx, bson.M{"_id": id, "userId": userID}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (t *TransactionRepoMongo) Delete(ctx context.Context, id, userID primitive.ObjectID) error {
	result, err := t.col.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
