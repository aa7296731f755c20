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

type UserRepoMongo struct {
	col *mongo.Collection
}

func NewUserRepoMongo(db *mongo.Database) *UserRepoMongo {
	return &UserRepoMongo{col: db.Collection("users")}
}

func (u *UserRepoMongo) EnsureIndexes(ctx context.Context) error {
	_, err := u.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (u *UserRepoMongo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	user.ID = primitive.NewObjectID()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := u.col.InsertOne(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *UserRepoMongo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := u.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UserRepoMongo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	err := u.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
