package user

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no user matches the query.
var ErrNotFound = errors.New("user not found")

type RepositoryInterface interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByCredentials(ctx context.Context, username, password string) (*User, error)
	Insert(ctx context.Context, user *User) (primitive.ObjectID, error)
}

type Repository struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) RepositoryInterface {
	return &Repository{coll: db.Collection("users")}
}

// FindByUsername retrieves a user by username.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		logrus.WithError(err).Error("Failed to query user by username")
		return nil, err
	}

	return &u, nil
}

// FindByCredentials retrieves the user matching both username and
// password exactly. One find-one round trip, same as the login route
// has always worked.
func (r *Repository) FindByCredentials(ctx context.Context, username, password string) (*User, error) {
	var u User
	err := r.coll.FindOne(ctx, bson.M{"username": username, "password": password}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logrus.WithField("username", username).Warn("Login attempt with invalid credentials")
			return nil, ErrNotFound
		}
		logrus.WithError(err).Error("Failed to query user by credentials")
		return nil, err
	}

	return &u, nil
}

// Insert stores a new user and returns the generated id.
func (r *Repository) Insert(ctx context.Context, user *User) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		logrus.WithError(err).Error("Failed to create user")
		return primitive.NilObjectID, err
	}

	id := res.InsertedID.(primitive.ObjectID)

	logrus.WithFields(logrus.Fields{
		"user_id":  id.Hex(),
		"username": user.Username,
	}).Info("User created successfully")

	return id, nil
}
