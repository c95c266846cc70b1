package db

import (
	"context"
	"time"

	"expense_manager/internal/config"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Init connects to MongoDB and returns the application database handle.
// The client is created once at startup and shared by every request;
// the driver manages connection concurrency internally.
func Init(cfg *config.MongoConfig) (*mongo.Client, *mongo.Database) {
	var client *mongo.Client
	var err error

	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

		client, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if err != nil {
			cancel()
			logrus.WithError(err).Warnf("Failed to connect to MongoDB (attempt %d/%d)", i+1, maxRetries)
			time.Sleep(time.Duration(i+1) * time.Second)
			continue
		}

		if err = client.Ping(ctx, readpref.Primary()); err != nil {
			cancel()
			logrus.WithError(err).Warnf("Failed to ping MongoDB (attempt %d/%d)", i+1, maxRetries)
			_ = client.Disconnect(context.Background())
			time.Sleep(time.Duration(i+1) * time.Second)
			continue
		}

		cancel()
		break
	}

	if err != nil {
		logrus.WithError(err).Fatalf("Could not connect to MongoDB after %d attempts", maxRetries)
	}

	logrus.Info("Connected to MongoDB")
	return client, client.Database(cfg.DBName)
}

// Close disconnects the shared client on shutdown.
func Close(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logrus.WithError(err).Error("Failed to disconnect from MongoDB")
	}
}
