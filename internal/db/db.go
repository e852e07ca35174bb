package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/foodbridge/foodbridge/internal/config"
)

// Connect opens the process-wide MongoDB connection and verifies it with a
// ping. A failed initial connection is fatal; there is no reconnect loop.
func Connect(cfg config.App) *mongo.Database {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(5 * time.Second).
		SetSocketTimeout(45 * time.Second)

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		log.Fatalf("Unable to connect to MongoDB: %v", err)
	}
	if err := client.Ping(context.Background(), nil); err != nil {
		log.Fatalf("Unable to ping MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB successfully")

	database := client.Database(cfg.MongoDB)
	ensureEmailIndex(database)
	return database
}

// ensureEmailIndex enforces email uniqueness at the store level.
func ensureEmailIndex(database *mongo.Database) {
	_, err := database.Collection("users").Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("failed to ensure users.email index: %v", err)
	}
}
