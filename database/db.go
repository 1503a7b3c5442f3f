package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"branchaudit/config"
	"branchaudit/database/docstore"
	"branchaudit/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	log.Println("Connected to MongoDB successfully!")
}

// InitStore opens the record store selected by STORE_BACKEND.
func InitStore(ctx context.Context) (docstore.Store, error) {
	switch config.AppConfig.StoreBackend {
	case "", "mongo":
		InitDB()
		return docstore.NewMongoStore(MongoClient, config.AppConfig.DatabaseName), nil
	case "firestore":
		app, err := utils.FirebaseInit(ctx)
		if err != nil {
			return nil, err
		}
		client, err := app.Firestore(ctx)
		if err != nil {
			return nil, fmt.Errorf("firebase: error getting Firestore client: %w", err)
		}
		log.Println("Connected to Firestore successfully!")
		return docstore.NewFirestoreStore(client), nil
	case "memory":
		log.Println("Using in-memory record store; records are lost on restart")
		return docstore.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown STORE_BACKEND %q", config.AppConfig.StoreBackend)
}
