package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ToursCollection        *mongo.Collection
	DestinationsCollection *mongo.Collection
	ArticlesCollection     *mongo.Collection
	CommentsCollection     *mongo.Collection
	LeadsCollection        *mongo.Collection
	LeadConfigCollection   *mongo.Collection
	UserCollection         *mongo.Collection
	Client                 *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(),
		options.Client().ApplyURI(uri).SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("planetholiday")
	ToursCollection = database.Collection("tourpackages")
	DestinationsCollection = database.Collection("destinations")
	ArticlesCollection = database.Collection("blogarticles")
	CommentsCollection = database.Collection("blogcomments")
	LeadsCollection = database.Collection("leads")
	LeadConfigCollection = database.Collection("leadconfig")
	UserCollection = database.Collection("users")

	if err := EnsureIndexes(context.TODO()); err != nil {
		log.Printf("Index bootstrap failed: %v", err)
	}
}
