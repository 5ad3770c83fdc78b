package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes mirrors the index set the query paths rely on: unique
// slugs, compound (status, primary sort), category filters, the 2dsphere
// point on destinations and the (articleid, commentid) comment key.
func EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	catalog := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "rating.average", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	if _, err := ToursCollection.Indexes().CreateMany(ctx, catalog); err != nil {
		return err
	}

	destIndexes := append(catalog,
		mongo.IndexModel{Keys: bson.D{{Key: "location.region", Value: 1}}},
		mongo.IndexModel{Keys: bson.D{{Key: "geo", Value: "2dsphere"}}},
	)
	if _, err := DestinationsCollection.Indexes().CreateMany(ctx, destIndexes); err != nil {
		return err
	}

	articleIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "publishedAt", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "featured", Value: 1}, {Key: "publishedAt", Value: -1}}},
	}
	if _, err := ArticlesCollection.Indexes().CreateMany(ctx, articleIndexes); err != nil {
		return err
	}

	commentIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "articleid", Value: 1}, {Key: "commentid", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := CommentsCollection.Indexes().CreateMany(ctx, commentIndexes); err != nil {
		return err
	}

	leadIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "leadid", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	}
	if _, err := LeadsCollection.Indexes().CreateMany(ctx, leadIndexes); err != nil {
		return err
	}

	_, err := UserCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}
