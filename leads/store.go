package leads

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"planetholiday/db"
	"planetholiday/models"
	"planetholiday/utils"
)

// leadStore is the persistence behind the bounded lead log.
type leadStore interface {
	Insert(ctx context.Context, lead models.BookingLead) error
	Count(ctx context.Context) (int64, error)
	Oldest(ctx context.Context, limit int64) ([]models.BookingLead, error)
	DeleteIDs(ctx context.Context, ids []string) error
	List(ctx context.Context) ([]models.BookingLead, error)
	Get(ctx context.Context, id string) (models.BookingLead, error)
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// mongoLeadStore backs the log with the leads collection.
type mongoLeadStore struct{}

func (mongoLeadStore) Insert(ctx context.Context, lead models.BookingLead) error {
	_, err := db.LeadsCollection.InsertOne(ctx, lead)
	return err
}

func (mongoLeadStore) Count(ctx context.Context) (int64, error) {
	return db.LeadsCollection.CountDocuments(ctx, bson.M{})
}

func (mongoLeadStore) Oldest(ctx context.Context, limit int64) ([]models.BookingLead, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}}).
		SetLimit(limit).
		SetProjection(bson.M{"leadid": 1})
	return utils.FindAndDecode[models.BookingLead](ctx, db.LeadsCollection, bson.M{}, opts)
}

func (mongoLeadStore) DeleteIDs(ctx context.Context, ids []string) error {
	_, err := db.LeadsCollection.DeleteMany(ctx, bson.M{"leadid": bson.M{"$in": ids}})
	return err
}

func (mongoLeadStore) List(ctx context.Context) ([]models.BookingLead, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	return utils.FindAndDecode[models.BookingLead](ctx, db.LeadsCollection, bson.M{}, opts)
}

func (mongoLeadStore) Get(ctx context.Context, id string) (models.BookingLead, error) {
	var lead models.BookingLead
	err := db.LeadsCollection.FindOne(ctx, bson.M{"leadid": id}).Decode(&lead)
	return lead, err
}

func (mongoLeadStore) SetStatus(ctx context.Context, id, status string) error {
	_, err := db.LeadsCollection.UpdateOne(ctx,
		bson.M{"leadid": id}, bson.M{"$set": bson.M{"status": status}})
	return err
}

func (mongoLeadStore) Delete(ctx context.Context, id string) error {
	_, err := db.LeadsCollection.DeleteOne(ctx, bson.M{"leadid": id})
	return err
}
