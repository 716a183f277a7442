package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var salesIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "fingerprint", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_fingerprint"),
	},
	{
		Keys:    bson.D{{Key: "customerName", Value: "text"}, {Key: "phoneNumber", Value: "text"}},
		Options: options.Index().SetName("text_customer"),
	},
	{Keys: bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}},
	{Keys: bson.D{{Key: "quantity", Value: -1}}},
	{Keys: bson.D{{Key: "customerName", Value: 1}}},
	{Keys: bson.D{{Key: "customerRegion", Value: 1}}},
	{Keys: bson.D{{Key: "gender", Value: 1}}},
	{Keys: bson.D{{Key: "productCategory", Value: 1}}},
	{Keys: bson.D{{Key: "paymentMethod", Value: 1}}},
	{Keys: bson.D{{Key: "tags", Value: 1}}},
	{Keys: bson.D{{Key: "age", Value: 1}}},
}

// EnsureIndexes creates the unique, text and filter indexes. It is idempotent.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	if _, err := coll.Indexes().CreateMany(ctx, salesIndexes); err != nil {
		return errors.Wrap(err, "failed to create sales indexes")
	}

	return nil
}
