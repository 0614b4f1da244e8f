package archive

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoArchive struct {
	collection *mongo.Collection
}

func NewMongoArchive(client *mongo.Client, database, collection string) *MongoArchive {
	return &MongoArchive{collection: client.Database(database).Collection(collection)}
}

// --------------------------------------------------
// Insert one daily summary
// --------------------------------------------------
func (a *MongoArchive) Insert(ctx context.Context, summary DailySummary) error {
	_, err := a.collection.InsertOne(ctx, summary)
	return err
}

// --------------------------------------------------
// All summaries, _id projected out
// --------------------------------------------------
func (a *MongoArchive) FindAll(ctx context.Context) ([]DailySummary, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0})

	cursor, err := a.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summaries := []DailySummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}
