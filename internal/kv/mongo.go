package kv

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoEntry is the stored shape of one key: {_id: key, value, updatedAt}.
type mongoEntry struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Mongo keeps one document per key in a collection.
type Mongo struct {
	col *mongo.Collection
	// client is disconnected on Close when the backend owns it
	client *mongo.Client
}

// NewMongo uses col; the caller keeps ownership of the client.
func NewMongo(col *mongo.Collection) *Mongo {
	return &Mongo{col: col}
}

// NewMongoOwned is NewMongo for a client that Close should disconnect.
func NewMongoOwned(client *mongo.Client, database, collection string) *Mongo {
	return &Mongo{col: client.Database(database).Collection(collection), client: client}
}

func (m *Mongo) Get(ctx context.Context, key string) (string, bool, error) {
	var e mongoEntry
	err := m.col.FindOne(ctx, bson.M{"_id": key}).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, err
	}
	return e.Value, true, nil
}

func (m *Mongo) Set(ctx context.Context, key, value string) error {
	filter := bson.M{"_id": key}
	update := bson.M{"$set": bson.M{"value": value, "updatedAt": time.Now().UTC()}}
	_, err := m.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.col.Database().Client().Ping(ctx, nil)
}

func (m *Mongo) Close() error {
	if m.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
