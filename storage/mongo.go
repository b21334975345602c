package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/davonjagah/JagahVA/models"
)

type userDoc struct {
	ID                string `bson:"_id"`
	models.UserRecord `bson:",inline"`
}

type MongoStore struct {
	client *mongo.Client
	users  *mongo.Collection
}

func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("storage: connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("storage: ping mongo: %w", err)
	}

	return &MongoStore{
		client: client,
		users:  client.Database(database).Collection("users"),
	}, nil
}

func (s *MongoStore) GetUser(ctx context.Context, userID string) (*models.UserRecord, error) {
	var doc userDoc
	err := s.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.NewUserRecord(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: get user %s: %w", userID, err)
	}

	record := doc.UserRecord
	record.Normalize()
	return &record, nil
}

func (s *MongoStore) SaveUser(ctx context.Context, userID string, record *models.UserRecord) error {
	doc := userDoc{ID: userID, UserRecord: *record}
	_, err := s.users.ReplaceOne(ctx, bson.M{"_id": userID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("storage: save user %s: %w", userID, err)
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
