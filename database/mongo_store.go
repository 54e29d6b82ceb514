package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docusage/docusage-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoStore is a DocumentStore backed by a MongoDB collection, for
// deployments where the single-file store is not enough. Insertion order is
// recovered by sorting on the generated monotonic id.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%w: connect to mongo: %v", types.ErrStorage, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("%w: ping mongo: %v", types.ErrStorage, err)
	}
	return &MongoStore{
		collection: client.Database(dbName).Collection("documents"),
	}, nil
}

func (s *MongoStore) Append(ctx context.Context, input types.DocumentInput) (*types.Document, error) {
	doc := types.Document{
		ID:          newDocumentID(),
		Source:      input.Source,
		Name:        input.Name,
		Content:     input.Content,
		LastIndexed: time.Now().Unix(),
	}
	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("%w: insert document: %v", types.ErrStorage, err)
	}
	return &doc, nil
}

func (s *MongoStore) ListAll(ctx context.Context) ([]types.Document, error) {
	cursor, err := s.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: list documents: %v", types.ErrStorage, err)
	}
	docs := []types.Document{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: decode documents: %v", types.ErrStorage, err)
	}
	return docs, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*types.Document, error) {
	var doc types.Document
	err := s.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get document: %v", types.ErrStorage, err)
	}
	return &doc, nil
}

func (s *MongoStore) ReplaceAll(ctx context.Context, inputs []types.DocumentInput) error {
	if _, err := s.collection.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("%w: clear documents: %v", types.ErrStorage, err)
	}
	if len(inputs) == 0 {
		return nil
	}
	now := time.Now().Unix()
	docs := make([]interface{}, 0, len(inputs))
	for _, input := range inputs {
		docs = append(docs, types.Document{
			ID:          newDocumentID(),
			Source:      input.Source,
			Name:        input.Name,
			Content:     input.Content,
			LastIndexed: now,
		})
	}
	if _, err := s.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("%w: seed documents: %v", types.ErrStorage, err)
	}
	return nil
}
