package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/exportbase/marketplace-api/internal/core/domain"
	"github.com/exportbase/marketplace-api/internal/core/ports"
)

const leadCollection = "leads"

type MongoLeadRepository struct {
	coll *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *MongoLeadRepository {
	return &MongoLeadRepository{coll: db.Collection(leadCollection)}
}

func (r *MongoLeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	if _, err := r.coll.InsertOne(ctx, lead); err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

func (r *MongoLeadRepository) FindByID(ctx context.Context, id string) (*domain.Lead, error) {
	var lead domain.Lead
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&lead); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("find lead: %w", err)
	}
	return &lead, nil
}

func (r *MongoLeadRepository) List(ctx context.Context, filter ports.ListLeadsFilter) ([]*domain.Lead, int64, error) {
	query := bson.M{}
	if filter.MarketerID != "" {
		query["marketer_id"] = filter.MarketerID
	}
	if filter.FactoryName != "" {
		query["factory_name"] = filter.FactoryName
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Search != "" {
		regex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"client_name": regex},
			bson.M{"product_name": regex},
		}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count leads: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}
	defer cursor.Close(ctx)

	var leads []*domain.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, 0, fmt.Errorf("decode leads: %w", err)
	}

	return leads, total, nil
}

func (r *MongoLeadRepository) UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("update lead status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrLeadNotFound
	}
	return nil
}

// Seed drops the collection and inserts the fixtures.
func (r *MongoLeadRepository) Seed(ctx context.Context, leads []*domain.Lead) error {
	if err := r.coll.Drop(ctx); err != nil {
		return fmt.Errorf("drop leads: %w", err)
	}
	if len(leads) == 0 {
		return nil
	}

	docs := make([]interface{}, len(leads))
	for i, lead := range leads {
		docs[i] = lead
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed leads: %w", err)
	}
	return nil
}
