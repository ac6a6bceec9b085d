package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/space-market/pos-server/internal/core/domain"
)

const journalCollection = "balance_events"

// JournalRepository implements ports.JournalStore on the balance_events
// collection.
type JournalRepository struct {
	coll *mongo.Collection
}

func NewJournalRepository(db *mongo.Database) *JournalRepository {
	return &JournalRepository{coll: db.Collection(journalCollection)}
}

// EnsureIndexes creates the index backing ListByUser.
func (r *JournalRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "recorded_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("journal index: %w", err)
	}
	return nil
}

// Insert persists a balance event to the audit collection.
func (r *JournalRepository) Insert(ctx context.Context, event *domain.BalanceEvent) error {
	_, err := r.coll.InsertOne(ctx, event)
	return err
}

func (r *JournalRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.BalanceEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "recorded_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("journal find: %w", err)
	}
	defer cur.Close(ctx)

	events := []domain.BalanceEvent{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("journal decode: %w", err)
	}
	return events, nil
}
