package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/krishnateja08/FII-DII-Pulse/customerrors"
	"github.com/krishnateja08/FII-DII-Pulse/model"
)

type SnapshotRepository struct {
	collection *mongo.Collection
}

func NewSnapshotRepository(db *mongo.Database) *SnapshotRepository {
	return &SnapshotRepository{
		collection: db.Collection(model.SnapshotCollectionName),
	}
}

// SaveRun upserts the snapshot keyed by run date, so a re-run within the
// same day replaces that day's record.
func (r *SnapshotRepository) SaveRun(ctx context.Context, snapshot model.DashboardSnapshot) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": snapshot.RunDate},
		bson.M{"$set": snapshot},
		opts,
	)
	return err
}

func (r *SnapshotRepository) FindByDate(ctx context.Context, runDate string) (*model.DashboardSnapshot, error) {
	var snapshot model.DashboardSnapshot
	err := r.collection.FindOne(ctx, bson.M{"_id": runDate}).Decode(&snapshot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, customerrors.ErrSnapshotNotFound
		}
		return nil, err
	}
	return &snapshot, nil
}

func (r *SnapshotRepository) FindLatest(ctx context.Context) (*model.DashboardSnapshot, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})
	var snapshot model.DashboardSnapshot
	err := r.collection.FindOne(ctx, bson.D{}, opts).Decode(&snapshot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, customerrors.ErrSnapshotNotFound
		}
		return nil, err
	}
	return &snapshot, nil
}
