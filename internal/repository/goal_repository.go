package repository

import (
	"context"
	"errors"
	"time"

	"mlcourse_backend/internal/model"
	"mlcourse_backend/internal/util"
	"mlcourse_backend/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GoalRepository interface {
	Create(ctx context.Context, goal *model.Goal) error
	FindByUser(ctx context.Context, userID string) ([]model.Goal, error)
	UpdateFields(ctx context.Context, userID, id string, fields map[string]interface{}) (*model.Goal, error)
	Delete(ctx context.Context, userID, id string) (*model.Goal, error)
}

type mongoGoalRepository struct {
	coll *mongo.Collection
}

func NewGoalRepository(db *mongo.Database) GoalRepository {
	return &mongoGoalRepository{coll: db.Collection(database.GoalCollection)}
}

func (r *mongoGoalRepository) Create(ctx context.Context, goal *model.Goal) error {
	now := time.Now()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, goal)
	return err
}

func (r *mongoGoalRepository) FindByUser(ctx context.Context, userID string) ([]model.Goal, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var goals []model.Goal
	if err := cursor.All(ctx, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *mongoGoalRepository) UpdateFields(ctx context.Context, userID, id string, fields map[string]interface{}) (*model.Goal, error) {
	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	var goal model.Goal
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"id": id, "userId": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&goal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, util.ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *mongoGoalRepository) Delete(ctx context.Context, userID, id string) (*model.Goal, error) {
	var goal model.Goal
	err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id, "userId": userID}).Decode(&goal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, util.ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}
