package store

import (
	"context"

	"github.com/carljonathan/fccExTracker/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const exercisesCollection = "exercises"

// ExerciseRepository handles persistence for logged exercises.
type ExerciseRepository struct {
	db *mongo.Database
}

func NewExerciseRepository(db *mongo.Database) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(ctx context.Context, exercise types.Exercise) (types.Exercise, error) {
	result, err := r.db.Collection(exercisesCollection).InsertOne(ctx, exercise)
	if err != nil {
		return types.Exercise{}, err
	}
	exercise.ID = result.InsertedID.(primitive.ObjectID)
	return exercise, nil
}

// ListByUser returns every exercise owned by the user, in insertion order.
func (r *ExerciseRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]types.Exercise, error) {
	cursor, err := r.db.Collection(exercisesCollection).Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exercises []types.Exercise
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}
