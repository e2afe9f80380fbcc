package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Employee-Management-System/config"
	"Employee-Management-System/models"
)

type PositionRepository interface {
	CreatePosition(ctx context.Context, position *models.Position) error
	GetAllPositions(ctx context.Context) ([]models.Position, error)
	GetPositionByID(ctx context.Context, id primitive.ObjectID) (*models.Position, error)
	UpdatePosition(ctx context.Context, id primitive.ObjectID, patch models.PositionPatch) (*models.Position, error)
	DeletePosition(ctx context.Context, id primitive.ObjectID) (bool, error)
	FindPositionByTitle(ctx context.Context, title string) (*models.Position, error)
}

type positionRepository struct {
	collection *mongo.Collection
}

func NewPositionRepository(db *mongo.Database) PositionRepository {
	return &positionRepository{
		collection: db.Collection(config.PositionCollection),
	}
}

func (r *positionRepository) CreatePosition(ctx context.Context, position *models.Position) error {
	position.ID = primitive.NewObjectID()
	position.CreatedAt = Now()

	if _, err := r.collection.InsertOne(ctx, position); err != nil {
		return fmt.Errorf("failed to create position: %w", err)
	}
	return nil
}

func (r *positionRepository) GetAllPositions(ctx context.Context) ([]models.Position, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find positions: %w", err)
	}
	defer cursor.Close(ctx)

	positions := []models.Position{}
	if err = cursor.All(ctx, &positions); err != nil {
		return nil, fmt.Errorf("failed to decode positions: %w", err)
	}
	return positions, nil
}

func (r *positionRepository) GetPositionByID(ctx context.Context, id primitive.ObjectID) (*models.Position, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *positionRepository) FindPositionByTitle(ctx context.Context, title string) (*models.Position, error) {
	return r.findOne(ctx, bson.M{"title": title})
}

func (r *positionRepository) findOne(ctx context.Context, filter bson.M) (*models.Position, error) {
	var position models.Position
	err := r.collection.FindOne(ctx, filter).Decode(&position)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find position: %w", err)
	}
	return &position, nil
}

func (r *positionRepository) UpdatePosition(ctx context.Context, id primitive.ObjectID, patch models.PositionPatch) (*models.Position, error) {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.DepartmentID != nil {
		set["department_id"] = *patch.DepartmentID
	}
	if len(set) == 0 {
		return r.GetPositionByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var position models.Position
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&position)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update position: %w", err)
	}
	return &position, nil
}

func (r *positionRepository) DeletePosition(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete position: %w", err)
	}
	return result.DeletedCount > 0, nil
}
