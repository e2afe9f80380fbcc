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

// Lookups return (nil, nil) when no document matches.
type DepartmentRepository interface {
	CreateDepartment(ctx context.Context, department *models.Department) error
	GetAllDepartments(ctx context.Context) ([]models.Department, error)
	GetDepartmentByID(ctx context.Context, id primitive.ObjectID) (*models.Department, error)
	UpdateDepartmentName(ctx context.Context, id primitive.ObjectID, name string) (*models.Department, error)
	DeleteDepartment(ctx context.Context, id primitive.ObjectID) (bool, error)
	FindDepartmentByName(ctx context.Context, name string) (*models.Department, error)
}

type departmentRepository struct {
	collection *mongo.Collection
}

func NewDepartmentRepository(db *mongo.Database) DepartmentRepository {
	return &departmentRepository{
		collection: db.Collection(config.DepartmentCollection),
	}
}

func (r *departmentRepository) CreateDepartment(ctx context.Context, department *models.Department) error {
	department.ID = primitive.NewObjectID()
	department.CreatedAt = Now()

	if _, err := r.collection.InsertOne(ctx, department); err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}
	return nil
}

func (r *departmentRepository) GetAllDepartments(ctx context.Context) ([]models.Department, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find departments: %w", err)
	}
	defer cursor.Close(ctx)

	departments := []models.Department{}
	if err = cursor.All(ctx, &departments); err != nil {
		return nil, fmt.Errorf("failed to decode departments: %w", err)
	}
	return departments, nil
}

func (r *departmentRepository) GetDepartmentByID(ctx context.Context, id primitive.ObjectID) (*models.Department, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *departmentRepository) FindDepartmentByName(ctx context.Context, name string) (*models.Department, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *departmentRepository) findOne(ctx context.Context, filter bson.M) (*models.Department, error) {
	var department models.Department
	err := r.collection.FindOne(ctx, filter).Decode(&department)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find department: %w", err)
	}
	return &department, nil
}

func (r *departmentRepository) UpdateDepartmentName(ctx context.Context, id primitive.ObjectID, name string) (*models.Department, error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"name": name}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var department models.Department
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&department)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update department: %w", err)
	}
	return &department, nil
}

func (r *departmentRepository) DeleteDepartment(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete department: %w", err)
	}
	return result.DeletedCount > 0, nil
}
