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

// AttendanceRepository stores each employee's attendance as records scoped by
// the parent employee document id. There is no update or delete.
type AttendanceRepository interface {
	CreateAttendance(ctx context.Context, record *models.AttendanceRecord) error
	FindAttendanceByEmployee(ctx context.Context, employeeRef primitive.ObjectID) ([]models.AttendanceRecord, error)
	FindLatestAttendance(ctx context.Context, employeeRef primitive.ObjectID) (*models.AttendanceRecord, error)
}

type attendanceRepository struct {
	collection *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) AttendanceRepository {
	return &attendanceRepository{
		collection: db.Collection(config.AttendanceCollection),
	}
}

var attendanceOrder = bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}}

// CreateAttendance inserts the record through an upsert so that the timestamp
// comes from the server clock ($currentDate) rather than ours. The stored
// document, timestamp included, is decoded back into record.
func (r *attendanceRepository) CreateAttendance(ctx context.Context, record *models.AttendanceRecord) error {
	id := primitive.NewObjectID()
	update := bson.M{
		"$setOnInsert": bson.M{
			"employee_ref": record.EmployeeRef,
			"type":         record.Type,
			"location":     record.Location,
		},
		"$currentDate": bson.M{"timestamp": true},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(record)
	if err != nil {
		return fmt.Errorf("failed to create attendance record: %w", err)
	}
	return nil
}

func (r *attendanceRepository) FindAttendanceByEmployee(ctx context.Context, employeeRef primitive.ObjectID) ([]models.AttendanceRecord, error) {
	opts := options.Find().SetSort(attendanceOrder)

	cursor, err := r.collection.Find(ctx, bson.M{"employee_ref": employeeRef}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find attendance records: %w", err)
	}
	defer cursor.Close(ctx)

	records := []models.AttendanceRecord{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode attendance records: %w", err)
	}
	return records, nil
}

func (r *attendanceRepository) FindLatestAttendance(ctx context.Context, employeeRef primitive.ObjectID) (*models.AttendanceRecord, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}})

	var record models.AttendanceRecord
	err := r.collection.FindOne(ctx, bson.M{"employee_ref": employeeRef}, opts).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest attendance record: %w", err)
	}
	return &record, nil
}
