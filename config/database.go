package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	DepartmentCollection = "departments"
	PositionCollection   = "positions"
	EmployeeCollection   = "employees"
	AttendanceCollection = "attendance"
)

// Index names are matched against duplicate key errors to tell the two
// employee uniqueness violations apart.
const (
	EmployeeIDIndex  = "uniq_employee_id"
	ActiveEmailIndex = "uniq_active_email"
)

func MongoConnect(ctx context.Context, sa ServiceAccount) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(sa.ConnectionURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the indexes the repositories rely on. The partial
// unique index on email is what keeps two active employees from sharing an
// address when creates race.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(EmployeeCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: options.Index().SetName(EmployeeIDIndex).SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName(ActiveEmailIndex).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"is_active": true}),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create employee indexes: %w", err)
	}

	_, err = db.Collection(AttendanceCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "employee_ref", Value: 1}, {Key: "timestamp", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create attendance index: %w", err)
	}
	return nil
}

func DisconnectDB(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("error disconnecting from MongoDB: %w", err)
	}
	return nil
}
