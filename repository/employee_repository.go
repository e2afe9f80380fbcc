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

// EmployeeRepository writes report ErrDuplicateActiveEmail and
// ErrDuplicateEmployeeID when a unique index rejects the document.
type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, employee *models.Employee) error
	GetAllEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeeByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error)
	FindActiveEmployeeByEmail(ctx context.Context, email string) (*models.Employee, error)
	FindEmployeeByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id primitive.ObjectID, patch models.EmployeePatch) (*models.Employee, error)
}

type employeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) EmployeeRepository {
	return &employeeRepository{
		collection: db.Collection(config.EmployeeCollection),
	}
}

func (r *employeeRepository) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	employee.ID = primitive.NewObjectID()
	employee.CreatedAt = Now()
	if employee.HireDate.IsZero() {
		employee.HireDate = employee.CreatedAt
	}

	if _, err := r.collection.InsertOne(ctx, employee); err != nil {
		if classified, ok := classifyEmployeeWriteError(err); ok {
			return classified
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (r *employeeRepository) GetAllEmployees(ctx context.Context) ([]models.Employee, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find employees: %w", err)
	}
	defer cursor.Close(ctx)

	employees := []models.Employee{}
	if err = cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}
	return employees, nil
}

func (r *employeeRepository) GetEmployeeByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *employeeRepository) FindActiveEmployeeByEmail(ctx context.Context, email string) (*models.Employee, error) {
	return r.findOne(ctx, bson.M{"email": email, "is_active": true})
}

// FindEmployeeByEmployeeID looks up the business id (EMP-...), not the
// document id.
func (r *employeeRepository) FindEmployeeByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error) {
	return r.findOne(ctx, bson.M{"employee_id": employeeID})
}

func (r *employeeRepository) findOne(ctx context.Context, filter bson.M) (*models.Employee, error) {
	var employee models.Employee
	err := r.collection.FindOne(ctx, filter).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return &employee, nil
}

func (r *employeeRepository) UpdateEmployee(ctx context.Context, id primitive.ObjectID, patch models.EmployeePatch) (*models.Employee, error) {
	set := employeeSetFields(patch)
	if len(set) == 0 {
		return r.GetEmployeeByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var employee models.Employee
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if classified, ok := classifyEmployeeWriteError(err); ok {
			return nil, classified
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return &employee, nil
}

func employeeSetFields(patch models.EmployeePatch) bson.M {
	set := bson.M{}
	if patch.FirstName != nil {
		set["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		set["last_name"] = *patch.LastName
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.PositionID != nil {
		set["position_id"] = *patch.PositionID
	}
	if patch.DepartmentID != nil {
		set["department_id"] = *patch.DepartmentID
	}
	if patch.HireDate != nil {
		set["hire_date"] = *patch.HireDate
	}
	if patch.IsActive != nil {
		set["is_active"] = *patch.IsActive
	}
	return set
}
