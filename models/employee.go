package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee is never physically removed. Deleting one clears IsActive and keeps
// the document, its EmployeeID and its attendance history.
type Employee struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID   string             `bson:"employee_id" json:"employeeId"`
	FirstName    string             `bson:"first_name" json:"firstName"`
	LastName     string             `bson:"last_name" json:"lastName"`
	Email        string             `bson:"email" json:"email"`
	PositionID   string             `bson:"position_id" json:"positionId"`
	DepartmentID string             `bson:"department_id" json:"departmentId"`
	HireDate     time.Time          `bson:"hire_date" json:"hireDate"`
	IsActive     bool               `bson:"is_active" json:"isActive"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}

type EmployeeCreatePayload struct {
	FirstName    string `json:"firstName" validate:"notblank"`
	LastName     string `json:"lastName" validate:"notblank"`
	Email        string `json:"email" validate:"notblank"`
	PositionID   string `json:"positionId" validate:"notblank"`
	DepartmentID string `json:"departmentId" validate:"notblank"`
	HireDate     string `json:"hireDate,omitempty"`
}

// EmployeeUpdatePayload is the raw body of PUT /employees/:id. Every field is
// optional; hireDate is still a string here and gets parsed into an EmployeePatch.
type EmployeeUpdatePayload struct {
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	Email        *string `json:"email,omitempty"`
	PositionID   *string `json:"positionId,omitempty"`
	DepartmentID *string `json:"departmentId,omitempty"`
	HireDate     *string `json:"hireDate,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

// EmployeePatch is a normalized partial update: strings are trimmed, email is
// lower-cased and blank values have already been dropped.
type EmployeePatch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PositionID   *string
	DepartmentID *string
	HireDate     *time.Time
	IsActive     *bool
}

func (p EmployeePatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.PositionID == nil && p.DepartmentID == nil && p.HireDate == nil && p.IsActive == nil
}

func (p EmployeePatch) Apply(e *Employee) {
	if p.FirstName != nil {
		e.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		e.LastName = *p.LastName
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.PositionID != nil {
		e.PositionID = *p.PositionID
	}
	if p.DepartmentID != nil {
		e.DepartmentID = *p.DepartmentID
	}
	if p.HireDate != nil {
		e.HireDate = *p.HireDate
	}
	if p.IsActive != nil {
		e.IsActive = *p.IsActive
	}
}
