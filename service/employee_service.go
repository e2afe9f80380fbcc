package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"Employee-Management-System/models"
	"Employee-Management-System/pkg/apperror"
	util "Employee-Management-System/pkg/utils"
	"Employee-Management-System/repository"
)

// maxEmployeeIDAttempts bounds how often Create draws a fresh business id
// after the store reports a collision.
const maxEmployeeIDAttempts = 3

type EmployeeService struct {
	repo   repository.EmployeeRepository
	ids    *util.EmployeeIDGenerator
	logger *zap.Logger
}

func NewEmployeeService(repo repository.EmployeeRepository, ids *util.EmployeeIDGenerator, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, ids: ids, logger: logger}
}

func employeeNotFound(id string) *apperror.AppError {
	return apperror.NewNotFoundError(fmt.Sprintf("Employee with ID %s not found.", id), apperror.ErrCodeEmployeeNotFound)
}

func duplicateActiveEmail() *apperror.AppError {
	return apperror.NewConflictError("An active employee with this email already exists.", apperror.ErrCodeDuplicateEmail)
}

func invalidHireDate() *apperror.AppError {
	return apperror.NewValidationError("hireDate must be a valid date.", apperror.ErrCodeInvalidDate)
}

// Create hires a new, active employee. The email is stored lower-cased and at
// most one active employee may hold it.
func (s *EmployeeService) Create(ctx context.Context, payload models.EmployeeCreatePayload) (*models.Employee, error) {
	if errs := util.ValidateStruct(payload); errs != nil {
		return nil, apperror.NewValidationError("All required fields must be provided to hire an employee.", apperror.ErrCodeValidationFailed)
	}

	employee := &models.Employee{
		FirstName:    strings.TrimSpace(payload.FirstName),
		LastName:     strings.TrimSpace(payload.LastName),
		Email:        normalizeEmail(payload.Email),
		PositionID:   strings.TrimSpace(payload.PositionID),
		DepartmentID: strings.TrimSpace(payload.DepartmentID),
		IsActive:     true,
	}
	if strings.TrimSpace(payload.HireDate) != "" {
		hireDate, err := util.ParseDate(payload.HireDate)
		if err != nil {
			return nil, invalidHireDate()
		}
		employee.HireDate = hireDate
	}

	existing, err := s.repo.FindActiveEmployeeByEmail(ctx, employee.Email)
	if err != nil {
		s.logger.Error("failed to check employee email", zap.Error(err))
		return nil, apperror.NewInternalError("Failed to hire employee", err)
	}
	if existing != nil {
		return nil, duplicateActiveEmail()
	}

	hireDate := employee.HireDate
	for attempt := 1; ; attempt++ {
		employee.EmployeeID = s.ids.Next()
		// The store fills a zero hire date from createdAt, which changes per attempt.
		employee.HireDate = hireDate
		err = s.repo.CreateEmployee(ctx, employee)
		if err == nil {
			break
		}
		switch {
		case errors.Is(err, repository.ErrDuplicateActiveEmail):
			return nil, duplicateActiveEmail()
		case errors.Is(err, repository.ErrDuplicateEmployeeID) && attempt < maxEmployeeIDAttempts:
			s.logger.Warn("employee id collision, retrying",
				zap.String("employeeId", employee.EmployeeID), zap.Int("attempt", attempt))
			continue
		}
		s.logger.Error("failed to create employee", zap.Error(err))
		return nil, apperror.NewInternalError("Failed to hire employee", err)
	}

	s.logger.Info("employee hired",
		zap.String("id", employee.ID.Hex()), zap.String("employeeId", employee.EmployeeID))
	return employee, nil
}

// List returns every employee, inactive ones included.
func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.repo.GetAllEmployees(ctx)
	if err != nil {
		s.logger.Error("failed to list employees", zap.Error(err))
		return nil, apperror.NewInternalError("Failed to retrieve employees", err)
	}
	return employees, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*models.Employee, error) {
	objID, err := parseObjectID(id, employeeNotFound(id))
	if err != nil {
		return nil, err
	}

	employee, err := s.repo.GetEmployeeByID(ctx, objID)
	if err != nil {
		s.logger.Error("failed to get employee", zap.String("id", id), zap.Error(err))
		return nil, apperror.NewInternalError("Failed to retrieve employee", err)
	}
	if employee == nil {
		return nil, employeeNotFound(id)
	}
	return employee, nil
}

// Update changes only the fields present in payload. Email and hireDate go
// through the same normalization as Create.
func (s *EmployeeService) Update(ctx context.Context, id string, payload models.EmployeeUpdatePayload) (*models.Employee, error) {
	patch, err := employeePatchFromPayload(payload)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, apperror.NewValidationError("Please provide at least one valid field to update.", apperror.ErrCodeEmptyUpdate)
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil || patch.IsActive != nil {
		merged := *current
		patch.Apply(&merged)
		if merged.IsActive {
			holder, err := s.repo.FindActiveEmployeeByEmail(ctx, merged.Email)
			if err != nil {
				s.logger.Error("failed to check employee email", zap.String("id", id), zap.Error(err))
				return nil, apperror.NewInternalError("Failed to update employee", err)
			}
			if holder != nil && holder.ID != current.ID {
				return nil, duplicateActiveEmail()
			}
		}
	}

	updated, err := s.repo.UpdateEmployee(ctx, current.ID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateActiveEmail) {
			return nil, duplicateActiveEmail()
		}
		s.logger.Error("failed to update employee", zap.String("id", id), zap.Error(err))
		return nil, apperror.NewInternalError("Failed to update employee", err)
	}
	if updated == nil {
		return nil, employeeNotFound(id)
	}
	return updated, nil
}

// Delete is a soft delete: the employee is marked inactive and everything
// else, attendance included, is kept.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	objID, err := parseObjectID(id, employeeNotFound(id))
	if err != nil {
		return err
	}

	inactive := false
	updated, err := s.repo.UpdateEmployee(ctx, objID, models.EmployeePatch{IsActive: &inactive})
	if err != nil {
		s.logger.Error("failed to deactivate employee", zap.String("id", id), zap.Error(err))
		return apperror.NewInternalError("Failed to delete employee", err)
	}
	if updated == nil {
		return employeeNotFound(id)
	}

	s.logger.Info("employee deactivated", zap.String("id", id))
	return nil
}

func employeePatchFromPayload(payload models.EmployeeUpdatePayload) (models.EmployeePatch, error) {
	patch := models.EmployeePatch{
		FirstName:    optionalString(payload.FirstName),
		LastName:     optionalString(payload.LastName),
		PositionID:   optionalString(payload.PositionID),
		DepartmentID: optionalString(payload.DepartmentID),
		IsActive:     payload.IsActive,
	}
	if email := optionalString(payload.Email); email != nil {
		normalized := normalizeEmail(*email)
		patch.Email = &normalized
	}
	if raw := optionalString(payload.HireDate); raw != nil {
		hireDate, err := util.ParseDate(*raw)
		if err != nil {
			return models.EmployeePatch{}, invalidHireDate()
		}
		patch.HireDate = &hireDate
	}
	return patch, nil
}

// optionalString trims s and treats a blank result as not supplied.
func optionalString(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

