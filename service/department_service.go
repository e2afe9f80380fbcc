package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"Employee-Management-System/models"
	"Employee-Management-System/pkg/apperror"
	util "Employee-Management-System/pkg/utils"
	"Employee-Management-System/repository"
)

type DepartmentService struct {
	repo   repository.DepartmentRepository
	logger *zap.Logger
}

func NewDepartmentService(repo repository.DepartmentRepository, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{repo: repo, logger: logger}
}

func departmentNotFound(id string) *apperror.AppError {
	return apperror.NewNotFoundError(fmt.Sprintf("Department with ID %s not found.", id), apperror.ErrCodeDepartmentNotFound)
}

func (s *DepartmentService) Create(ctx context.Context, payload models.DepartmentPayload) (*models.Department, error) {
	if errs := util.ValidateStruct(payload); errs != nil {
		return nil, apperror.NewValidationError("A department name is required.", apperror.ErrCodeValidationFailed)
	}

	department := &models.Department{Name: strings.TrimSpace(payload.Name)}
	if err := s.repo.CreateDepartment(ctx, department); err != nil {
		s.logger.Error("failed to create department", zap.Error(err))
		return nil, apperror.NewInternalError("Failed to create department", err)
	}

	s.logger.Info("department created", zap.String("id", department.ID.Hex()))
	return department, nil
}

func (s *DepartmentService) List(ctx context.Context) ([]models.Department, error) {
	departments, err := s.repo.GetAllDepartments(ctx)
	if err != nil {
		s.logger.Error("failed to list departments", zap.Error(err))
		return nil, apperror.NewInternalError("Failed to retrieve departments", err)
	}
	return departments, nil
}

func (s *DepartmentService) Get(ctx context.Context, id string) (*models.Department, error) {
	objID, err := parseObjectID(id, departmentNotFound(id))
	if err != nil {
		return nil, err
	}

	department, err := s.repo.GetDepartmentByID(ctx, objID)
	if err != nil {
		s.logger.Error("failed to get department", zap.String("id", id), zap.Error(err))
		return nil, apperror.NewInternalError("Failed to retrieve department", err)
	}
	if department == nil {
		return nil, departmentNotFound(id)
	}
	return department, nil
}

// Update overwrites the name and returns the stored record as it is after the write.
func (s *DepartmentService) Update(ctx context.Context, id string, payload models.DepartmentPayload) (*models.Department, error) {
	if errs := util.ValidateStruct(payload); errs != nil {
		return nil, apperror.NewValidationError("A department name is required for update.", apperror.ErrCodeValidationFailed)
	}
	objID, err := parseObjectID(id, departmentNotFound(id))
	if err != nil {
		return nil, err
	}

	department, err := s.repo.UpdateDepartmentName(ctx, objID, strings.TrimSpace(payload.Name))
	if err != nil {
		s.logger.Error("failed to update department", zap.String("id", id), zap.Error(err))
		return nil, apperror.NewInternalError("Failed to update department", err)
	}
	if department == nil {
		return nil, departmentNotFound(id)
	}
	return department, nil
}

// Delete removes the department only. Positions and employees that still
// reference it are left as they are.
func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	objID, err := parseObjectID(id, departmentNotFound(id))
	if err != nil {
		return err
	}

	deleted, err := s.repo.DeleteDepartment(ctx, objID)
	if err != nil {
		s.logger.Error("failed to delete department", zap.String("id", id), zap.Error(err))
		return apperror.NewInternalError("Failed to delete department", err)
	}
	if !deleted {
		return departmentNotFound(id)
	}

	s.logger.Info("department deleted", zap.String("id", id))
	return nil
}
