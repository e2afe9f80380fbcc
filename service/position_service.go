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

type PositionService struct {
	repo   repository.PositionRepository
	logger *zap.Logger
}

func NewPositionService(repo repository.PositionRepository, logger *zap.Logger) *PositionService {
	return &PositionService{repo: repo, logger: logger}
}

func positionNotFound(id string) *apperror.AppError {
	return apperror.NewNotFoundError(fmt.Sprintf("Position with ID %s not found.", id), apperror.ErrCodePositionNotFound)
}

// Create stores a position. The department id is kept as given; it is not
// checked against the departments collection.
func (s *PositionService) Create(ctx context.Context, payload models.PositionCreatePayload) (*models.Position, error) {
	if strings.TrimSpace(payload.Title) == "" {
		return nil, apperror.NewValidationError("A position title is required.", apperror.ErrCodeValidationFailed)
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return nil, apperror.NewValidationError("A department ID is required to create a position.", apperror.ErrCodeValidationFailed)
	}

	position := &models.Position{
		Title:        strings.TrimSpace(payload.Title),
		DepartmentID: strings.TrimSpace(payload.DepartmentID),
	}
	if err := s.repo.CreatePosition(ctx, position); err != nil {
		s.logger.Error("failed to create position", zap.Error(err))
		return nil, apperror.NewInternalError("Failed to create position", err)
	}

	s.logger.Info("position created", zap.String("id", position.ID.Hex()))
	return position, nil
}

func (s *PositionService) List(ctx context.Context) ([]models.Position, error) {
	positions, err := s.repo.GetAllPositions(ctx)
	if err != nil {
		s.logger.Error("failed to list positions", zap.Error(err))
		return nil, apperror.NewInternalError("Failed to retrieve positions", err)
	}
	return positions, nil
}

func (s *PositionService) Get(ctx context.Context, id string) (*models.Position, error) {
	objID, err := parseObjectID(id, positionNotFound(id))
	if err != nil {
		return nil, err
	}

	position, err := s.repo.GetPositionByID(ctx, objID)
	if err != nil {
		s.logger.Error("failed to get position", zap.String("id", id), zap.Error(err))
		return nil, apperror.NewInternalError("Failed to retrieve position", err)
	}
	if position == nil {
		return nil, positionNotFound(id)
	}
	return position, nil
}

// Update applies the non-blank fields of patch. At least one must remain
// after normalization.
func (s *PositionService) Update(ctx context.Context, id string, patch models.PositionPatch) (*models.Position, error) {
	patch = patch.Normalize()
	if patch.IsEmpty() {
		return nil, apperror.NewValidationError("You must provide a title or departmentId to update the position.", apperror.ErrCodeEmptyUpdate)
	}
	objID, err := parseObjectID(id, positionNotFound(id))
	if err != nil {
		return nil, err
	}

	position, err := s.repo.UpdatePosition(ctx, objID, patch)
	if err != nil {
		s.logger.Error("failed to update position", zap.String("id", id), zap.Error(err))
		return nil, apperror.NewInternalError("Failed to update position", err)
	}
	if position == nil {
		return nil, positionNotFound(id)
	}
	return position, nil
}

func (s *PositionService) Delete(ctx context.Context, id string) error {
	objID, err := parseObjectID(id, positionNotFound(id))
	if err != nil {
		return err
	}

	deleted, err := s.repo.DeletePosition(ctx, objID)
	if err != nil {
		s.logger.Error("failed to delete position", zap.String("id", id), zap.Error(err))
		return apperror.NewInternalError("Failed to delete position", err)
	}
	if !deleted {
		return positionNotFound(id)
	}

	s.logger.Info("position deleted", zap.String("id", id))
	return nil
}
