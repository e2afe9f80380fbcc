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

// AttendanceService records time-in/time-out events under an employee looked
// up by business id (EMP-...). Events are accepted in any order; Status
// reports the derived clock state for callers that care.
type AttendanceService struct {
	employees  repository.EmployeeRepository
	attendance repository.AttendanceRepository
	logger     *zap.Logger
}

func NewAttendanceService(employees repository.EmployeeRepository, attendance repository.AttendanceRepository, logger *zap.Logger) *AttendanceService {
	return &AttendanceService{employees: employees, attendance: attendance, logger: logger}
}

// FindEmployeeByBusinessID returns nil without an error when nobody holds employeeID.
func (s *AttendanceService) FindEmployeeByBusinessID(ctx context.Context, employeeID string) (*models.Employee, error) {
	employee, err := s.employees.FindEmployeeByEmployeeID(ctx, strings.TrimSpace(employeeID))
	if err != nil {
		s.logger.Error("failed to look up employee", zap.String("employeeId", employeeID), zap.Error(err))
		return nil, apperror.NewInternalError("Failed to look up employee", err)
	}
	return employee, nil
}

func (s *AttendanceService) mustFindEmployee(ctx context.Context, employeeID string) (*models.Employee, error) {
	employee, err := s.FindEmployeeByBusinessID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, employeeNotFound(strings.TrimSpace(employeeID))
	}
	return employee, nil
}

// RecordEvent appends one event of the given type. The type always comes from
// the route, never from the request body.
func (s *AttendanceService) RecordEvent(ctx context.Context, payload models.AttendanceEventPayload, eventType models.AttendanceType) (*models.AttendanceEventResponse, error) {
	if errs := util.ValidateStruct(payload); errs != nil {
		return nil, apperror.NewValidationError("employeeId is required in the request body.", apperror.ErrCodeValidationFailed)
	}

	employee, err := s.mustFindEmployee(ctx, payload.EmployeeID)
	if err != nil {
		return nil, err
	}

	record := &models.AttendanceRecord{
		EmployeeRef: employee.ID,
		Type:        eventType,
		Location:    models.OfficeLocation,
	}
	if err := s.attendance.CreateAttendance(ctx, record); err != nil {
		s.logger.Error("failed to record attendance",
			zap.String("employeeId", employee.EmployeeID), zap.String("type", string(eventType)), zap.Error(err))
		return nil, apperror.NewInternalError("Failed to record attendance", err)
	}

	s.logger.Info("attendance recorded",
		zap.String("employeeId", employee.EmployeeID), zap.String("type", string(eventType)))
	return &models.AttendanceEventResponse{
		Message: fmt.Sprintf("Employee %s successfully recorded %s.", employee.EmployeeID, eventType),
		Record:  *record,
	}, nil
}

// History lists every event of the employee, oldest first.
func (s *AttendanceService) History(ctx context.Context, employeeID string) ([]models.AttendanceRecord, error) {
	employee, err := s.mustFindEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.attendance.FindAttendanceByEmployee(ctx, employee.ID)
	if err != nil {
		s.logger.Error("failed to list attendance", zap.String("employeeId", employee.EmployeeID), zap.Error(err))
		return nil, apperror.NewInternalError("Failed to retrieve attendance records", err)
	}
	return records, nil
}

func (s *AttendanceService) Status(ctx context.Context, employeeID string) (*models.AttendanceStatus, error) {
	employee, err := s.mustFindEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	last, err := s.attendance.FindLatestAttendance(ctx, employee.ID)
	if err != nil {
		s.logger.Error("failed to read latest attendance", zap.String("employeeId", employee.EmployeeID), zap.Error(err))
		return nil, apperror.NewInternalError("Failed to retrieve attendance status", err)
	}

	status := models.StatusFromRecord(employee.EmployeeID, last)
	return &status, nil
}
