package service

import (
	"context"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"Employee-Management-System/pkg/apperror"
)

const (
	DefaultBadgeSize = 256
	MinBadgeSize     = 128
	MaxBadgeSize     = 1024
)

// Badge renders the employee's business id as a PNG QR code. Kiosks scan it
// and post the decoded id to the attendance endpoints.
func (s *EmployeeService) Badge(ctx context.Context, id string, size int) ([]byte, error) {
	employee, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if size < MinBadgeSize || size > MaxBadgeSize {
		return nil, apperror.NewValidationError("size must be between 128 and 1024.", apperror.ErrCodeValidationFailed)
	}

	png, err := qrcode.Encode(employee.EmployeeID, qrcode.Medium, size)
	if err != nil {
		s.logger.Error("failed to encode badge", zap.String("employeeId", employee.EmployeeID), zap.Error(err))
		return nil, apperror.NewInternalError("Failed to generate badge", err)
	}
	return png, nil
}
