package seeder

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"Employee-Management-System/models"
	"Employee-Management-System/repository"
)

// Positions per department, keyed by department name.
var defaultOrganization = []struct {
	Department string
	Positions  []string
}{
	{"Human Resources", []string{"HR Manager", "Recruiter"}},
	{"Finance", []string{"Accountant", "Payroll Specialist"}},
	{"Information Technology", []string{"Software Engineer", "System Administrator"}},
	{"Marketing", []string{"Marketing Specialist"}},
	{"Sales", []string{"Account Executive"}},
	{"Customer Service", []string{"Customer Support Representative"}},
	{"Operations", []string{"Operations Manager"}},
}

type Result struct {
	DepartmentsCreated int
	PositionsCreated   int
}

// Seed inserts the default departments and their positions. Existing names
// and titles are skipped, so running it twice adds nothing.
func Seed(ctx context.Context, departments repository.DepartmentRepository, positions repository.PositionRepository, logger *zap.Logger) (Result, error) {
	var res Result
	logger.Info("seeding departments and positions")

	for _, entry := range defaultOrganization {
		dept, err := departments.FindDepartmentByName(ctx, entry.Department)
		if err != nil {
			return res, fmt.Errorf("failed to look up department %q: %w", entry.Department, err)
		}
		if dept != nil {
			logger.Debug("department exists, skipping", zap.String("name", entry.Department))
		} else {
			dept = &models.Department{Name: entry.Department}
			if err := departments.CreateDepartment(ctx, dept); err != nil {
				return res, fmt.Errorf("failed to create department %q: %w", entry.Department, err)
			}
			res.DepartmentsCreated++
			logger.Info("department created", zap.String("name", dept.Name), zap.String("id", dept.ID.Hex()))
		}

		for _, title := range entry.Positions {
			existing, err := positions.FindPositionByTitle(ctx, title)
			if err != nil {
				return res, fmt.Errorf("failed to look up position %q: %w", title, err)
			}
			if existing != nil {
				logger.Debug("position exists, skipping", zap.String("title", title))
				continue
			}

			pos := &models.Position{Title: title, DepartmentID: dept.ID.Hex()}
			if err := positions.CreatePosition(ctx, pos); err != nil {
				return res, fmt.Errorf("failed to create position %q: %w", title, err)
			}
			res.PositionsCreated++
			logger.Info("position created", zap.String("title", title), zap.String("departmentId", pos.DepartmentID))
		}
	}

	logger.Info("seeding finished",
		zap.Int("departments", res.DepartmentsCreated), zap.Int("positions", res.PositionsCreated))
	return res, nil
}
