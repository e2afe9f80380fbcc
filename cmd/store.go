package cmd

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"Employee-Management-System/config"
	"Employee-Management-System/repository"
	"Employee-Management-System/repository/memory"
	"Employee-Management-System/router"
)

// openStore returns the repositories to run on and a function that releases
// them. With inMemory set no database is contacted.
func openStore(ctx context.Context, cfg *config.AppConfig, inMemory bool, logger *zap.Logger) (router.Repositories, func(), error) {
	if inMemory {
		logger.Warn("using in-memory store, data is lost on exit")
		store := memory.NewStore()
		return router.Repositories{
			Departments: store,
			Positions:   store,
			Employees:   store,
			Attendance:  store,
		}, func() {}, nil
	}

	client, err := config.MongoConnect(ctx, cfg.ServiceAccount)
	if err != nil {
		return router.Repositories{}, nil, err
	}
	logger.Info("connected to MongoDB", zap.String("database", cfg.ServiceAccount.Database))

	closeFn := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := config.DisconnectDB(ctx, client); err != nil {
			logger.Error("failed to disconnect from MongoDB", zap.Error(err))
			return
		}
		logger.Info("disconnected from MongoDB")
	}

	db := client.Database(cfg.ServiceAccount.Database)
	if err := config.EnsureIndexes(ctx, db); err != nil {
		closeFn()
		return router.Repositories{}, nil, fmt.Errorf("failed to prepare database: %w", err)
	}

	return router.Repositories{
		Departments: repository.NewDepartmentRepository(db),
		Positions:   repository.NewPositionRepository(db),
		Employees:   repository.NewEmployeeRepository(db),
		Attendance:  repository.NewAttendanceRepository(db),
	}, closeFn, nil
}
