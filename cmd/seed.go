package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"Employee-Management-System/config"
	"Employee-Management-System/pkg/logger"
	"Employee-Management-System/seeder"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert default departments and positions",
	Long:  `Insert the default departments and positions. Records that already exist by name are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(true)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		repos, closeStore, err := openStore(ctx, cfg, false, log)
		if err != nil {
			log.Error("failed to open store", zap.Error(err))
			return err
		}
		defer closeStore()

		_, err = seeder.Seed(ctx, repos.Departments, repos.Positions, log.Named("seeder"))
		return err
	},
}
