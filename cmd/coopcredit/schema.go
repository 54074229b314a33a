package main

import (
	"context"
	"fmt"

	"coopcredit/internal/db"
	"coopcredit/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var ensureSchemaCommand = &cli.Command{
	Name:  "ensure-schema",
	Usage: "Create the destination BigQuery table when it is missing",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		client, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to BigQuery: %w", err)
		}
		defer client.Close()

		logrus.Info("Connected to BigQuery")

		applicationRepo := store.NewApplicationRepository(client, cfg.ProjectID, cfg.Dataset, cfg.Table)

		if err := applicationRepo.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}

		logrus.WithField("table", cfg.TableID()).Info("destination table ready")

		return nil
	},
}
