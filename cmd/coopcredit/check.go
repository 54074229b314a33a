package main

import (
	"context"
	"fmt"
	"os"

	"coopcredit/internal/db"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// check walks the same steps a failing deployment gets asked about: env
// vars, the credentials file, connectivity, then dataset and table.
var checkCommand = &cli.Command{
	Name:  "check",
	Usage: "Verify environment configuration and BigQuery connectivity",
	Action: func(c *cli.Context) error {
		logger := logrus.New()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger.WithFields(logrus.Fields{
			"project": cfg.ProjectID,
			"dataset": cfg.Dataset,
			"table":   cfg.Table,
		}).Info("configuration loaded")

		if cfg.CredentialsFile != "" {
			if _, err := os.Stat(cfg.CredentialsFile); err != nil {
				return fmt.Errorf("credentials file %s: %w", cfg.CredentialsFile, err)
			}
			logger.WithField("path", cfg.CredentialsFile).Info("using service account credentials")
		} else {
			logger.Info("no credentials file configured, using application default credentials")
		}

		ctx := context.Background()

		client, err := db.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer client.Close()

		logger.Info("connected to BigQuery")

		if _, err := client.Dataset(cfg.Dataset).Metadata(ctx); err != nil {
			return fmt.Errorf("dataset %s not reachable: %w", cfg.Dataset, err)
		}
		logger.WithField("dataset", cfg.Dataset).Info("dataset exists")

		md, err := client.Dataset(cfg.Dataset).Table(cfg.Table).Metadata(ctx)
		if err != nil {
			logger.WithError(err).Warn("destination table missing, run ensure-schema")
			return nil
		}
		logger.WithField("columns", len(md.Schema)).Info("destination table exists")

		return nil
	},
}
