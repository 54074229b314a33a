package main

import (
	"fmt"

	"coopcredit/pkg/types"

	"github.com/kelseyhightower/envconfig"
)

func loadConfig() (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.ProjectID == "" {
		return nil, fmt.Errorf("set GCP_PROJECT_ID")
	}

	if c.Dataset == "" {
		return nil, fmt.Errorf("set BIGQUERY_DATASET")
	}

	return c, nil
}
