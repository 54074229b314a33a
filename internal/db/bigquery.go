package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"coopcredit/pkg/types"
)

// Connect builds the BigQuery client for the configured project and verifies
// it can run a query. A service account key file is used when configured;
// otherwise the client resolves application default credentials from the
// environment.
func Connect(ctx context.Context, config *types.Config) (*bigquery.Client, error) {

	var opts []option.ClientOption
	if config.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.CredentialsFile))
	}

	client, err := bigquery.NewClient(ctx, config.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create bigquery client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := Ping(pingCtx, client); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping bigquery: %w", err)
	}

	return client, nil
}

// Ping runs a trivial query to verify credentials and connectivity.
func Ping(ctx context.Context, client *bigquery.Client) error {
	it, err := client.Query("SELECT 1").Read(ctx)
	if err != nil {
		return err
	}

	var row []bigquery.Value
	if err := it.Next(&row); err != nil && !errors.Is(err, iterator.Done) {
		return err
	}

	return nil
}
