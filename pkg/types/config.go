package types

import "fmt"

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// BigQuery destination coordinates
	ProjectID string `envconfig:"GCP_PROJECT_ID"`
	Dataset   string `envconfig:"BIGQUERY_DATASET"`
	Table     string `envconfig:"BIGQUERY_TABLE" default:"loan_applications"`

	// Optional service account key file. When empty the client falls back
	// to application default credentials.
	CredentialsFile string `envconfig:"GOOGLE_APPLICATION_CREDENTIALS"`

	// Flash cookie signing keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes
}

// TableID returns the fully qualified project.dataset.table identifier.
func (c *Config) TableID() string {
	return fmt.Sprintf("%s.%s.%s", c.ProjectID, c.Dataset, c.Table)
}
