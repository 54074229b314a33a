// Package store persists loan applications to the external BigQuery table.
// It owns the table coordinates and converts between the domain record and
// the table's row shape; durability, indexing and query execution belong to
// the store itself.
package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"

	"coopcredit/internal/utils"
	"coopcredit/pkg/types"
)

var applicationColumns = utils.StructTagValues(applicationRow{})

func bq() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

type ApplicationRepository struct {
	client  *bigquery.Client
	project string
	dataset string
	table   string
}

func NewApplicationRepository(client *bigquery.Client, project, dataset, table string) *ApplicationRepository {
	return &ApplicationRepository{
		client:  client,
		project: project,
		dataset: dataset,
		table:   table,
	}
}

func (r *ApplicationRepository) tableRef() string {
	return fmt.Sprintf("`%s.%s.%s`", r.project, r.dataset, r.table)
}

// EnsureSchema creates the destination table when it does not exist yet.
// Calling it against an existing table succeeds without touching it.
func (r *ApplicationRepository) EnsureSchema(ctx context.Context) error {

	table := r.client.Dataset(r.dataset).Table(r.table)

	err := table.Create(ctx, &bigquery.TableMetadata{Schema: applicationSchema})
	if err != nil && !alreadyExists(err) {
		return fmt.Errorf("create table %s: %w", r.table, err)
	}

	return nil
}

// alreadyExists reports whether err is the conflict BigQuery returns when the
// table was created before, possibly wrapped.
func alreadyExists(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusConflict
}

// Insert appends one application row. A rejected row is an error; no retry
// is attempted here, the caller surfaces the failure to the user.
func (r *ApplicationRepository) Insert(ctx context.Context, app *types.LoanApplication) error {

	inserter := r.client.Dataset(r.dataset).Table(r.table).Inserter()

	if err := inserter.Put(ctx, rowFromApplication(app)); err != nil {
		return fmt.Errorf("insert application %s: %w", app.ID, err)
	}

	return nil
}

// Applications returns every stored application, newest first. An empty
// table yields an empty slice, not an error.
func (r *ApplicationRepository) Applications(ctx context.Context) ([]*types.LoanApplication, error) {

	query, err := r.applicationsSQL()
	if err != nil {
		return nil, fmt.Errorf("build applications query: %w", err)
	}

	it, err := r.client.Query(query).Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}

	out := make([]*types.LoanApplication, 0)
	for {
		var row applicationRow
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("scan application row: %w", err)
		}
		out = append(out, row.Application())
	}

	return out, nil
}

func (r *ApplicationRepository) applicationsSQL() (string, error) {
	query, _, err := bq().
		Select(applicationColumns...).
		From(r.tableRef()).
		OrderBy("submittedAt DESC").
		ToSql()
	return query, err
}

// applicationRow is the wire shape of one table row.
type applicationRow struct {
	ID              string              `bigquery:"id"`
	SubmittedAt     time.Time           `bigquery:"submittedAt"`
	FullName        string              `bigquery:"fullName"`
	NationalID      string              `bigquery:"nationalId"`
	Phone           string              `bigquery:"phone"`
	Email           bigquery.NullString `bigquery:"email"`
	BirthDate       civil.Date          `bigquery:"birthDate"`
	Occupation      string              `bigquery:"occupation"`
	LoanType        string              `bigquery:"loanType"`
	RequestedAmount float64             `bigquery:"requestedAmount"`
	TermMonths      int64               `bigquery:"termMonths"`
	Purpose         string              `bigquery:"purpose"`
	Status          string              `bigquery:"status"`
}

func rowFromApplication(app *types.LoanApplication) *applicationRow {
	row := &applicationRow{
		ID:              app.ID,
		SubmittedAt:     app.SubmittedAt,
		FullName:        app.FullName,
		NationalID:      app.NationalID,
		Phone:           app.Phone,
		BirthDate:       app.BirthDate,
		Occupation:      app.Occupation,
		LoanType:        string(app.LoanType),
		RequestedAmount: app.RequestedAmount.InexactFloat64(),
		TermMonths:      app.TermMonths,
		Purpose:         app.Purpose,
		Status:          string(app.Status),
	}

	if app.Email != nil {
		row.Email = bigquery.NullString{StringVal: *app.Email, Valid: true}
	}

	return row
}

func (r *applicationRow) Application() *types.LoanApplication {
	app := &types.LoanApplication{
		ID:              r.ID,
		SubmittedAt:     r.SubmittedAt,
		FullName:        r.FullName,
		NationalID:      r.NationalID,
		Phone:           r.Phone,
		BirthDate:       r.BirthDate,
		Occupation:      r.Occupation,
		LoanType:        types.LoanType(r.LoanType),
		RequestedAmount: decimal.NewFromFloat(r.RequestedAmount).Round(2),
		TermMonths:      r.TermMonths,
		Purpose:         r.Purpose,
		Status:          types.ApplicationStatus(r.Status),
	}

	if r.Email.Valid {
		email := r.Email.StringVal
		app.Email = &email
	}

	return app
}

// Save implements bigquery.ValueSaver. Timestamps and dates are sent as
// ISO-8601 strings, and the record id doubles as the insert id so a repeated
// streaming call cannot produce a second row.
func (r *applicationRow) Save() (map[string]bigquery.Value, string, error) {
	row := map[string]bigquery.Value{
		"id":              r.ID,
		"submittedAt":     r.SubmittedAt.UTC().Format(time.RFC3339Nano),
		"fullName":        r.FullName,
		"nationalId":      r.NationalID,
		"phone":           r.Phone,
		"email":           nil,
		"birthDate":       r.BirthDate.String(),
		"occupation":      r.Occupation,
		"loanType":        r.LoanType,
		"requestedAmount": r.RequestedAmount,
		"termMonths":      r.TermMonths,
		"purpose":         r.Purpose,
		"status":          r.Status,
	}

	if r.Email.Valid {
		row["email"] = r.Email.StringVal
	}

	return row, r.ID, nil
}
