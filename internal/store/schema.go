package store

import "cloud.google.com/go/bigquery"

// applicationSchema mirrors applicationRow column for column. Every column
// is required except email.
var applicationSchema = bigquery.Schema{
	{Name: "id", Type: bigquery.StringFieldType, Required: true},
	{Name: "submittedAt", Type: bigquery.TimestampFieldType, Required: true},
	{Name: "fullName", Type: bigquery.StringFieldType, Required: true},
	{Name: "nationalId", Type: bigquery.StringFieldType, Required: true},
	{Name: "phone", Type: bigquery.StringFieldType, Required: true},
	{Name: "email", Type: bigquery.StringFieldType},
	{Name: "birthDate", Type: bigquery.DateFieldType, Required: true},
	{Name: "occupation", Type: bigquery.StringFieldType, Required: true},
	{Name: "loanType", Type: bigquery.StringFieldType, Required: true},
	{Name: "requestedAmount", Type: bigquery.FloatFieldType, Required: true},
	{Name: "termMonths", Type: bigquery.IntegerFieldType, Required: true},
	{Name: "purpose", Type: bigquery.StringFieldType, Required: true},
	{Name: "status", Type: bigquery.StringFieldType, Required: true},
}
