package record_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coopcredit/internal/record"
	"coopcredit/pkg/types"
)

func input() types.ApplicationInput {
	return types.ApplicationInput{
		FullName:        "Ana Gomez",
		NationalID:      "001-1234567-8",
		Phone:           "(809) - 285 - 1725",
		Email:           "ana@example.com",
		BirthDate:       civil.Date{Year: 1990, Month: time.May, Day: 10},
		Occupation:      "Accountant",
		LoanType:        types.LoanTypePersonal,
		RequestedAmount: decimal.RequireFromString("50000.555"),
		TermMonths:      12,
		Purpose:         "Buy new tools for my workshop",
	}
}

func TestBuild(t *testing.T) {
	app := record.Build(input())

	assert.Len(t, app.ID, 21)
	assert.Equal(t, types.StatusPending, app.Status)
	assert.WithinDuration(t, time.Now().UTC(), app.SubmittedAt, 2*time.Second)
	assert.Equal(t, time.UTC, app.SubmittedAt.Location())

	assert.Equal(t, "Ana Gomez", app.FullName)
	assert.Equal(t, "8092851725", app.Phone)
	assert.Equal(t, civil.Date{Year: 1990, Month: time.May, Day: 10}, app.BirthDate)
	assert.Equal(t, types.LoanTypePersonal, app.LoanType)
	assert.Equal(t, int64(12), app.TermMonths)

	// amount coerced to two decimal places
	assert.Equal(t, "50000.56", app.RequestedAmount.String())

	require.NotNil(t, app.Email)
	assert.Equal(t, "ana@example.com", *app.Email)
}

func TestBuildUniqueIDs(t *testing.T) {
	in := input()
	assert.NotEqual(t, record.Build(in).ID, record.Build(in).ID)
}

func TestBuildAbsentEmail(t *testing.T) {
	in := input()
	in.Email = ""

	assert.Nil(t, record.Build(in).Email)
}
