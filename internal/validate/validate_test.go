package validate_test

import (
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coopcredit/internal/validate"
	"coopcredit/pkg/types"
)

func validInput() types.ApplicationInput {
	return types.ApplicationInput{
		FullName:        "Ana Gomez",
		NationalID:      "001-1234567-8",
		Phone:           "809-285-1725",
		Email:           "ana@example.com",
		BirthDate:       civil.Date{Year: 1990, Month: time.May, Day: 10},
		Occupation:      "Accountant",
		LoanType:        types.LoanTypePersonal,
		RequestedAmount: decimal.NewFromInt(50000),
		TermMonths:      12,
		Purpose:         "Buy new tools for my workshop",
	}
}

func violationsContain(violations []string, substr string) bool {
	for _, v := range violations {
		if strings.Contains(v, substr) {
			return true
		}
	}
	return false
}

func TestCheckValid(t *testing.T) {
	assert.Empty(t, validate.Check(validInput()))
}

func TestCheckEmailOptional(t *testing.T) {
	in := validInput()
	in.Email = ""
	assert.Empty(t, validate.Check(in))

	in.Email = "not-an-email"
	assert.True(t, violationsContain(validate.Check(in), "email"))
}

func TestCheckFullName(t *testing.T) {
	in := validInput()
	in.FullName = "Al"
	assert.True(t, violationsContain(validate.Check(in), "full name must be at least 3 characters"))

	in.FullName = "Ana Gomez"
	assert.False(t, violationsContain(validate.Check(in), "full name"))

	in.FullName = ""
	assert.True(t, violationsContain(validate.Check(in), "full name is required"))
}

func TestCheckPhone(t *testing.T) {
	in := validInput()
	in.Phone = "8092851725"
	assert.Empty(t, validate.Check(in))

	in.Phone = "809285"
	assert.True(t, violationsContain(validate.Check(in), "exactly 10 digits"))

	in.Phone = ""
	assert.True(t, violationsContain(validate.Check(in), "phone number is required"))
}

func TestCheckAmountBounds(t *testing.T) {
	cases := []struct {
		amount int64
		valid  bool
	}{
		{999, false},
		{1000, true},
		{5000000, true},
		{5000001, false},
	}

	for _, tc := range cases {
		in := validInput()
		in.RequestedAmount = decimal.NewFromInt(tc.amount)

		violations := validate.Check(in)
		if tc.valid {
			assert.Empty(t, violations, "amount %d", tc.amount)
		} else {
			assert.True(t, violationsContain(violations, "requested amount"), "amount %d", tc.amount)
		}
	}
}

func TestCheckTermBounds(t *testing.T) {
	cases := []struct {
		term  int64
		valid bool
	}{
		{6, true},
		{7, false},
		{4, false},
		{120, true},
		{126, false},
		{0, false},
	}

	for _, tc := range cases {
		in := validInput()
		in.TermMonths = tc.term

		violations := validate.Check(in)
		if tc.valid {
			assert.Empty(t, violations, "term %d", tc.term)
		} else {
			assert.True(t, violationsContain(violations, "term"), "term %d", tc.term)
		}
	}
}

func TestCheckBirthDate(t *testing.T) {
	in := validInput()
	in.BirthDate = civil.DateOf(time.Now().UTC().AddDate(-17, 0, 0))
	assert.True(t, violationsContain(validate.Check(in), "18 years"))

	in.BirthDate = civil.Date{Year: 1939, Month: time.December, Day: 31}
	assert.True(t, violationsContain(validate.Check(in), "1940"))

	in.BirthDate = civil.Date{Year: 1940, Month: time.January, Day: 1}
	assert.Empty(t, validate.Check(in))

	in.BirthDate = civil.Date{}
	assert.True(t, violationsContain(validate.Check(in), "1940"))
}

func TestCheckLoanType(t *testing.T) {
	in := validInput()
	in.LoanType = "Payday"
	assert.True(t, violationsContain(validate.Check(in), "loan type"))

	for _, lt := range types.LoanTypes() {
		in.LoanType = lt
		assert.Empty(t, validate.Check(in), "loan type %s", lt)
	}
}

// An all-empty submission reports every violation at once, in field order.
func TestCheckCollectsAllViolations(t *testing.T) {
	violations := validate.Check(types.ApplicationInput{})

	require.Len(t, violations, 9)
	assert.Equal(t, "full name is required", violations[0])
	assert.Equal(t, "national id is required", violations[1])
	assert.Equal(t, "phone number is required", violations[2])
	assert.Equal(t, "purpose is required", violations[8])
}
