// Package record assembles the canonical loan application from validated
// input.
package record

import (
	"time"

	"coopcredit/internal/phone"
	"coopcredit/internal/utils"
	"coopcredit/pkg/types"
)

// Build produces the persisted form of one submission: a fresh id, the
// submission timestamp in UTC, the normalized phone, the amount fixed to two
// decimal places, an absent email stored as nil, and the initial Pending
// status. Build assumes its input already passed validation and cannot fail.
func Build(in types.ApplicationInput) *types.LoanApplication {
	app := &types.LoanApplication{
		ID:              utils.NanoID(),
		SubmittedAt:     time.Now().UTC(),
		FullName:        in.FullName,
		NationalID:      in.NationalID,
		Phone:           phone.Digits(in.Phone),
		BirthDate:       in.BirthDate,
		Occupation:      in.Occupation,
		LoanType:        in.LoanType,
		RequestedAmount: in.RequestedAmount.Round(2),
		TermMonths:      in.TermMonths,
		Purpose:         in.Purpose,
		Status:          types.StatusPending,
	}

	if in.Email != "" {
		email := in.Email
		app.Email = &email
	}

	return app
}
