package types

import (
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// ApplicationInput carries the raw field values of one submission. The
// presentation layer decodes a fresh value per request and passes it by
// value through validation and building; nothing is shared between
// submissions. The validate tags are enforced by internal/validate, which
// registers the custom validations (phone10, adult, termstep).
type ApplicationInput struct {
	FullName        string          `form:"full_name" json:"fullName" validate:"required,min=3"`
	NationalID      string          `form:"national_id" json:"nationalId" validate:"required"`
	Phone           string          `form:"phone" json:"phone" validate:"required,phone10"`
	Email           string          `form:"email" json:"email" validate:"omitempty,email"`
	BirthDate       civil.Date      `form:"birth_date" json:"birthDate" validate:"adult"`
	Occupation      string          `form:"occupation" json:"occupation" validate:"required"`
	LoanType        LoanType        `form:"loan_type" json:"loanType" validate:"required,oneof=Personal Mortgage Vehicle Educational Emergency"`
	RequestedAmount decimal.Decimal `form:"requested_amount" json:"requestedAmount" validate:"required,gte=1000,lte=5000000"`
	TermMonths      int64           `form:"term_months" json:"termMonths" validate:"required,gte=6,lte=120,termstep"`
	Purpose         string          `form:"purpose" json:"purpose" validate:"required,min=10"`
}

// Normalized returns a copy with surrounding whitespace stripped from the
// text fields, so validation and persistence see the same values.
func (in ApplicationInput) Normalized() ApplicationInput {
	in.FullName = strings.TrimSpace(in.FullName)
	in.NationalID = strings.TrimSpace(in.NationalID)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.Occupation = strings.TrimSpace(in.Occupation)
	in.Purpose = strings.TrimSpace(in.Purpose)
	return in
}
