package types

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

type LoanType string

const (
	LoanTypePersonal    LoanType = "Personal"
	LoanTypeMortgage    LoanType = "Mortgage"
	LoanTypeVehicle     LoanType = "Vehicle"
	LoanTypeEducational LoanType = "Educational"
	LoanTypeEmergency   LoanType = "Emergency"
)

// LoanTypes lists the accepted values in the order the form presents them.
func LoanTypes() []LoanType {
	return []LoanType{
		LoanTypePersonal,
		LoanTypeMortgage,
		LoanTypeVehicle,
		LoanTypeEducational,
		LoanTypeEmergency,
	}
}

type ApplicationStatus string

// Applications are created as Pending and this system never advances them.
const StatusPending ApplicationStatus = "Pending"

// LoanApplication is the canonical persisted record of a single loan
// request. It is built once from a validated ApplicationInput and is
// immutable afterwards; there are no update or delete operations.
type LoanApplication struct {
	ID              string            `bigquery:"id" json:"id"`
	SubmittedAt     time.Time         `bigquery:"submittedAt" json:"submittedAt"`
	FullName        string            `bigquery:"fullName" json:"fullName"`
	NationalID      string            `bigquery:"nationalId" json:"nationalId"`
	Phone           string            `bigquery:"phone" json:"phone"`
	Email           *string           `bigquery:"email" json:"email,omitempty"`
	BirthDate       civil.Date        `bigquery:"birthDate" json:"birthDate"`
	Occupation      string            `bigquery:"occupation" json:"occupation"`
	LoanType        LoanType          `bigquery:"loanType" json:"loanType"`
	RequestedAmount decimal.Decimal   `bigquery:"requestedAmount" json:"requestedAmount"`
	TermMonths      int64             `bigquery:"termMonths" json:"termMonths"`
	Purpose         string            `bigquery:"purpose" json:"purpose"`
	Status          ApplicationStatus `bigquery:"status" json:"status"`
}
