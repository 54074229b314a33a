package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"FullName.required":        "full name is required",
	"FullName.min":             "full name must be at least 3 characters",
	"NationalID.required":      "national id is required",
	"Phone.required":           "phone number is required",
	"Phone.phone10":            "phone number must contain exactly 10 digits",
	"Email.email":              "email address is not valid",
	"BirthDate.adult":          "applicant must be born on or after 1940-01-01 and be at least 18 years old",
	"Occupation.required":      "occupation is required",
	"LoanType.required":        "loan type is required",
	"LoanType.oneof":           "loan type must be one of Personal, Mortgage, Vehicle, Educational or Emergency",
	"RequestedAmount.required": "requested amount is required",
	"RequestedAmount.gte":      "requested amount must be at least 1000",
	"RequestedAmount.lte":      "requested amount cannot exceed 5000000",
	"TermMonths.required":      "term is required",
	"TermMonths.gte":           "term must be at least 6 months",
	"TermMonths.lte":           "term cannot exceed 120 months",
	"TermMonths.termstep":      "term must be a multiple of 6 months",
	"Purpose.required":         "purpose is required",
	"Purpose.min":              "purpose must describe the loan in at least 10 characters",
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.StructField()+"."+fe.Tag()]; ok {
		return msg
	}
	return strings.ToLower(fe.StructField()) + " is invalid"
}
