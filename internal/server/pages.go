package server

import (
	"context"
	"net/http"
	"time"

	"coopcredit/internal/phone"
	"coopcredit/internal/record"
	"coopcredit/internal/validate"
	"coopcredit/pkg/types"

	"github.com/sirupsen/logrus"
)

const submitTimeout = 15 * time.Second

type FormPageData struct {
	Title        string
	Notice       string
	Error        string
	Violations   []string
	Input        types.ApplicationInput
	PhoneDisplay string
	BirthDate    string
	Amount       string
	Term         string
	LoanTypes    []types.LoanType
}

type ListPageData struct {
	Title        string
	Notice       string
	Error        string
	Applications []*types.LoanApplication
	Total        int
}

func (s *Service) handleApplicationForm(w http.ResponseWriter, r *http.Request) {
	data := s.formPageData(types.ApplicationInput{})
	data.Notice = s.popFlash(w, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "page.form", data); err != nil {
		s.logger.WithError(err).Error("failed to render application form page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseForm(); err != nil {
		s.logger.WithError(err).Info("failed to parse application form")
		s.renderForm(w, types.ApplicationInput{}, nil, "The form could not be read. Please try again.")
		return
	}

	var in types.ApplicationInput
	if err := decoder.Decode(&in, r.PostForm); err != nil {
		s.logger.WithError(err).Info("failed to decode application form")
		s.renderForm(w, in, []string{"the form contains values that could not be read"}, "")
		return
	}

	in = in.Normalized()

	if violations := validate.Check(in); len(violations) > 0 {
		s.renderForm(w, in, violations, "")
		return
	}

	app := record.Build(in)

	ctx, cancel := context.WithTimeout(r.Context(), submitTimeout)
	defer cancel()

	if err := s.apps.Insert(ctx, app); err != nil {
		s.logger.WithError(err).WithField("application_id", app.ID).Error("failed to persist application")
		s.renderForm(w, in, nil, "We could not save your application. Please try again later.")
		return
	}

	s.logger.WithFields(logrus.Fields{
		"application_id": app.ID,
		"loan_type":      app.LoanType,
	}).Info("application submitted")

	s.setFlash(w, "Application submitted successfully")
	http.Redirect(w, r, "/applications", http.StatusSeeOther)
}

func (s *Service) handleListApplications(w http.ResponseWriter, r *http.Request) {

	data := ListPageData{
		Title:  "Registered Applications",
		Notice: s.popFlash(w, r),
	}

	apps, err := s.apps.Applications(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch applications")
		data.Error = "Applications are unavailable right now. Please try again later."
	} else {
		data.Applications = apps
		data.Total = len(apps)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "page.applications", data); err != nil {
		s.logger.WithError(err).Error("failed to render applications page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) renderForm(w http.ResponseWriter, in types.ApplicationInput, violations []string, errMsg string) {
	data := s.formPageData(in)
	data.Violations = violations
	data.Error = errMsg

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "page.form", data); err != nil {
		s.logger.WithError(err).Error("failed to render application form page")
		s.internalServerError(w)
	}
}

func (s *Service) formPageData(in types.ApplicationInput) FormPageData {
	data := FormPageData{
		Title:        "New Loan Application",
		Input:        in,
		PhoneDisplay: phone.Format(in.Phone),
		LoanTypes:    types.LoanTypes(),
	}

	if !in.BirthDate.IsZero() {
		data.BirthDate = in.BirthDate.String()
	}
	if !in.RequestedAmount.IsZero() {
		data.Amount = in.RequestedAmount.String()
	}
	if in.TermMonths != 0 {
		data.Term = fmtInt(in.TermMonths)
	}

	return data
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
