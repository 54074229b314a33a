package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"coopcredit/internal/phone"
	"coopcredit/internal/record"
	"coopcredit/internal/validate"
	"coopcredit/pkg/types"

	"github.com/sirupsen/logrus"
)

// handleAPISubmitApplication is the non-interactive entry point. It runs the
// full validation set, so clients bypassing the form widgets still cannot
// persist out-of-range values.
func (s *Service) handleAPISubmitApplication(w http.ResponseWriter, r *http.Request) {

	var in types.ApplicationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid JSON payload"})
		return
	}

	in = in.Normalized()

	if violations := validate.Check(in); len(violations) > 0 {
		s.writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"violations": violations})
		return
	}

	app := record.Build(in)

	ctx, cancel := context.WithTimeout(r.Context(), submitTimeout)
	defer cancel()

	if err := s.apps.Insert(ctx, app); err != nil {
		s.logger.WithError(err).WithField("application_id", app.ID).Error("failed to persist application")
		s.writeJSON(w, http.StatusBadGateway, map[string]any{"error": "unable to save application"})
		return
	}

	s.logger.WithFields(logrus.Fields{
		"application_id": app.ID,
		"loan_type":      app.LoanType,
	}).Info("application submitted")

	s.writeJSON(w, http.StatusCreated, app)
}

func (s *Service) handleAPIListApplications(w http.ResponseWriter, r *http.Request) {

	apps, err := s.apps.Applications(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch applications")
		s.writeJSON(w, http.StatusBadGateway, map[string]any{"error": "applications are unavailable"})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"applications": apps,
		"total":        len(apps),
	})
}

// handlePhoneFormat is the synchronous "field changed" hook: it takes the
// current raw value and returns the new display value.
func (s *Service) handlePhoneFormat(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("raw")

	s.writeJSON(w, http.StatusOK, map[string]any{
		"raw":     raw,
		"digits":  phone.Digits(raw),
		"display": phone.Format(raw),
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("failed to encode JSON response")
	}
}

func fmtInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
