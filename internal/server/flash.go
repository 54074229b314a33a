package server

import "net/http"

const flashCookieName = "coopcredit_flash"

// setFlash stores a one-shot notice in a signed cookie so it survives the
// post-submit redirect.
func (s *Service) setFlash(w http.ResponseWriter, msg string) {
	encoded, err := s.cookie.Encode(flashCookieName, msg)
	if err != nil {
		s.logger.WithError(err).Warn("failed to encode flash cookie")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// popFlash returns the pending notice, if any, and clears the cookie.
func (s *Service) popFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	var msg string
	if err := s.cookie.Decode(flashCookieName, c.Value, &msg); err != nil {
		s.logger.WithError(err).Debug("failed to decode flash cookie")
		return ""
	}

	return msg
}
