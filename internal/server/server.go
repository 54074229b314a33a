package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"coopcredit/pkg/types"

	"cloud.google.com/go/civil"
	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

//go:embed templates static
var uiFS embed.FS

var decoder = newFormDecoder()

// ApplicationStore is the slice of the persistence gateway the handlers use.
type ApplicationStore interface {
	Insert(ctx context.Context, app *types.LoanApplication) error
	Applications(ctx context.Context) ([]*types.LoanApplication, error)
}

type Service struct {
	logger    *logrus.Logger
	config    *types.Config
	apps      ApplicationStore
	templates *template.Template
	cookie    *securecookie.SecureCookie

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	apps ApplicationStore,
) (*Service, error) {
	mux := flow.New()

	s := &Service{
		logger: logger,
		config: config,
		apps:   apps,
		cookie: securecookie.New(cookieKeys(config, logger)),
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// ServeHTTP lets the service be mounted under another mux and drives the
// handler tests.
func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.server.Handler.ServeHTTP(w, r)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/", s.handleApplicationForm, http.MethodGet)
	r.HandleFunc("/applications", s.handleListApplications, http.MethodGet)
	r.HandleFunc("/applications", s.handleSubmitApplication, http.MethodPost)

	r.HandleFunc("/api/applications", s.handleAPIListApplications, http.MethodGet)
	r.HandleFunc("/api/applications", s.handleAPISubmitApplication, http.MethodPost)
	r.HandleFunc("/api/phone/format", s.handlePhoneFormat, http.MethodGet)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	staticRoot, err := fs.Sub(uiFS, "static")
	if err != nil {
		s.logger.WithError(err).Fatal("failed to mount static assets")
	}
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)
}

// cookieKeys decodes the configured flash cookie keys, falling back to
// per-process random keys when unset or undecodable. Flash messages only live
// across one redirect, so losing them on restart is acceptable, but a
// malformed configured key is worth a warning.
func cookieKeys(config *types.Config, logger *logrus.Logger) (hashKey, blockKey []byte) {
	hashKey = decodeCookieKey(logger, "COOKIE_HASH_KEY", config.CookieHashKey)
	blockKey = decodeCookieKey(logger, "COOKIE_BLOCK_KEY", config.CookieBlockKey)

	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(32)
	}
	if len(blockKey) == 0 {
		blockKey = securecookie.GenerateRandomKey(32)
	}

	return hashKey, blockKey
}

func decodeCookieKey(logger *logrus.Logger, name, value string) []byte {
	if value == "" {
		return nil
	}

	key, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		logger.WithError(err).WithField("key", name).Warn("cookie key is not valid base64, falling back to a random per-process key")
		return nil
	}

	return key
}

func newFormDecoder() *form.Decoder {
	d := form.NewDecoder()

	d.RegisterCustomTypeFunc(func(vals []string) (any, error) {
		raw := strings.TrimSpace(vals[0])
		if raw == "" {
			return decimal.Decimal{}, nil
		}
		return decimal.NewFromString(raw)
	}, decimal.Decimal{})

	d.RegisterCustomTypeFunc(func(vals []string) (any, error) {
		raw := strings.TrimSpace(vals[0])
		if raw == "" {
			return civil.Date{}, nil
		}
		return civil.ParseDate(raw)
	}, civil.Date{})

	return d
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"datetime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04:05")
		},
		"money": func(d decimal.Decimal) string {
			return d.StringFixed(2)
		},
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}
