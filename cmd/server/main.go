package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/leadvane/leadvane/modules/admin"
	"github.com/leadvane/leadvane/modules/portal"
	"github.com/leadvane/leadvane/pkg/config"
	"github.com/leadvane/leadvane/pkg/cookie"
	"github.com/leadvane/leadvane/pkg/email"
	"github.com/leadvane/leadvane/pkg/httpserver"
	"github.com/leadvane/leadvane/pkg/logger"
	"github.com/leadvane/leadvane/pkg/pg"
	"github.com/leadvane/leadvane/pkg/ratelimit"
	"github.com/leadvane/leadvane/pkg/rbac"
	"github.com/leadvane/leadvane/pkg/requestid"
)

type appConfig struct {
	Env string `env:"APP_ENV" envDefault:"production"`

	// One secret per session kind: rotating either invalidates only the
	// corresponding sessions. Missing secrets fail startup; the process must
	// never serve auth routes with unsigned sessions.
	AdminSessionSecret    string `env:"ADMIN_SESSION_SECRET,required"`
	CustomerSessionSecret string `env:"CUSTOMER_SESSION_SECRET,required"`

	ResetPasswordURL string `env:"RESET_PASSWORD_URL,required"`

	Logger logger.Config
	Server httpserver.Config
	DB     pg.Config
	Cookie cookie.Config
	Email  email.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(cfg.Logger, logger.WithAttr(slog.String("app", "leadvane")))

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	dev := cfg.Env == "development"

	db, err := pg.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	cookies := cookie.NewFromConfig(cfg.Cookie)

	var adminSessionOpts []admin.SessionOption
	var portalSessionOpts []portal.SessionOption
	if dev {
		adminSessionOpts = append(adminSessionOpts, admin.WithInsecureCookies())
		portalSessionOpts = append(portalSessionOpts, portal.WithInsecureCookies())
	}

	adminSessions, err := admin.NewSessionManager(cfg.AdminSessionSecret, cookies, adminSessionOpts...)
	if err != nil {
		return err
	}
	portalSessions, err := portal.NewSessionManager(cfg.CustomerSessionSecret, cookies, portalSessionOpts...)
	if err != nil {
		return err
	}

	var mailer email.EmailSender
	if dev && cfg.Email.PostmarkServerToken == "" {
		mailer = email.NewDevSender(log)
	} else {
		mailer, err = email.NewPostmarkClient(cfg.Email)
		if err != nil {
			return err
		}
	}

	adminSvc := admin.NewService(admin.NewRepository(db), admin.WithLogger(log))
	portalSvc, err := portal.NewService(
		portal.NewRepository(db), mailer,
		cfg.CustomerSessionSecret, cfg.ResetPasswordURL,
		portal.WithLogger(log),
	)
	if err != nil {
		return err
	}

	store := ratelimit.NewMemoryStore()
	defer store.Close()

	policy := ratelimit.DefaultPolicy()
	limiter := func(cfg ratelimit.Config) *ratelimit.Limiter {
		l, err := ratelimit.New(store, cfg)
		if err != nil {
			// Policy table entries are static; a bad one is a programming
			// error caught at startup.
			panic(err)
		}
		return l
	}

	authz := rbac.NewAuthorizer()

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
	r.Get("/readyz", httpserver.HealthCheckHandler(ctx, log, pg.Healthcheck(db)))

	r.Route("/api", func(api chi.Router) {
		api.Mount("/admin", admin.Router(admin.RouterDeps{
			Service:      adminSvc,
			Sessions:     adminSessions,
			Authorizer:   authz,
			LoginLimiter: limiter(policy.AdminLogin),
		}))

		api.Mount("/portal", portal.Router(portal.RouterDeps{
			Service:  portalSvc,
			Sessions: portalSessions,
			Limiters: portal.Limiters{
				Registration:   limiter(policy.PortalRegistration),
				ForgotPassword: limiter(policy.ForgotPassword),
				ContactForm:    limiter(policy.ContactForm),
				Application:    limiter(policy.SubcontractorApplication),
			},
		}))
	})

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
