package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jobmanagement/job-service/config"
	"github.com/jobmanagement/job-service/internal/controller"
	"github.com/jobmanagement/job-service/internal/infrastructure/tracing"
	"github.com/jobmanagement/job-service/internal/infrastructure/verification"
	appmiddleware "github.com/jobmanagement/job-service/internal/middleware"
	"github.com/jobmanagement/job-service/internal/repository"
	"github.com/jobmanagement/job-service/internal/service"
	"github.com/jobmanagement/job-service/pkg/response"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type App struct {
	DB     *sqlx.DB
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()

	if app.Config.TracingConfig.CollectorHost != "" {
		traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			defer func() {
				if err := traceProvider.Shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("Failed to shutdown tracing")
				}
			}()

			tracer := traceProvider.Tracer("job-service")

			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
					defer span.End()

					req := c.Request()
					c.SetRequest(req.WithContext(ctx))

					return next(c)
				}
			})
		}
	}

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))
	e.Use(middleware.CORS())

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	g := e.Group("/api/v1")
	g.Use(appmiddleware.Logger)

	authn := appmiddleware.Authenticate(app.Config.JWTConfig)

	var personalNumberVerifier service.PersonalNumberVerifier
	if app.Config.VerificationConfig.PersonalNumberHost != "" {
		personalNumberVerifier = verification.CreatePersonalNumberClient(app.Config.VerificationConfig.PersonalNumberHost)
	}

	var phoneValidator service.PhoneValidator
	if app.Config.VerificationConfig.PhoneHost != "" {
		phoneValidator = verification.CreatePhoneClient(app.Config.VerificationConfig.PhoneHost, app.Config.VerificationConfig.PhoneAPIKey)
	}

	userRepo := repository.CreateNewUserRepository(app.DB)
	jobRepo := repository.CreateNewJobRepository(app.DB)
	applicationRepo := repository.CreateNewApplicationRepository(app.DB)

	userSvc := service.CreateNewUserService(userRepo, *app.Config, personalNumberVerifier, phoneValidator)
	jobSvc := service.CreateNewJobService(jobRepo, userRepo, *app.Config)
	applicationSvc := service.CreateNewApplicationService(applicationRepo, jobRepo, userRepo)

	controller.CreateUserController(g, userSvc, authn)
	controller.CreateJobController(g, jobSvc, authn)
	controller.CreateApplicationController(g, applicationSvc, authn)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	app.Server = e

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
