package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	appconfig "jobboard/cmd/internal/config"
	"jobboard/cmd/internal/domain/database"
	"jobboard/cmd/internal/domain/database/repository"
	"jobboard/cmd/internal/http/handler"
	appmiddleware "jobboard/cmd/internal/http/middleware"
	"jobboard/cmd/internal/service"
	"jobboard/cmd/internal/utils"
	"jobboard/cmd/internal/utils/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const envVarsPrefix = "/jobboard/prod/"

func main() {
	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == appconfig.EnvProduction {
		loadProdEnv() // AWS SSM Parameter Store
	} else if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if !cfg.IsProduction() {
		log.SetLevel(log.DEBUG)
	}

	// Roles are static, a broken table must stop the process right away
	access, err := appconfig.LoadAccess(cfg.AccessPolicyFile)
	if err != nil {
		log.Fatalf("failed to load access policy: %v", err)
	}

	accessPolicy, err := access.Build()
	if err != nil {
		log.Fatalf("invalid access policy: %v", err)
	}
	log.Infof("admin only actions: %s", strings.Join(access.AdminOnly(), ", "))

	validate, err := validators.New()
	if err != nil {
		log.Fatalf("failed to register validators: %v", err)
	}

	verifier, err := newVerifier(cfg)
	if err != nil {
		log.Fatalf("failed to init token verifier: %v", err)
	}

	db, err := database.Init(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	userSkillRepo := repository.NewUserSkillRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	// Services
	userService := service.NewUserService(userRepo, accessPolicy, validate)
	skillService := service.NewSkillService(skillRepo, accessPolicy, validate)
	userSkillService := service.NewUserSkillService(userSkillRepo, skillRepo, accessPolicy, validate)
	jobService := service.NewJobService(jobRepo, accessPolicy, validate)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, accessPolicy, validate)

	routes := &handler.Routes{
		Users:        handler.NewUserDefault(userService),
		Skills:       handler.NewSkillDefault(skillService),
		UserSkills:   handler.NewUserSkillDefault(userSkillService),
		Jobs:         handler.NewJobDefault(jobService),
		Applications: handler.NewApplicationDefault(applicationService),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	if cfg.MetricsEnabled {
		e.Use(appmiddleware.NewMetricsMiddleware())
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	api := e.Group("/api", appmiddleware.NewAuthMiddleware(&appmiddleware.AuthMiddlewareConfig{
		UserRepo: userRepo,
		Verifier: verifier,
	}))
	routes.Mount(api)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed: %v", err)
	}
}

func newVerifier(cfg *appconfig.Config) (utils.TokenVerifier, error) {
	if cfg.JWKSURL != "" {
		return utils.NewJWKSVerifier(cfg.JWKSURL)
	}
	return utils.NewHMACVerifier(cfg.JWTSecret), nil
}

func loadProdEnv() {
	ctx := context.Background()
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-2"
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	prefixLength := len(envVarsPrefix)
	loaded := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			log.Fatalf("unable to load prod environment, %v", err)
		}

		// Export vars
		for _, param := range out.Parameters {
			key := (*param.Name)[prefixLength:]
			if enverr := os.Setenv(key, *param.Value); enverr != nil {
				log.Fatalf("unable to set environment variable, %v", enverr)
			}
			loaded++
		}
	}
	log.Debugf("loaded %d prod environment variables", loaded)
}

func healthCheckRoute(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
