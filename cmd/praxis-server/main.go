// Command praxis-server runs the practice management API server.
//
// Subcommands:
//
//	serve            start the HTTP server (default)
//	migrate up       apply pending migrations to a tenant schema
//	migrate status   show migration status for a tenant schema
//	tenant create    provision a new practice schema
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/praxis/praxis/internal/config"
	"github.com/praxis/praxis/internal/domain/documents"
	"github.com/praxis/praxis/internal/domain/email"
	"github.com/praxis/praxis/internal/domain/events"
	"github.com/praxis/praxis/internal/domain/finance"
	"github.com/praxis/praxis/internal/domain/forms"
	"github.com/praxis/praxis/internal/domain/goals"
	"github.com/praxis/praxis/internal/domain/hiring"
	"github.com/praxis/praxis/internal/domain/holiday"
	"github.com/praxis/praxis/internal/domain/hygiene"
	"github.com/praxis/praxis/internal/domain/practice"
	"github.com/praxis/praxis/internal/domain/ratings"
	"github.com/praxis/praxis/internal/domain/seo"
	"github.com/praxis/praxis/internal/domain/skills"
	"github.com/praxis/praxis/internal/domain/team"
	"github.com/praxis/praxis/internal/domain/tickets"
	"github.com/praxis/praxis/internal/domain/workflows"
	"github.com/praxis/praxis/internal/insight"
	"github.com/praxis/praxis/internal/platform/auth"
	"github.com/praxis/praxis/internal/platform/db"
	"github.com/praxis/praxis/internal/platform/llm"
	"github.com/praxis/praxis/internal/platform/middleware"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "praxis-server",
		Short: "Practice management API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
	}
	var migrateSchema, migrateDir string
	migrateUpCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrateUp(migrateSchema, migrateDir)
		},
	}
	migrateStatusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrateStatus(migrateSchema, migrateDir)
		},
	}
	migrateCmd.PersistentFlags().StringVar(&migrateSchema, "schema", "practice_default", "tenant schema to migrate")
	migrateCmd.PersistentFlags().StringVar(&migrateDir, "dir", "./migrations", "migrations directory")
	migrateCmd.AddCommand(migrateUpCmd, migrateStatusCmd)

	tenantCmd := &cobra.Command{
		Use:   "tenant",
		Short: "Tenant management commands",
	}
	var tenantName string
	tenantCreateCmd := &cobra.Command{
		Use:   "create",
		Short: "Provision a new practice schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTenantCreate(tenantName)
		},
	}
	tenantCreateCmd.Flags().StringVar(&tenantName, "name", "", "practice identifier (required)")
	_ = tenantCreateCmd.MarkFlagRequired("name")
	tenantCmd.AddCommand(tenantCreateCmd)

	rootCmd.AddCommand(serveCmd, migrateCmd, tenantCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(env string) zerolog.Logger {
	if env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger := newLogger(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	cancel()
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit("2M"))
	e.Use(middleware.RequestTimeout(60 * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, "X-Practice-ID"},
	}))

	if cfg.IsDev() {
		logger.Warn().Msg("development auth middleware active, do not use in production")
		e.Use(auth.DevAuthMiddleware())
	} else {
		e.Use(auth.JWTMiddleware(auth.JWTConfig{
			Issuer:     cfg.AuthIssuer,
			Audience:   cfg.AuthAudience,
			JWKSURL:    cfg.AuthJWKSURL,
			SigningKey: []byte(cfg.AuthDevSecret),
		}))
	}
	e.Use(db.TenantMiddleware(pool, cfg.DefaultTenant))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "version": version})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	apiV1 := e.Group("/api/v1")
	rlCfg := middleware.RateLimitConfig{RequestsPerSecond: cfg.RateLimitRPS, BurstSize: cfg.RateLimitBurst}
	if rlCfg.RequestsPerSecond <= 0 {
		rlCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rlCfg))

	gen := llm.NewClient(llm.Config{
		APIKey:      cfg.AnthropicAPIKey,
		Model:       cfg.AIModel,
		MaxTokens:   cfg.AIMaxTokens,
		Temperature: cfg.AITemperature,
	}, logger)

	// Repositories.
	practiceRepo := practice.NewRepoPG(pool)
	settingsRepo := practice.NewSettingsRepoPG(pool)
	memberRepo := team.NewMemberRepoPG(pool)
	positionRepo := team.NewPositionRepoPG(pool)
	responsibilityRepo := team.NewResponsibilityRepoPG(pool)
	goalRepo := goals.NewGoalRepoPG(pool)
	todoRepo := goals.NewTodoRepoPG(pool)
	workflowRepo := workflows.NewWorkflowRepoPG(pool)
	templateRepo := workflows.NewTemplateRepoPG(pool)
	ticketRepo := tickets.NewRepoPG(pool)
	financeRepo := finance.NewRepoPG(pool)
	ratingRepo := ratings.NewRepoPG(pool)
	documentRepo := documents.NewRepoPG(pool)
	formRepo := forms.NewRepoPG(pool)
	accountRepo := email.NewAccountRepoPG(pool)
	signatureRepo := email.NewSignatureRepoPG(pool)
	skillRepo := skills.NewSkillRepoPG(pool)
	assignmentRepo := skills.NewAssignmentRepoPG(pool)
	hygieneRepo := hygiene.NewRepoPG(pool)
	postingRepo := hiring.NewPostingRepoPG(pool)
	applicantRepo := hiring.NewApplicantRepoPG(pool)
	holidayRepo := holiday.NewRepoPG(pool)
	keywordRepo := seo.NewKeywordRepoPG(pool)
	auditRepo := seo.NewAuditRepoPG(pool)
	changeEventRepo := events.NewChangeEventRepoPG(pool)
	historyRepo := events.NewInsightHistoryRepoPG(pool)

	// Domain handlers.
	practice.NewHandler(practice.NewService(practiceRepo, settingsRepo)).RegisterRoutes(apiV1)
	team.NewHandler(team.NewService(memberRepo, positionRepo, responsibilityRepo)).RegisterRoutes(apiV1)
	goals.NewHandler(goals.NewService(goalRepo, todoRepo)).RegisterRoutes(apiV1)
	workflows.NewHandler(workflows.NewService(workflowRepo, templateRepo)).RegisterRoutes(apiV1)
	tickets.NewHandler(tickets.NewService(ticketRepo)).RegisterRoutes(apiV1)
	finance.NewHandler(finance.NewService(financeRepo)).RegisterRoutes(apiV1)
	ratings.NewHandler(ratings.NewService(ratingRepo)).RegisterRoutes(apiV1)
	documents.NewHandler(documents.NewService(documentRepo)).RegisterRoutes(apiV1)
	forms.NewHandler(forms.NewService(formRepo)).RegisterRoutes(apiV1)
	email.NewHandler(email.NewService(accountRepo, signatureRepo)).RegisterRoutes(apiV1)
	skills.NewHandler(skills.NewService(skillRepo, assignmentRepo)).RegisterRoutes(apiV1)
	hygiene.NewHandler(hygiene.NewService(hygieneRepo)).RegisterRoutes(apiV1)
	hiring.NewHandler(hiring.NewService(postingRepo, applicantRepo)).RegisterRoutes(apiV1)
	holiday.NewHandler(holiday.NewService(holidayRepo, memberRepo)).RegisterRoutes(apiV1)
	seo.NewHandler(seo.NewService(keywordRepo, auditRepo, gen)).RegisterRoutes(apiV1)
	events.NewHandler(changeEventRepo, historyRepo).RegisterRoutes(apiV1)

	insightSvc := insight.NewService(insight.Repos{
		Practices:        practiceRepo,
		Settings:         settingsRepo,
		Members:          memberRepo,
		Positions:        positionRepo,
		Responsibilities: responsibilityRepo,
		Goals:            goalRepo,
		Todos:            todoRepo,
		Workflows:        workflowRepo,
		Templates:        templateRepo,
		Tickets:          ticketRepo,
		Transactions:     financeRepo,
		Ratings:          ratingRepo,
		Documents:        documentRepo,
		Postings:         postingRepo,
		Applicants:       applicantRepo,
		Skills:           skillRepo,
		Assignments:      assignmentRepo,
		HygienePlans:     hygieneRepo,
		HolidayRequests:  holidayRepo,
		Keywords:         keywordRepo,
		Audits:           auditRepo,
		EmailAccounts:    accountRepo,
		Forms:            formRepo,
		ChangeEvents:     changeEventRepo,
		History:          historyRepo,
		Conns:            db.NewTenantConns(pool),
	}, gen, insight.StaticBenchmarks{})
	insight.NewHandler(insightSvc).RegisterRoutes(apiV1)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func runMigrateUp(schema, dir string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	applied, err := db.NewMigrator(pool, dir).Up(ctx, schema)
	if err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	fmt.Printf("applied %d migration(s) to schema %s\n", applied, schema)
	return nil
}

func runMigrateStatus(schema, dir string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	statuses, err := db.NewMigrator(pool, dir).Status(ctx, schema)
	if err != nil {
		return fmt.Errorf("migrate status: %w", err)
	}
	for _, s := range statuses {
		mark := "pending"
		if s.Applied && s.AppliedAt != nil {
			mark = "applied " + s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Printf("%04d %-40s %s\n", s.Version, s.Name, mark)
	}
	return nil
}

func runTenantCreate(name string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := db.CreateTenantSchema(ctx, pool, name, "./migrations"); err != nil {
		return fmt.Errorf("create tenant: %w", err)
	}
	fmt.Printf("created practice schema for %s\n", name)
	return nil
}
