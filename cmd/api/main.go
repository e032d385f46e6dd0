package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"

	"github.com/cmlabs-hris/workforce-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/workforce-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/workforce-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/cmlabs-hris/workforce-backend-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/workforce-backend-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/workforce-backend-go/internal/service/employee"
	foodService "github.com/cmlabs-hris/workforce-backend-go/internal/service/food"
	leaveService "github.com/cmlabs-hris/workforce-backend-go/internal/service/leave"
	notificationService "github.com/cmlabs-hris/workforce-backend-go/internal/service/notification"
	reportService "github.com/cmlabs-hris/workforce-backend-go/internal/service/report"
	resignationService "github.com/cmlabs-hris/workforce-backend-go/internal/service/resignation"
	wageService "github.com/cmlabs-hris/workforce-backend-go/internal/service/wage"
	workhoursService "github.com/cmlabs-hris/workforce-backend-go/internal/service/workhours"
)

const staleSessionAfter = 16 * time.Hour

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	loc := cfg.App.Location

	adminRepo := postgresql.NewAdminRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	workingHoursRepo := postgresql.NewWorkingHoursRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	resignationRepo := postgresql.NewResignationRequestRepository(db)
	foodItemRepo := postgresql.NewFoodItemRepository(db)
	foodTransactionRepo := postgresql.NewFoodTransactionRepository(db)
	withdrawalRepo := postgresql.NewWageWithdrawalRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	notifier := notificationService.NewWebhookNotifier(cfg.Webhook, notificationService.Config{
		WorkerCount: cfg.Webhook.Workers,
		QueueSize:   cfg.Webhook.QueueSize,
		Timeout:     cfg.Webhook.Timeout,
	})
	defer notifier.Close()

	authSvc := serviceAuth.NewAuthService(adminRepo, employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, loc)
	workingHoursSvc := workhoursService.NewWorkingHoursService(workingHoursRepo, employeeRepo, notifier, loc)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo, notifier)
	resignationSvc := resignationService.NewResignationService(resignationRepo, employeeRepo, notifier)
	foodSvc := foodService.NewFoodService(txManager, foodItemRepo, foodTransactionRepo, employeeRepo)
	wageSvc := wageService.NewWageService(employeeRepo, withdrawalRepo)
	reportSvc := reportService.NewReportService(employeeSvc, workingHoursSvc, leaveSvc, resignationSvc, foodSvc, wageSvc, loc)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, employeeRepo, leaveRequestRepo, resignationRepo, withdrawalRepo, loc)

	scheduler := cron.NewScheduler()
	cron.NewSessionJobs(workingHoursRepo, staleSessionAfter).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(logger, cfg.CORS.AllowedOrigins, JWTService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		WorkingHours: appHTTP.NewWorkingHoursHandler(workingHoursSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Resignation:  appHTTP.NewResignationHandler(resignationSvc),
		Food:         appHTTP.NewFoodHandler(foodSvc),
		Wage:         appHTTP.NewWageHandler(wageSvc, loc),
		Report:       appHTTP.NewReportHandler(reportSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Portal:       appHTTP.NewPortalHandler(employeeSvc, workingHoursSvc, wageSvc, leaveSvc, resignationSvc, loc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", server.Addr, "timezone", cfg.App.Timezone)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
