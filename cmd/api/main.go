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

	"github.com/joho/godotenv"

	"github.com/jmcardoso/penny/internal/auth"
	"github.com/jmcardoso/penny/internal/budget"
	budgetStore "github.com/jmcardoso/penny/internal/budget/store"
	"github.com/jmcardoso/penny/internal/category"
	categoryStore "github.com/jmcardoso/penny/internal/category/store"
	"github.com/jmcardoso/penny/internal/config"
	"github.com/jmcardoso/penny/internal/database"
	pennyHttp "github.com/jmcardoso/penny/internal/http"
	authHandler "github.com/jmcardoso/penny/internal/http/authapi"
	budgetHandler "github.com/jmcardoso/penny/internal/http/budget"
	categoryHandler "github.com/jmcardoso/penny/internal/http/category"
	recurringHandler "github.com/jmcardoso/penny/internal/http/recurring"
	txHandler "github.com/jmcardoso/penny/internal/http/transaction"
	userHandler "github.com/jmcardoso/penny/internal/http/user"
	"github.com/jmcardoso/penny/internal/recurring"
	recurringStore "github.com/jmcardoso/penny/internal/recurring/store"
	"github.com/jmcardoso/penny/internal/transaction"
	txStore "github.com/jmcardoso/penny/internal/transaction/store"
	"github.com/jmcardoso/penny/internal/user"
	userStore "github.com/jmcardoso/penny/internal/user/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Auth.JWTSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, nil)

	var (
		userService        = user.NewService(userStore.New(db))
		categoryService    = category.NewService(categoryStore.New(db), nil)
		transactionService = transaction.NewService(txStore.New(db))
		budgetService      = budget.NewService(budgetStore.New(db))
		recurringService   = recurring.NewService(recurringStore.New(db), nil)
	)

	if err := categoryService.EnsureDefaults(ctx); err != nil {
		slog.Error("failed to seed default categories", "error", err)
		os.Exit(1)
	}

	if cfg.Auth.AdminEmail != "" && cfg.Auth.AdminPassword != "" {
		if err := userService.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			slog.Error("failed to seed admin account", "error", err)
			os.Exit(1)
		}
	}

	var (
		authH        = authHandler.NewHandler(userService, tokens)
		userH        = userHandler.NewHandler(userService)
		categoryH    = categoryHandler.NewHandler(categoryService)
		transactionH = txHandler.NewHandler(transactionService)
		budgetH      = budgetHandler.NewHandler(budgetService)
		recurringH   = recurringHandler.NewHandler(recurringService)
	)

	router := pennyHttp.New(tokens, authH, userH, categoryH, transactionH, budgetH, recurringH)

	scheduler := recurring.NewScheduler(time.Local)
	if _, err := scheduler.ScheduleDaily(cfg.Recurring.RunAt, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), cfg.Recurring.Timeout)
		defer cancel()

		if err := recurringService.ProcessDue(jobCtx); err != nil {
			slog.Error("recurring run failed", "error", err)
		}
	}); err != nil {
		slog.Error("failed to schedule recurring run", "error", err)
		os.Exit(1)
	}

	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
	}

	go func() {
		slog.Info("starting server", "port", server.Addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
}
